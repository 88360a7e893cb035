package httpserver

import (
	"relay-srv/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.config.InternalConfig.InternalKey, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.mapRelayDomain(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
