package http

import (
	"github.com/gin-gonic/gin"

	"relay-srv/internal/middleware"
)

// MapRelayRoutes maps the relay ops routes onto the router group.
func MapRelayRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.GET("/outcomes", h.ListOutcomes)
	r.GET("/outcomes/:id", h.DetailOutcome)
	r.GET("/statistics", h.GetStatistics)

	internal := r.Group("/internal")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/redrive", h.Redrive)
	}
}
