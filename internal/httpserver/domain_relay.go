package httpserver

import (
	"relay-srv/internal/middleware"
	relayhttp "relay-srv/internal/relay/delivery/http"
	relayProducer "relay-srv/internal/relay/delivery/kafka/producer"
	relayPostgre "relay-srv/internal/relay/repository/postgre"
	relayUsecase "relay-srv/internal/relay/usecase"

	"relay-srv/internal/relay"
)

// mapRelayDomain wires the relay domain onto the router.
func (srv HTTPServer) mapRelayDomain(mw middleware.Middleware) error {
	repo := relayPostgre.New(srv.l, srv.postgresDB)

	// Result publication is optional for the ops surface; redrives still
	// publish when a producer is configured.
	var producer relay.Producer
	if srv.kafkaProducer != nil {
		producer = relayProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := relayUsecase.New(srv.l, srv.config.Relay, srv.minioClient, repo, producer)
	handler := relayhttp.New(srv.l, uc)

	relayhttp.MapRelayRoutes(srv.gin.Group("/relay"), handler, mw)

	return nil
}
