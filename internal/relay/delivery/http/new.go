package http

import (
	"github.com/gin-gonic/gin"

	"relay-srv/internal/relay"
	"relay-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	ListOutcomes(c *gin.Context)
	DetailOutcome(c *gin.Context)
	GetStatistics(c *gin.Context)
	Redrive(c *gin.Context)
}

// handler - HTTP handler implementation
type handler struct {
	l  log.Logger
	uc relay.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc relay.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
