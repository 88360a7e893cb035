package middleware

import (
	"relay-srv/config"
	"relay-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
	config      *config.Config
}

func New(l log.Logger, internalKey string, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
		config:      cfg,
	}
}
