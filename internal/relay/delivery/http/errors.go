package http

import (
	"relay-srv/internal/relay"
	pkgErrors "relay-srv/pkg/errors"
)

var (
	errOutcomeNotFound = pkgErrors.NewHTTPError(40001, "Outcome not found")
	errSourceNotFound  = pkgErrors.NewHTTPError(40002, "Source object not found")
)

func (h *handler) mapError(err error) error {
	switch err {
	case relay.ErrOutcomeNotFound:
		return errOutcomeNotFound
	case relay.ErrSourceNotFound:
		return errSourceNotFound
	default:
		return err
	}
}
