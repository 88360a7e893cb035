package relay

import "errors"

// ErrorKind classifies a failed conversion for the journal and the
// published result. One kind per failed outcome.
type ErrorKind string

const (
	DECODE_ERROR  ErrorKind = "DECODE_ERROR"
	READ_ERROR    ErrorKind = "READ_ERROR"
	PARSE_ERROR   ErrorKind = "PARSE_ERROR"
	WRITE_ERROR   ErrorKind = "WRITE_ERROR"
	TIMEOUT_ERROR ErrorKind = "TIMEOUT_ERROR"
)

var (
	ErrMalformedEnvelope = errors.New("relay: malformed notification envelope")
	ErrSourceNotFound    = errors.New("relay: source object not found")
	ErrOutcomeNotFound   = errors.New("relay: outcome not found")
)
