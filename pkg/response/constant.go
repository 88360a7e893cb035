package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Common error codes shared by every domain.
const (
	CodeOK           = 0
	CodeBadRequest   = 10400
	CodeUnauthorized = 10401
	CodeNotFound     = 10404
	CodeInternal     = 10500
)
