package paginator

const (
	// DefaultPage is used when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is used when an invalid limit is provided.
	DefaultLimit = 15
	// MaxLimit caps the page size to prevent excessive queries.
	MaxLimit = 100
)
