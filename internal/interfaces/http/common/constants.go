package common

const (
	// MaxRequestBody limits JSON request bodies for submission and
	// contact endpoints.
	MaxRequestBody = 1 << 20
)
