package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeTooMany      = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError    = "INTERNAL_ERROR"
	CodeStoreUnreachable = "STORE_UNREACHABLE"
)
