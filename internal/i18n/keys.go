// Package i18n provides internationalization support for the chat cache service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidSearchFilter indicates an unsupported search result type filter.
	ErrKeyInvalidSearchFilter = "error.invalid_search_filter"
	// ErrKeyInvalidEntity indicates a record missing required identity fields.
	ErrKeyInvalidEntity = "error.invalid_entity"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyStorageUnavailable indicates the backend storage is not configured
	// or not reachable.
	ErrKeyStorageUnavailable = "error.storage_unavailable"
)

// Success message translation keys.
const (
	// SuccessKeyCacheInvalidated indicates a successful cache invalidation.
	SuccessKeyCacheInvalidated = "success.cache_invalidated"
)
