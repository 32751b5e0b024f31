// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// SearchRequest represents the query parameters of the search endpoint.
//
// Types is an optional comma-separated list of result types to include
// (channel, message, direct_message). An empty list means no type filter.
//
// @Description Search request over indexed chat content
type SearchRequest struct {
	// Query is the free-text search query. Terms are matched case-insensitively.
	Query string `form:"q" example:"deploy friday"`
	// Types optionally restricts results to the given comma-separated types.
	Types string `form:"types" example:"message,channel"`
} // @name SearchRequest

// TypeList splits the Types parameter into individual type names.
// Empty segments are dropped.
func (r *SearchRequest) TypeList() []string {
	if r.Types == "" {
		return nil
	}
	parts := strings.Split(r.Types, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			types = append(types, p)
		}
	}
	return types
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// QueryLogsRequest represents the query parameters of the logs endpoint.
type QueryLogsRequest struct {
	// RequestID filters entries of a single request.
	RequestID string `form:"request_id"`
	// Level filters by log level (info, warn, error).
	Level string `form:"level"`
	// Method filters by HTTP method.
	Method string `form:"method"`
	// Path filters by request path.
	Path string `form:"path"`
	// Limit caps the number of returned entries.
	Limit int `form:"limit,default=100" binding:"omitempty,gte=1,lte=1000"`
	// Skip offsets into the result set for paging.
	Skip int `form:"skip" binding:"omitempty,gte=0"`
} // @name QueryLogsRequest
