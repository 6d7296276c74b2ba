// Package confluence is a typed client for the Confluence REST API.
// It builds requests for content, space, search, label, history, user,
// and attachment operations and maps JSON responses into typed results.
//
// Structure:
//
//	client.go     - HTTP client with rate limiting and retry
//	auth.go       - Authentication strategies (Basic, Bearer, OAuth2, ...)
//	result.go     - Paged and cursor-based result containers
//	paging.go     - Request-side paging and search parameters
//	errors.go     - Error taxonomy (validation, API, unexpected status)
//	content.go    - Content CRUD, move, copy, children, title lookup
package confluence
