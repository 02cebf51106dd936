// Package common contains constants and sentinel errors shared by the
// SealNotes client and the notes service.
package common

const (
	// AuthorizationHeader carries the bearer token on authenticated requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader correlates client requests with service logs.
	RequestIDHeader = "X-Request-ID"

	// DrawingPlaceholder replaces the content of notes authored as drawings.
	DrawingPlaceholder = "[Drawing Note]"
)
