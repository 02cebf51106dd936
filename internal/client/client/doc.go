// Package client talks to the notes service over HTTP/JSON.
//
// Client is the contract used by the client core; HTTPClient implements it.
// Authenticated calls take a session.Session and send its token as
// "Authorization: Bearer <token>". Every request carries an X-Request-ID.
//
// Errors: transport failures wrap ErrUnavailable. Non-2xx responses are
// *APIError values that unwrap to ErrUnauthorized (401, 403) or
// ErrNotFound (404).
package client
