// Package common contains shared constants and the error taxonomy used across
// the bookstore client layers.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound request with a unique id.
const RequestIDHeaderName = "X-Request-ID"

// BearerPrefix is prepended to the credential in the Authorization header.
const BearerPrefix = "Bearer "
