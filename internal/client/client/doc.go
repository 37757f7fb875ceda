// Package client is the gateway to the bookstore REST API.
//
// # Overview
//
// Client is the transport-agnostic contract the services depend on; HTTPClient
// is the only implementation and the only component in the program that
// issues outbound HTTP requests.
//
// On every request HTTPClient reads the credential from a credential.Provider
// and, when one is present, sends it as "Authorization: Bearer <token>". It
// never retries, caches or de-duplicates requests.
//
// # Error Handling
//
// Any failure is reported as *common.NetworkError. Status holds the HTTP
// status code, or zero when no response arrived; Message holds the server's
// "message" (or "error") field when the body is JSON. A 404 matches
// common.ErrNotFound through errors.Is.
package client
