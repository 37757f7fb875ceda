// Package services holds the client-side state stores: the session, the
// catalog and the cart. Each store owns its state behind a mutex, talks to
// the API through client.Client and reports user-facing outcomes through a
// Notifier.
package services
