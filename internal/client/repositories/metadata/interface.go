// Package metadata persists small client-side values (the credential slot)
// in a key/value table of the local database.
package metadata

import "context"

// Repository is a string key/value store. Get reports ok=false for a
// missing key instead of an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
