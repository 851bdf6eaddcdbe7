// Package localdata persists small client-side values (the auth token and
// the serialized user profile) in a local sqlite key-value table.
package localdata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
