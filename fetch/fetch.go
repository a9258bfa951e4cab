// Package fetch retrieves raw document bytes from local and remote sources
// for the chef to process.
package fetch

import (
	"context"
)

// Fetcher loads one document's raw bytes. Meta describes the source for
// downstream bookkeeping.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
	Meta() map[string]string
}
