package source

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/five82/hiremap/internal/hiring"
)

// Loader fetches and flattens the document. Concurrent Load calls share one
// fetch.
type Loader struct {
	fetcher Fetcher
	group   singleflight.Group
}

// NewLoader wraps fetcher.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches the document and returns its flat records. On error no records
// are returned.
func (l *Loader) Load(ctx context.Context) ([]hiring.Record, error) {
	if l == nil || l.fetcher == nil {
		return nil, errors.New("loader has no source")
	}
	v, err, _ := l.group.Do("document", func() (any, error) {
		doc, err := l.fetcher.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return hiring.Flatten(doc), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]hiring.Record), nil
}
