package algolia

import (
	"context"
	"errors"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
)

// Searcher is the subset of *search.Index used by Healthcheck.
type Searcher interface {
	Search(query string, opts ...interface{}) (search.QueryRes, error)
}

var _ Searcher = (*search.Index)(nil)

// Healthcheck returns a readiness probe that runs an empty query returning no hits.
// The context is forwarded as a request option so probe deadlines apply to the HTTP call.
func Healthcheck(index Searcher) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if _, err := index.Search("", opt.HitsPerPage(0), ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
