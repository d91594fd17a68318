package algolia_test

import (
	"context"
	"errors"
	"testing"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owasp/nest-search/integration/search/algolia"
)

type fakeIndex struct {
	err     error
	queries []string
	opts    []interface{}
}

func (f *fakeIndex) Search(query string, opts ...interface{}) (search.QueryRes, error) {
	f.queries = append(f.queries, query)
	f.opts = opts
	return search.QueryRes{}, f.err
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy index", func(t *testing.T) {
		t.Parallel()

		idx := &fakeIndex{}
		ctx := context.Background()

		require.NoError(t, algolia.Healthcheck(idx)(ctx))
		assert.Equal(t, []string{""}, idx.queries)
		assert.Contains(t, idx.opts, interface{}(ctx), "context must be forwarded to the request")
	})

	t.Run("search error", func(t *testing.T) {
		t.Parallel()

		searchErr := errors.New("403 invalid api key")
		idx := &fakeIndex{err: searchErr}

		err := algolia.Healthcheck(idx)(context.Background())
		assert.ErrorIs(t, err, algolia.ErrHealthcheckFailed)
		assert.ErrorIs(t, err, searchErr)
	})

	t.Run("cancelled context skips request", func(t *testing.T) {
		t.Parallel()

		idx := &fakeIndex{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := algolia.Healthcheck(idx)(ctx)
		assert.ErrorIs(t, err, algolia.ErrHealthcheckFailed)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, idx.queries)
	})
}
