package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/remote"
)

type item struct {
	ID    remote.ID `json:"id"`
	Order int       `json:"sort_order"`
}

func seeded() *remote.MemoryStore {
	s := remote.NewMemoryStore()
	for _, o := range []int{3, 1, 2} {
		s.Seed("items", remote.Row{"id": o, "sort_order": o})
	}
	return s
}

func TestCollectionFetchAll(t *testing.T) {
	store := seeded()
	c := NewCollection[item](store, remote.Query{Collection: "items", OrderBy: "sort_order", Ascending: true})

	var observed []State
	c.Observe(func(s Snapshot[item]) { observed = append(observed, s.State) })

	snap := c.FetchAll(context.Background())
	require.Equal(t, StateSuccess, snap.State)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, 1, snap.Items[0].Order)
	assert.Equal(t, 3, snap.Items[2].Order)
	assert.Equal(t, []State{StateLoading, StateSuccess}, observed)
}

func TestCollectionFetchFailureIsGeneric(t *testing.T) {
	store := seeded()
	store.FailQueries(errors.New("dial tcp: connection refused"))
	c := NewCollection[item](store, remote.Query{Collection: "items"})

	snap := c.FetchAll(context.Background())
	assert.Equal(t, StateFailure, snap.State)
	assert.False(t, snap.Loading)
	assert.Equal(t, FetchFailedMessage, snap.Error)
	assert.NotContains(t, snap.Error, "connection refused")
	assert.Empty(t, snap.Items)
}

func TestCollectionRetryKeepsDataOnFailureThenRecovers(t *testing.T) {
	store := seeded()
	c := NewCollection[item](store, remote.Query{Collection: "items", OrderBy: "sort_order", Ascending: true})
	c.FetchAll(context.Background())

	store.FailQueries(errors.New("timeout"))
	snap := c.Retry(context.Background())
	assert.Equal(t, StateFailure, snap.State)
	assert.Len(t, snap.Items, 3)

	store.FailQueries(nil)
	snap = c.Retry(context.Background())
	assert.Equal(t, StateSuccess, snap.State)
	assert.Empty(t, snap.Error)

	queries, inserts := store.Calls()
	assert.Equal(t, 3, queries)
	assert.Zero(t, inserts)
}
