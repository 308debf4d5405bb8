// Package storetest checks the behaviour every docstore backend must share.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-hr-backend/internal/repository/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Timeout bounds how long Run waits for a live snapshot.
var Timeout = 10 * time.Second

// Run exercises store against collections prefixed with prefix. The
// collections must start empty.
func Run(t *testing.T, store docstore.Store, prefix string) {
	t.Run("create and get", func(t *testing.T) {
		testCreateGet(t, store, prefix+"_crud")
	})
	t.Run("update merges fields", func(t *testing.T) {
		testUpdateMerge(t, store, prefix+"_merge")
	})
	t.Run("missing id", func(t *testing.T) {
		testMissing(t, store, prefix+"_missing")
	})
	t.Run("list where", func(t *testing.T) {
		testListWhere(t, store, prefix+"_where")
	})
	t.Run("subscribe", func(t *testing.T) {
		testSubscribe(t, store, prefix+"_watch")
	})
}

func testCreateGet(t *testing.T, store docstore.Store, collection string) {
	ctx := context.Background()

	id, err := store.Create(ctx, collection, map[string]any{"titulo": "Backend Dev", "estado": "Disponible"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.Get(ctx, collection, id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "Backend Dev", doc.Fields["titulo"])

	n, err := store.Count(ctx, collection)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, store.Delete(ctx, collection, id))
	n, err = store.Count(ctx, collection)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testUpdateMerge(t *testing.T, store docstore.Store, collection string) {
	ctx := context.Background()

	id, err := store.Create(ctx, collection, map[string]any{
		"nombre":         "Ana",
		"telefono":       "5512345678",
		"puestoAsignado": "Backend Dev",
	})
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, collection, id, map[string]any{
		"telefono":       "5599999999",
		"puestoAsignado": nil,
	}))

	doc, err := store.Get(ctx, collection, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", doc.Fields["nombre"], "untouched field is kept")
	assert.Equal(t, "5599999999", doc.Fields["telefono"])
	assert.Contains(t, doc.Fields, "puestoAsignado")
	assert.Nil(t, doc.Fields["puestoAsignado"], "nil stores null")
}

func testMissing(t *testing.T, store docstore.Store, collection string) {
	ctx := context.Background()

	// A deleted id is a well-formed id for every backend.
	id, err := store.Create(ctx, collection, map[string]any{"titulo": "Temp"})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, collection, id))

	_, err = store.Get(ctx, collection, id)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, collection, id, map[string]any{"titulo": "x"}), docstore.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, collection, id), docstore.ErrNotFound)
}

func testListWhere(t *testing.T, store docstore.Store, collection string) {
	ctx := context.Background()

	first, err := store.Create(ctx, collection, map[string]any{"idVacante": "v1"})
	require.NoError(t, err)
	_, err = store.Create(ctx, collection, map[string]any{"idVacante": "v2"})
	require.NoError(t, err)
	third, err := store.Create(ctx, collection, map[string]any{"idVacante": "v1"})
	require.NoError(t, err)

	all, err := store.List(ctx, collection)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := store.ListWhere(ctx, collection, "idVacante", "v1")
	require.NoError(t, err)
	ids := make([]string, 0, len(matched))
	for _, doc := range matched {
		ids = append(ids, doc.ID)
	}
	assert.ElementsMatch(t, []string{first, third}, ids)
}

func testSubscribe(t *testing.T, store docstore.Store, collection string) {
	ctx := context.Background()

	var (
		mu    sync.Mutex
		sizes []int
	)
	last := func() (int, int) {
		mu.Lock()
		defer mu.Unlock()
		if len(sizes) == 0 {
			return 0, -1
		}
		return len(sizes), sizes[len(sizes)-1]
	}

	sub, err := store.Subscribe(ctx, collection, func(docs []docstore.Document) {
		mu.Lock()
		sizes = append(sizes, len(docs))
		mu.Unlock()
	})
	require.NoError(t, err)
	defer func() {
		sub.Cancel()
		<-sub.Done()
	}()

	require.Eventually(t, func() bool {
		calls, size := last()
		return calls >= 1 && size == 0
	}, Timeout, 20*time.Millisecond, "initial snapshot of the empty collection")

	id, err := store.Create(ctx, collection, map[string]any{"estado": "Disponible"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, size := last()
		return size == 1
	}, Timeout, 20*time.Millisecond, "snapshot after create")

	require.NoError(t, store.Delete(ctx, collection, id))
	require.Eventually(t, func() bool {
		_, size := last()
		return size == 0
	}, Timeout, 20*time.Millisecond, "snapshot after delete")

	assert.NoError(t, sub.Err())
}
