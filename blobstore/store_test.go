package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract runs the behavior every BlobStore must share.
func storeContract(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := store.Open(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutOpenReadAll", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/a.prd", []byte("hello")))

		data, err := ReadAll(ctx, store, "snapshots/a.prd")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("ReadAt", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "b", []byte("0123456789")))

		blob, err := store.Open(ctx, "b")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(10), blob.Size())

		p := make([]byte, 4)
		n, err := blob.ReadAt(ctx, p, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, []byte("3456"), p)
	})

	t.Run("ReadRangeClamped", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "c", []byte("0123456789")))

		blob, err := store.Open(ctx, "c")
		require.NoError(t, err)
		defer blob.Close()

		r, err := blob.ReadRange(ctx, 8, 100)
		require.NoError(t, err)
		defer r.Close()

		p := make([]byte, 10)
		n, _ := r.Read(p)
		assert.Equal(t, "89", string(p[:n]))
	})

	t.Run("CreateClose", func(t *testing.T) {
		w, err := store.Create(ctx, "d")
		require.NoError(t, err)
		_, err = w.Write([]byte("str"))
		require.NoError(t, err)
		_, err = w.Write([]byte("eamed"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := ReadAll(ctx, store, "d")
		require.NoError(t, err)
		assert.Equal(t, []byte("streamed"), data)
	})

	t.Run("AbortDiscards", func(t *testing.T) {
		w, err := store.Create(ctx, "aborted")
		require.NoError(t, err)
		_, err = w.Write([]byte("partial"))
		require.NoError(t, err)
		require.NoError(t, w.Abort())

		_, err = store.Open(ctx, "aborted")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteAndList", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/x", []byte("1")))
		require.NoError(t, store.Put(ctx, "snapshots/y", []byte("2")))

		names, err := store.List(ctx, "snapshots/")
		require.NoError(t, err)
		assert.Contains(t, names, "snapshots/x")
		assert.Contains(t, names, "snapshots/y")
		assert.IsIncreasing(t, names)

		require.NoError(t, store.Delete(ctx, "snapshots/x"))
		require.NoError(t, store.Delete(ctx, "snapshots/x")) // idempotent

		_, err = store.Open(ctx, "snapshots/x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestLocalStore_NoTempLitter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	w, err := store.Create(ctx, "blob")
	require.NoError(t, err)
	_, err = w.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.Abort())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}
