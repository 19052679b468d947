package table

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchStoreAccessRelease(t *testing.T) {
	tbl := New()
	tbl.Export("greeting", "hello")

	id, err := tbl.Fetch("greeting")
	require.NoError(t, err)

	value, err := tbl.Access(id)
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	require.NoError(t, tbl.Release(id))

	_, err = tbl.Access(id)
	require.Error(t, err)
	var accessErr *AccessError
	assert.ErrorAs(t, err, &accessErr)
}

func TestFetchUnknownName(t *testing.T) {
	tbl := New()
	_, err := tbl.Fetch("missing")
	require.Error(t, err)
}

func TestStoreMintsDistinctIDs(t *testing.T) {
	tbl := New()
	first := tbl.Store(1)
	second := tbl.Store(1)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, tbl.Size())
}

func TestFetchMintsFreshHandlePerCall(t *testing.T) {
	tbl := New()
	tbl.Export("shared", 1)

	first, err := tbl.Fetch("shared")
	require.NoError(t, err)
	second, err := tbl.Fetch("shared")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 1, tbl.ExportCount())
	assert.Equal(t, 2, tbl.Size())
}

func TestReleaseUnknownID(t *testing.T) {
	tbl := New()
	tbl.Export("x", 1)
	id, err := tbl.Fetch("x")
	require.NoError(t, err)
	require.NoError(t, tbl.Release(id))
	assert.Error(t, tbl.Release(id))
}

func TestConcurrentAccess(t *testing.T) {
	tbl := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := tbl.Store(n)
			v, err := tbl.Access(id)
			assert.NoError(t, err)
			assert.Equal(t, n, v)
			assert.NoError(t, tbl.Release(id))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, tbl.Size())
}
