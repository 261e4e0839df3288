package cachestore_test

import (
	"testing"

	"github.com/gnieto/cl-cache/cachestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReturnsNotFoundOnEmptyCache(t *testing.T) {
	t.Parallel()
	m := cachestore.NewMemory()

	_, err := m.Get("missing")

	assert.ErrorIs(t, err, cachestore.ErrNotFound)
}

func TestMemoryRoundTrips(t *testing.T) {
	t.Parallel()
	m := cachestore.NewMemory()

	require.NoError(t, m.Put("k", []byte("payload")))

	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestMemoryTracksPutCount(t *testing.T) {
	t.Parallel()
	m := cachestore.NewMemory()
	assert.Equal(t, 0, m.PutCount())

	require.NoError(t, m.Put("k", []byte("v")))
	assert.Equal(t, 1, m.PutCount())

	require.NoError(t, m.Put("k2", []byte("v2")))
	assert.Equal(t, 2, m.PutCount())
}
