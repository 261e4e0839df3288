package cachestore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnieto/cl-cache/cachestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemCreatesMissingRoot(t *testing.T) {
	t.Parallel()
	root := filepath.Join(t.TempDir(), "nested", "cache-root")

	_, err := cachestore.NewFilesystem(root)

	require.NoError(t, err)
	assert.DirExists(t, root)
}

func TestFilesystemReturnsNotFoundForMissingKey(t *testing.T) {
	t.Parallel()
	f, err := cachestore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	_, err = f.Get("deadbeef")

	assert.ErrorIs(t, err, cachestore.ErrNotFound)
}

func TestFilesystemRoundTrips(t *testing.T) {
	t.Parallel()
	f, err := cachestore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, f.Put("abc123", []byte{0x01, 0x02, 0x03}))

	got, err := f.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got)
}

func TestFilesystemLayoutUsesClbinSuffix(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	f, err := cachestore.NewFilesystem(root)
	require.NoError(t, err)

	require.NoError(t, f.Put("mykey", []byte("x")))

	assert.FileExists(t, filepath.Join(root, "mykey.clbin"))
}

func TestFilesystemWithFileModeAppliesToWrittenEntries(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits are not meaningful on windows")
	}
	t.Parallel()
	root := t.TempDir()
	f, err := cachestore.NewFilesystem(root, cachestore.WithFileMode(0o600))
	require.NoError(t, err)

	require.NoError(t, f.Put("modekey", []byte("x")))

	info, err := os.Stat(filepath.Join(root, "modekey.clbin"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFilesystemPutOverwritesInPlace(t *testing.T) {
	t.Parallel()
	f, err := cachestore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, f.Put("k", []byte("first")))
	require.NoError(t, f.Put("k", []byte("second")))

	got, err := f.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}
