package query_test

import (
	"testing"

	"github.com/gnieto/cl-cache/clhandle"
	"github.com/gnieto/cl-cache/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePlatform(t *testing.T) {
	t.Helper()
	platforms, err := clhandle.Platforms()
	if err != nil || len(platforms) == 0 {
		t.Skip("no OpenCL platform available")
	}
}

func TestDefaultPlatformResolvesTheFirstOne(t *testing.T) {
	t.Parallel()
	requirePlatform(t)

	resolved, err := query.DefaultPlatform().Resolve()

	require.NoError(t, err)
	assert.NotEmpty(t, resolved.Name())
	platforms, err := clhandle.Platforms()
	require.NoError(t, err)
	assert.Equal(t, platforms[0].ID(), resolved.ID())
}

func TestPlatformAtIndexOutOfRangeErrors(t *testing.T) {
	t.Parallel()
	requirePlatform(t)

	_, err := query.PlatformAtIndex(1 << 20).Resolve()

	assert.Error(t, err)
}

func TestPlatformMatchingNoMatchErrors(t *testing.T) {
	t.Parallel()
	requirePlatform(t)

	_, err := query.PlatformMatching("this-will-not-match-anything-xyz").Resolve()

	assert.Error(t, err)
}

func TestDeviceAtIndexReturnsOneDevice(t *testing.T) {
	t.Parallel()
	requirePlatform(t)
	platform, err := query.DefaultPlatform().Resolve()
	require.NoError(t, err)

	devices, err := query.DeviceAtIndex(0).Resolve(platform)

	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestDevicesMatchingEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()
	requirePlatform(t)
	platform, err := query.DefaultPlatform().Resolve()
	require.NoError(t, err)

	devices, err := query.DevicesMatching("this-will-not-match-any-device-xyz").Resolve(platform)

	require.NoError(t, err)
	assert.Empty(t, devices)
}
