package cacheengine_test

import (
	"errors"
	"testing"

	"github.com/gnieto/cl-cache/cacheengine"
	"github.com/gnieto/cl-cache/cachestore"
	"github.com/gnieto/cl-cache/cl12"
	"github.com/gnieto/cl-cache/clhandle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vectorAddSource = `__kernel void vector_add(__global const long *A, __global const long *B, __global long *C) {
    int i = get_global_id(0);
    C[i] = A[i] + B[i];
}`

const invalidSource = `__kernel void bad() { this is not valid }`

// firstDeviceContext returns the first platform's first device, in a fresh single-device context. Tests that
// need an actual driver to compile against skip when no OpenCL platform is installed on the host running them.
func firstDeviceContext(t *testing.T) (clhandle.Device, clhandle.Context) {
	t.Helper()
	platforms, err := clhandle.Platforms()
	if err != nil || len(platforms) == 0 {
		t.Skip("no OpenCL platform available")
	}
	devices, err := platforms[0].Devices(cl12.DeviceTypeAll)
	require.NoError(t, err)
	if len(devices) == 0 {
		t.Skip("platform has no devices")
	}
	ctx, err := clhandle.NewContext(devices[:1])
	require.NoError(t, err)
	t.Cleanup(ctx.Release)
	return devices[0], ctx
}

func TestGetColdThenWarmCompilesOnlyOnce(t *testing.T) {
	t.Parallel()
	device, ctx := firstDeviceContext(t)
	backend := cachestore.NewMemory()
	engine := cacheengine.New(backend)

	program1, err := engine.Get(vectorAddSource, []clhandle.Device{device}, ctx)
	require.NoError(t, err)
	defer program1.Release()
	assert.Equal(t, 1, backend.PutCount())

	program2, err := engine.Get(vectorAddSource, []clhandle.Device{device}, ctx)
	require.NoError(t, err)
	defer program2.Release()
	assert.Equal(t, 1, backend.PutCount(), "a warm lookup must perform zero additional compiles")
}

func TestGetPartialHitOnlyCompilesTheMiss(t *testing.T) {
	t.Parallel()
	platforms, err := clhandle.Platforms()
	var devices []clhandle.Device
	if err == nil && len(platforms) > 0 {
		devices, err = platforms[0].Devices(cl12.DeviceTypeAll)
		require.NoError(t, err)
	}
	if len(devices) < 2 {
		t.Skip("partial hits need an OpenCL platform with at least two devices")
	}
	ctx, err := clhandle.NewContext(devices[:2])
	require.NoError(t, err)
	defer ctx.Release()
	backend := cachestore.NewMemory()
	engine := cacheengine.New(backend)

	warm, err := engine.Get(vectorAddSource, devices[:1], ctx)
	require.NoError(t, err)
	defer warm.Release()
	require.Equal(t, 1, backend.PutCount())

	partial, err := engine.Get(vectorAddSource, devices[:2], ctx)
	require.NoError(t, err)
	defer partial.Release()
	assert.Equal(t, 2, backend.PutCount(), "only the device that missed is compiled and stored")
}

func TestGetSurfacesBuildErrorsWithPerDeviceLog(t *testing.T) {
	t.Parallel()
	device, ctx := firstDeviceContext(t)
	engine := cacheengine.New(cachestore.NewMemory())

	_, err := engine.Get(invalidSource, []clhandle.Device{device}, ctx)

	var buildErr *cacheengine.ClBuildError
	require.ErrorAs(t, err, &buildErr)
	assert.NotEmpty(t, buildErr.Logs[device.ID()])
}

func TestTagRoundTrip(t *testing.T) {
	t.Parallel()
	device, ctx := firstDeviceContext(t)
	engine := cacheengine.New(cachestore.NewMemory())

	built, err := engine.Get(vectorAddSource, []clhandle.Device{device}, ctx)
	require.NoError(t, err)
	defer built.Release()

	require.NoError(t, engine.PutWithTag("v1", []clhandle.Device{device}, built))

	tagged, err := engine.GetWithTag("v1", []clhandle.Device{device}, ctx)
	require.NoError(t, err)
	defer tagged.Release()

	wantBinaries, err := built.Binaries()
	require.NoError(t, err)
	gotBinaries, err := tagged.Binaries()
	require.NoError(t, err)
	assert.Equal(t, wantBinaries, gotBinaries)
}

func TestGetWithTagMissReturnsNotAllBinariesLoaded(t *testing.T) {
	t.Parallel()
	device, ctx := firstDeviceContext(t)
	engine := cacheengine.New(cachestore.NewMemory())

	_, err := engine.GetWithTag("nonexistent", []clhandle.Device{device}, ctx)

	var notAll *cacheengine.NotAllBinariesLoaded
	require.ErrorAs(t, err, &notAll)
	assert.Equal(t, []cl12.DeviceID{device.ID()}, notAll.Devices)
}

func TestPutWithTagRejectsSourceOnlyProgram(t *testing.T) {
	t.Parallel()
	device, ctx := firstDeviceContext(t)
	engine := cacheengine.New(cachestore.NewMemory())

	program, err := clhandle.NewProgramFromSource(ctx, vectorAddSource)
	require.NoError(t, err)
	defer program.Release()

	err = engine.PutWithTag("v1", []clhandle.Device{device}, program)

	var needBinary *cacheengine.NeedBinaryProgram
	assert.True(t, errors.As(err, &needBinary))
}
