package hostabi

import (
	"runtime"
	"testing"

	"github.com/gnieto/cl-cache/cacheengine"
	"github.com/gnieto/cl-cache/cachestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsMonotonicHandles(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	r := &registry{
		byThread: make(map[int]map[HandleID]*cacheengine.Engine),
		next:     make(map[int]HandleID),
	}
	engine := cacheengine.New(cachestore.NewMemory())

	first := r.register(engine)
	second := r.register(engine)

	assert.Equal(t, HandleID(0), first)
	assert.Equal(t, HandleID(1), second)
}

func TestLookupFindsARegisteredHandle(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	r := &registry{
		byThread: make(map[int]map[HandleID]*cacheengine.Engine),
		next:     make(map[int]HandleID),
	}
	engine := cacheengine.New(cachestore.NewMemory())
	id := r.register(engine)

	found, err := r.lookup(id)

	require.NoError(t, err)
	assert.Same(t, engine, found)
}

func TestLookupUnknownHandleErrors(t *testing.T) {
	r := &registry{
		byThread: make(map[int]map[HandleID]*cacheengine.Engine),
		next:     make(map[int]HandleID),
	}

	_, err := r.lookup(42)

	assert.Error(t, err)
}

func TestCreateFSRegistersAFilesystemBackedEngine(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	id, err := CreateFS(t.TempDir())

	require.NoError(t, err)
	engine, err := global.lookup(id)
	require.NoError(t, err)
	assert.NotNil(t, engine)
}
