// Package hostabi adapts cacheengine's Go API to the C-callable facade cmd/libclcache exports: a per-thread
// registry of live cache instances indexed by small integer handles, and raw-pointer-friendly entry points that
// adopt driver device/context/program ids from the caller.
package hostabi

import (
	"fmt"
	"sync"

	"github.com/gnieto/cl-cache/cacheengine"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/unix"
)

// HandleID is the small non-negative integer a caller uses to refer to one cache instance across calls.
type HandleID int32

// logger is the package-wide logger the registry reports handle lifecycle events through. It defaults to a
// no-op logger, the same default-to-silent convention cacheengine.Engine uses.
var logger hclog.Logger = hclog.NewNullLogger()

// SetLogger replaces the logger the registry and facade entry points report through.
func SetLogger(l hclog.Logger) { logger = l }

// registry holds the cache instances created so far, partitioned by the OS thread that created them. A handle
// created on one thread cannot be resolved from another: the facade registers no cross-thread synchronisation
// for the engines themselves, only for the registry's own bookkeeping.
type registry struct {
	mu       sync.Mutex
	byThread map[int]map[HandleID]*cacheengine.Engine
	next     map[int]HandleID
}

var global = &registry{
	byThread: make(map[int]map[HandleID]*cacheengine.Engine),
	next:     make(map[int]HandleID),
}

func currentThread() int { return int(unix.Gettid()) }

func (r *registry) register(engine *cacheengine.Engine) HandleID {
	r.mu.Lock()
	defer r.mu.Unlock()
	tid := currentThread()
	if r.byThread[tid] == nil {
		r.byThread[tid] = make(map[HandleID]*cacheengine.Engine)
	}
	id := r.next[tid]
	r.next[tid] = id + 1
	r.byThread[tid][id] = engine
	logger.Debug("registered cache instance", "handle", id, "thread", tid)
	return id
}

func (r *registry) lookup(id HandleID) (*cacheengine.Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tid := currentThread()
	engines, ok := r.byThread[tid]
	if !ok {
		logger.Warn("lookup on thread with no registered cache instances", "handle", id, "thread", tid)
		return nil, fmt.Errorf("hostabi: no cache instances registered on this thread")
	}
	engine, ok := engines[id]
	if !ok {
		logger.Warn("lookup of unregistered handle", "handle", id, "thread", tid)
		return nil, fmt.Errorf("hostabi: handle %d not registered on this thread", id)
	}
	return engine, nil
}
