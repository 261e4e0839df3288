package cl12

// #include "api.h"
import "C"
import (
	"sync"
)

// userData is a handle for a Go value that has been registered so it can be recovered from within a cgo callback
// trampoline, which can only carry a C.uintptr_t across the call boundary.
type userData struct {
	ptr *C.uintptr_t
}

var (
	userDataMutex sync.Mutex
	userDataStore = map[C.uintptr_t]interface{}{}
	userDataNext  C.uintptr_t
)

// userDataFor registers value and returns a handle that can be passed through C code and later resolved with
// userDataFrom() from within a callback.
func userDataFor(value interface{}) (userData, error) {
	userDataMutex.Lock()
	defer userDataMutex.Unlock()
	userDataNext++
	key := userDataNext
	userDataStore[key] = value
	return userData{ptr: &key}, nil
}

// userDataFrom resolves a previously registered value from its handle.
func userDataFrom(ptr *C.uintptr_t) userData {
	return userData{ptr: ptr}
}

// Value returns the Go value this handle was registered with.
func (data userData) Value() interface{} {
	userDataMutex.Lock()
	defer userDataMutex.Unlock()
	return userDataStore[*data.ptr]
}

// Delete removes the registered value. Call this once the callback it was registered for will not fire again.
func (data userData) Delete() {
	userDataMutex.Lock()
	defer userDataMutex.Unlock()
	delete(userDataStore, *data.ptr)
}
