package clhandle

import (
	"fmt"

	"github.com/gnieto/cl-cache/cl12"
)

// Context owns a driver-side context grouping one or more devices.
type Context struct {
	id cl12.Context
}

// NewContext creates a fresh context over the given devices.
//
// CreateContext() returns a fresh reference count of one; this constructor does not retain again.
func NewContext(devices []Device) (Context, error) {
	ids := make([]cl12.DeviceID, len(devices))
	for i, d := range devices {
		ids[i] = d.ID()
	}
	id, err := cl12.CreateContext(ids)
	if err != nil {
		return Context{}, fmt.Errorf("clhandle: create context: %w", err)
	}
	return Context{id: id}, nil
}

// AdoptContext wraps a raw context id obtained from elsewhere, retaining it once.
func AdoptContext(id cl12.Context) (Context, error) {
	if err := cl12.RetainContext(id); err != nil {
		return Context{}, fmt.Errorf("clhandle: retain context: %w", err)
	}
	return Context{id: id}, nil
}

// ID returns the raw driver context identifier.
func (c Context) ID() cl12.Context { return c.id }

// Release releases the context's driver reference. Errors are ignored; release is best-effort and never panics.
func (c Context) Release() {
	_ = cl12.ReleaseContext(c.id)
}
