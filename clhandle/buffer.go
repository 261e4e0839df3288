package clhandle

import (
	"fmt"
	"unsafe"

	"github.com/gnieto/cl-cache/cl12"
)

// KernelArgument is implemented by the buffer wrappers below so they can be bound directly with
// Kernel.SetBufferArg().
type KernelArgument interface {
	memObject() cl12.MemObject
}

// rawBuffer is the owning wrapper around a single device memory allocation.
type rawBuffer struct {
	id cl12.MemObject
}

func newRawBuffer(ctx Context, size uintptr) (rawBuffer, error) {
	id, err := cl12.CreateBuffer(ctx.id, cl12.MemReadWriteFlag, size)
	if err != nil {
		return rawBuffer{}, fmt.Errorf("clhandle: create buffer: %w", err)
	}
	return rawBuffer{id: id}, nil
}

func (b rawBuffer) memObject() cl12.MemObject { return b.id }

// Release releases the buffer's driver reference. Errors are ignored; release is best-effort and never panics.
func (b rawBuffer) Release() {
	_ = cl12.ReleaseMemObject(b.id)
}

// InputBuffer is a device allocation whose contents are supplied by a host-side source region. The wrapper
// borrows that region; it does not copy or own it.
type InputBuffer[T any] struct {
	rawBuffer
	source []T
}

// NewInputBuffer allocates a device buffer sized to hold source and remembers source as the data to write into
// it with Queue.Write().
func NewInputBuffer[T any](ctx Context, source []T) (InputBuffer[T], error) {
	var zero T
	size := uintptr(len(source)) * unsafe.Sizeof(zero)
	raw, err := newRawBuffer(ctx, size)
	if err != nil {
		return InputBuffer[T]{}, err
	}
	return InputBuffer[T]{rawBuffer: raw, source: source}, nil
}

// ByteSize returns the size, in bytes, of the device allocation.
func (b InputBuffer[T]) ByteSize() uintptr {
	var zero T
	return uintptr(len(b.source)) * unsafe.Sizeof(zero)
}

// OutputBuffer is a device allocation the cache engine's callers use to receive results; it owns only the
// device-side allocation and produces a freshly allocated host vector on Queue.Read().
type OutputBuffer[T any] struct {
	rawBuffer
	count int
}

// NewOutputBuffer allocates a device buffer large enough to hold count elements of T.
func NewOutputBuffer[T any](ctx Context, count int) (OutputBuffer[T], error) {
	var zero T
	size := uintptr(count) * unsafe.Sizeof(zero)
	raw, err := newRawBuffer(ctx, size)
	if err != nil {
		return OutputBuffer[T]{}, err
	}
	return OutputBuffer[T]{rawBuffer: raw, count: count}, nil
}

// Len returns the number of elements the buffer holds.
func (b OutputBuffer[T]) Len() int { return b.count }

// ByteSize returns the size, in bytes, of the device allocation.
func (b OutputBuffer[T]) ByteSize() uintptr {
	var zero T
	return uintptr(b.count) * unsafe.Sizeof(zero)
}
