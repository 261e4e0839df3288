package clhandle

import (
	"fmt"
	"unsafe"

	"github.com/gnieto/cl-cache/cl12"
)

// Queue owns a driver-side command-queue for one device within a context.
type Queue struct {
	id cl12.CommandQueue
}

// NewQueue creates a command-queue for device within ctx.
func NewQueue(ctx Context, device Device) (Queue, error) {
	id, err := cl12.CreateCommandQueue(ctx.id, device.ID(), 0)
	if err != nil {
		return Queue{}, fmt.Errorf("clhandle: create command queue: %w", err)
	}
	return Queue{id: id}, nil
}

// ID returns the raw driver command-queue identifier.
func (q Queue) ID() cl12.CommandQueue { return q.id }

// Write blocks until buffer's borrowed source region has been copied to the device.
func Write[T any](q Queue, buffer InputBuffer[T]) error {
	if len(buffer.source) == 0 {
		return cl12.EnqueueWriteBuffer(q.id, buffer.memObject(), true, 0, nil, nil, nil)
	}
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&buffer.source[0])), buffer.ByteSize())
	return cl12.EnqueueWriteBuffer(q.id, buffer.memObject(), true, 0, bytes, nil, nil)
}

// Read blocks until the device contents of buffer have been copied into a freshly allocated host vector.
func Read[T any](q Queue, buffer OutputBuffer[T]) ([]T, error) {
	result := make([]T, buffer.Len())
	if buffer.Len() == 0 {
		return result, nil
	}
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&result[0])), buffer.ByteSize())
	if err := cl12.EnqueueReadBuffer(q.id, buffer.memObject(), true, 0, bytes, nil, nil); err != nil {
		return nil, fmt.Errorf("clhandle: read buffer: %w", err)
	}
	return result, nil
}

// EnqueueNDRange enqueues kernel for execution over the given work size on this queue, and blocks until it has
// completed.
func EnqueueNDRange(q Queue, kernel Kernel, ws WorkSize) error {
	if err := cl12.EnqueueNDRangeKernel(q.id, kernel.id, ws.dimensions(), nil, nil); err != nil {
		return fmt.Errorf("clhandle: enqueue nd range: %w", err)
	}
	return cl12.Finish(q.id)
}

// Release releases the queue's driver reference. Errors are ignored; release is best-effort and never panics.
func (q Queue) Release() {
	_ = cl12.ReleaseCommandQueue(q.id)
}
