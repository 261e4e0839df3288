package clhandle

import (
	"fmt"
	"unsafe"

	"github.com/gnieto/cl-cache/cl12"
)

// Kernel owns a driver-side entry point within a built Program.
type Kernel struct {
	id cl12.Kernel
}

// NewKernel creates a kernel for the named entry point in a built program.
func NewKernel(program Program, name string) (Kernel, error) {
	id, err := cl12.CreateKernel(program.id, name)
	if err != nil {
		return Kernel{}, fmt.Errorf("clhandle: create kernel %q: %w", name, err)
	}
	return Kernel{id: id}, nil
}

// ID returns the raw driver kernel identifier.
func (k Kernel) ID() cl12.Kernel { return k.id }

// SetArg binds the raw argument at index, copying size bytes from value.
func (k Kernel) SetArg(index uint32, size uintptr, value unsafe.Pointer) error {
	return cl12.SetKernelArg(k.id, index, size, value)
}

// SetBufferArg binds a Buffer as the kernel argument at index.
func (k Kernel) SetBufferArg(index uint32, buffer KernelArgument) error {
	mem := buffer.memObject()
	return cl12.SetKernelArg(k.id, index, unsafe.Sizeof(mem), unsafe.Pointer(&mem))
}

// Release releases the kernel's driver reference. Errors are ignored; release is best-effort and never panics.
func (k Kernel) Release() {
	_ = cl12.ReleaseKernel(k.id)
}
