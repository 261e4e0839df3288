package cl12

// #include "api.h"
import "C"
import (
	"fmt"
	"unsafe"
)

// Context is a driver-side grouping of one or more devices. It scopes the programs, command-queues, and memory
// objects created against it.
//
// Create a new context with CreateContext(). Adopt a context received from elsewhere (e.g. across the host-ABI
// boundary) with RetainContext() followed by a plain conversion, since Context is a thin uintptr handle.
type Context uintptr

func (ctx Context) handle() C.cl_context {
	return *(*C.cl_context)(unsafe.Pointer(&ctx))
}

// String provides a readable presentation of the context identifier.
// It is based on the numerical value of the underlying pointer.
func (ctx Context) String() string {
	return fmt.Sprintf("0x%X", uintptr(ctx))
}

// CreateContext creates an OpenCL context for the given devices.
//
// The returned context carries a fresh reference count of one; there is no need to call RetainContext() on it.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateContext.html
func CreateContext(devices []DeviceID) (Context, error) {
	if len(devices) == 0 {
		return 0, StatusError(C.CL_INVALID_VALUE)
	}
	var status C.cl_int
	ctx := C.clCreateContext(
		nil,
		C.cl_uint(len(devices)),
		(*C.cl_device_id)(unsafe.Pointer(&devices[0])),
		nil,
		nil,
		&status)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return Context(*((*uintptr)(unsafe.Pointer(&ctx)))), nil
}

// RetainContext increments the context reference count.
//
// CreateContext() performs an implicit retain. Use RetainContext() when adopting a context handle that was
// obtained from elsewhere, so that a later ReleaseContext() does not release a reference this code never owned.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainContext.html
func RetainContext(ctx Context) error {
	status := C.clRetainContext(ctx.handle())
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// ReleaseContext decrements the context reference count.
//
// After the reference count reaches zero and all resources associated with the context (command-queues, memory
// objects, program objects, kernel objects) have been released, the context itself is deleted.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseContext.html
func ReleaseContext(ctx Context) error {
	status := C.clReleaseContext(ctx.handle())
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// ContextInfoName identifies properties of a context, which can be queried with ContextInfo().
type ContextInfoName C.cl_context_info

const (
	// ContextReferenceCountInfo returns the context reference count.
	//
	// Returned type: uint32
	ContextReferenceCountInfo ContextInfoName = C.CL_CONTEXT_REFERENCE_COUNT
	// ContextNumDevicesInfo returns the number of devices in the context.
	//
	// Returned type: uint32
	ContextNumDevicesInfo ContextInfoName = C.CL_CONTEXT_NUM_DEVICES
	// ContextDevicesInfo returns the list of devices in the context.
	//
	// Returned type: []DeviceID
	ContextDevicesInfo ContextInfoName = C.CL_CONTEXT_DEVICES
)

// ContextInfo queries information about a context.
//
// The provided size need to specify the size of the available space pointed to the provided value in bytes.
//
// The returned number is the required size, in bytes, for the queried information.
// Call the function with a zero size and nil value to request the required size. This helps in determining
// the necessary space for dynamic information, such as arrays.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetContextInfo.html
func ContextInfo(ctx Context, paramName ContextInfoName, paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
	sizeReturn := C.size_t(0)
	status := C.clGetContextInfo(
		ctx.handle(),
		C.cl_context_info(paramName),
		C.size_t(paramSize),
		paramValue,
		&sizeReturn)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return uintptr(sizeReturn), nil
}

// ContextDevices is a convenience method for ContextInfo() to query the ContextDevicesInfo property.
func ContextDevices(ctx Context) ([]DeviceID, error) {
	size, err := ContextInfo(ctx, ContextDevicesInfo, 0, nil)
	if err != nil {
		return nil, err
	}
	count := size / unsafe.Sizeof(DeviceID(0))
	if count == 0 {
		return nil, nil
	}
	ids := make([]DeviceID, count)
	if _, err := ContextInfo(ctx, ContextDevicesInfo, size, unsafe.Pointer(&ids[0])); err != nil {
		return nil, err
	}
	return ids, nil
}
