package cl12

// #include "api.h"
import "C"
import "unsafe"

// CreateBuffer creates a buffer object of the given byte size in the given context.
//
// The returned memory object carries a fresh reference count of one.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateBuffer.html
func CreateBuffer(ctx Context, flags MemFlags, size uintptr) (MemObject, error) {
	var status C.cl_int
	mem := C.clCreateBuffer(
		ctx.handle(),
		C.cl_mem_flags(flags),
		C.size_t(size),
		nil,
		&status)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return MemObject(*((*uintptr)(unsafe.Pointer(&mem)))), nil
}

// EnqueueWriteBuffer enqueues a command to write from host memory into a buffer object.
//
// When blocking is true, the call does not return until the write is complete and the host buffer may be reused
// or released.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueWriteBuffer.html
func EnqueueWriteBuffer(commandQueue CommandQueue, buffer MemObject, blocking bool, offset uintptr, data []byte, waitList []Event, event *Event) error {
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	var rawWaitList unsafe.Pointer
	if len(waitList) > 0 {
		rawWaitList = unsafe.Pointer(&waitList[0])
	}
	status := C.clEnqueueWriteBuffer(
		commandQueue.handle(),
		buffer.handle(),
		boolToCL(blocking),
		C.size_t(offset),
		C.size_t(len(data)),
		dataPtr,
		C.cl_uint(len(waitList)),
		(*C.cl_event)(rawWaitList),
		(*C.cl_event)(unsafe.Pointer(event)))
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// EnqueueReadBuffer enqueues a command to read from a buffer object into host memory.
//
// When blocking is true, the call does not return until the read is complete and data holds the result.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueReadBuffer.html
func EnqueueReadBuffer(commandQueue CommandQueue, buffer MemObject, blocking bool, offset uintptr, data []byte, waitList []Event, event *Event) error {
	if len(data) == 0 {
		return nil
	}
	var rawWaitList unsafe.Pointer
	if len(waitList) > 0 {
		rawWaitList = unsafe.Pointer(&waitList[0])
	}
	status := C.clEnqueueReadBuffer(
		commandQueue.handle(),
		buffer.handle(),
		boolToCL(blocking),
		C.size_t(offset),
		C.size_t(len(data)),
		unsafe.Pointer(&data[0]),
		C.cl_uint(len(waitList)),
		(*C.cl_event)(rawWaitList),
		(*C.cl_event)(unsafe.Pointer(event)))
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

func boolToCL(value bool) C.cl_bool {
	if value {
		return C.CL_TRUE
	}
	return C.CL_FALSE
}
