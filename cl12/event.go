package cl12

// #include "api.h"
import "C"
import (
	"fmt"
	"unsafe"
)

// Event identifies an OpenCL event object, used to track the execution status of a command and to order
// commands via wait lists.
type Event uintptr

func (event Event) handle() C.cl_event {
	return *(*C.cl_event)(unsafe.Pointer(&event))
}

// String provides a readable presentation of the event identifier.
// It is based on the numerical value of the underlying pointer.
func (event Event) String() string {
	return fmt.Sprintf("0x%X", uintptr(event))
}

// RetainEvent increments the event reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainEvent.html
func RetainEvent(event Event) error {
	status := C.clRetainEvent(event.handle())
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// ReleaseEvent decrements the event reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseEvent.html
func ReleaseEvent(event Event) error {
	status := C.clReleaseEvent(event.handle())
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// WaitForEvents blocks until all the given events have completed.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clWaitForEvents.html
func WaitForEvents(events []Event) error {
	if len(events) == 0 {
		return nil
	}
	status := C.clWaitForEvents(C.cl_uint(len(events)), (*C.cl_event)(unsafe.Pointer(&events[0])))
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}
