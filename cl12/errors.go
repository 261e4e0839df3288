package cl12

// #include "api.h"
import "C"
import (
	"fmt"
	"unsafe"
)

// StatusError wraps a raw OpenCL status code as returned by the driver.
//
// Call Status() to retrieve the numeric value for comparison against the CL_* status constants this package
// does not otherwise expose as typed values.
type StatusError C.cl_int

// Status returns the raw numeric status code as reported by the OpenCL driver.
func (err StatusError) Status() int32 {
	return int32(err)
}

// Error implements the error interface.
func (err StatusError) Error() string {
	return fmt.Sprintf("opencl: status %d", int32(err))
}

// querySize is the set of integer types the various Info() query functions use for sizes, depending on which
// OpenCL object they target.
type querySize interface {
	~uintptr | ~uint
}

// queryString is a helper for the common pattern of calling an Info() function twice: once with a nil buffer to
// determine the required size, and once more into a freshly allocated buffer of that size.
//
// The retrieved bytes are assumed to be a NUL-terminated string and the trailing NUL is stripped.
func queryString[T querySize](query func(paramSize T, paramValue unsafe.Pointer) (T, error)) (string, error) {
	size, err := query(0, nil)
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, uint64(size))
	if _, err := query(size, unsafe.Pointer(&buf[0])); err != nil {
		return "", err
	}
	if buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return string(buf), nil
}
