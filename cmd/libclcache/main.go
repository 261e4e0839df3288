// Command libclcache builds as a C-callable shared library exposing the cache as a small, handle-based ABI:
// create a filesystem-backed cache instance, then get-or-compile and tag entries against it using raw OpenCL
// device, context and program pointers.
package main

// #cgo !darwin LDFLAGS: -lOpenCL
// #cgo darwin LDFLAGS: -framework OpenCL
// #cgo darwin CFLAGS: -DCL_SILENCE_DEPRECATION
// #if defined(__APPLE__)
// #include <OpenCL/opencl.h>
// #else
// #include <CL/cl.h>
// #endif
import "C"

import (
	"unsafe"

	"github.com/gnieto/cl-cache/cl12"
	"github.com/gnieto/cl-cache/hostabi"
)

func main() {}

func deviceIDsFrom(count C.int, array *C.cl_device_id) []cl12.DeviceID {
	if count == 0 || array == nil {
		return nil
	}
	raw := unsafe.Slice(array, int(count))
	ids := make([]cl12.DeviceID, int(count))
	for i, d := range raw {
		ids[i] = cl12.DeviceID(uintptr(unsafe.Pointer(d)))
	}
	return ids
}

//export cache_create_fs
func cache_create_fs(path *C.char) C.int {
	id, err := hostabi.CreateFS(C.GoString(path))
	if err != nil {
		return -1
	}
	return C.int(id)
}

//export cache_get
func cache_get(id C.int, source *C.char, nDev C.int, devArray *C.cl_device_id, ctx C.cl_context) C.cl_program {
	program, err := hostabi.Get(
		hostabi.HandleID(id),
		C.GoString(source),
		deviceIDsFrom(nDev, devArray),
		cl12.Context(uintptr(unsafe.Pointer(ctx))),
	)
	if err != nil {
		return nil
	}
	return *(*C.cl_program)(unsafe.Pointer(&program))
}

//export cache_get_with_options
func cache_get_with_options(id C.int, source *C.char, nDev C.int, devArray *C.cl_device_id, ctx C.cl_context, options *C.char) C.cl_program {
	program, err := hostabi.GetWithOptions(
		hostabi.HandleID(id),
		C.GoString(source),
		deviceIDsFrom(nDev, devArray),
		cl12.Context(uintptr(unsafe.Pointer(ctx))),
		C.GoString(options),
	)
	if err != nil {
		return nil
	}
	return *(*C.cl_program)(unsafe.Pointer(&program))
}

//export cache_get_with_tag
func cache_get_with_tag(id C.int, tag *C.char, nDev C.int, devArray *C.cl_device_id, ctx C.cl_context) C.cl_program {
	program, err := hostabi.GetWithTag(
		hostabi.HandleID(id),
		C.GoString(tag),
		deviceIDsFrom(nDev, devArray),
		cl12.Context(uintptr(unsafe.Pointer(ctx))),
	)
	if err != nil {
		return nil
	}
	return *(*C.cl_program)(unsafe.Pointer(&program))
}

//export cache_put_with_tag
func cache_put_with_tag(id C.int, tag *C.char, nDev C.int, devArray *C.cl_device_id, program C.cl_program) C.int {
	err := hostabi.PutWithTag(
		hostabi.HandleID(id),
		C.GoString(tag),
		deviceIDsFrom(nDev, devArray),
		cl12.Program(uintptr(unsafe.Pointer(program))),
	)
	if err != nil {
		return 0
	}
	return 1
}
