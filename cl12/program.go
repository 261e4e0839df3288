package cl12

// #include "api.h"
import "C"
import (
	"fmt"
	"unsafe"
)

// Program is a driver-side compiled, or source-bearing, artifact scoped to a context and a set of devices.
//
// A program is created either from source (CreateProgramWithSource(), then BuildProgram()) or from previously
// compiled per-device binaries (CreateProgramWithBinary(), then BuildProgram() again to finalise / relocate it).
type Program uintptr

func (program Program) handle() C.cl_program {
	return *(*C.cl_program)(unsafe.Pointer(&program))
}

// String provides a readable presentation of the program identifier.
// It is based on the numerical value of the underlying pointer.
func (program Program) String() string {
	return fmt.Sprintf("0x%X", uintptr(program))
}

// CreateProgramWithSource creates a program object from a kernel source string.
//
// The returned program carries a fresh reference count of one.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateProgramWithSource.html
func CreateProgramWithSource(ctx Context, source string) (Program, error) {
	rawSource := C.CString(source)
	defer C.free(unsafe.Pointer(rawSource))
	var status C.cl_int
	program := C.clCreateProgramWithSource(
		ctx.handle(),
		1,
		&rawSource,
		nil,
		&status)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return Program(*((*uintptr)(unsafe.Pointer(&program)))), nil
}

// CreateProgramWithBinary creates a program object from per-device binaries, one per entry of devices, in the
// same order.
//
// The returned program carries a fresh reference count of one.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateProgramWithBinary.html
func CreateProgramWithBinary(ctx Context, devices []DeviceID, binaries [][]byte) (Program, error) {
	if len(devices) == 0 {
		return 0, fmt.Errorf("cl12: CreateProgramWithBinary requires at least one device")
	}
	if len(devices) != len(binaries) {
		return 0, fmt.Errorf("cl12: CreateProgramWithBinary requires one binary per device")
	}
	sizes := make([]C.size_t, len(binaries))
	ptrs := make([]*C.uchar, len(binaries))
	for i, binary := range binaries {
		if len(binary) == 0 {
			return 0, fmt.Errorf("cl12: CreateProgramWithBinary binary for device %d is empty", i)
		}
		sizes[i] = C.size_t(len(binary))
		ptrs[i] = (*C.uchar)(unsafe.Pointer(&binary[0]))
	}
	binaryStatus := make([]C.cl_int, len(binaries))
	var status C.cl_int
	program := C.clCreateProgramWithBinary(
		ctx.handle(),
		C.cl_uint(len(devices)),
		(*C.cl_device_id)(unsafe.Pointer(&devices[0])),
		&sizes[0],
		&ptrs[0],
		&binaryStatus[0],
		&status)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return Program(*((*uintptr)(unsafe.Pointer(&program)))), nil
}

// RetainProgram increments the program reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainProgram.html
func RetainProgram(program Program) error {
	status := C.clRetainProgram(program.handle())
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// ReleaseProgram decrements the program reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseProgram.html
func ReleaseProgram(program Program) error {
	status := C.clReleaseProgram(program.handle())
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// BuildProgram builds (compiles and links, or finalises) a program executable for the given devices, with the
// given build options.
//
// Call this once after CreateProgramWithSource() to compile, and once after CreateProgramWithBinary() to finalise
// a binary-loaded program so kernels can be created from it.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clBuildProgram.html
func BuildProgram(program Program, devices []DeviceID, options string) error {
	if len(devices) == 0 {
		return fmt.Errorf("cl12: BuildProgram requires at least one device")
	}
	var rawOptions *C.char
	if len(options) > 0 {
		rawOptions = C.CString(options)
		defer C.free(unsafe.Pointer(rawOptions))
	}
	status := C.clBuildProgram(
		program.handle(),
		C.cl_uint(len(devices)),
		(*C.cl_device_id)(unsafe.Pointer(&devices[0])),
		rawOptions,
		nil,
		nil)
	if status != C.CL_SUCCESS {
		return StatusError(status)
	}
	return nil
}

// ProgramBuildInfoName identifies properties of a program build, which can be queried with ProgramBuildInfo().
type ProgramBuildInfoName C.cl_program_build_info

const (
	// ProgramBuildStatusInfo returns the build, compile, or link status of the most recent build for a device.
	//
	// Returned type: int32
	ProgramBuildStatusInfo ProgramBuildInfoName = C.CL_PROGRAM_BUILD_STATUS
	// ProgramBuildOptionsInfo returns the build options used for the most recent build for a device.
	//
	// Returned type: string
	ProgramBuildOptionsInfo ProgramBuildInfoName = C.CL_PROGRAM_BUILD_OPTIONS
	// ProgramBuildLogInfo returns the build log for the most recent build for a device.
	//
	// Returned type: string
	ProgramBuildLogInfo ProgramBuildInfoName = C.CL_PROGRAM_BUILD_LOG
)

// ProgramBuildInfo queries information about the build of a program for a given device.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetProgramBuildInfo.html
func ProgramBuildInfo(program Program, device DeviceID, paramName ProgramBuildInfoName, paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
	sizeReturn := C.size_t(0)
	status := C.clGetProgramBuildInfo(
		program.handle(),
		device.handle(),
		C.cl_program_build_info(paramName),
		C.size_t(paramSize),
		paramValue,
		&sizeReturn)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return uintptr(sizeReturn), nil
}

// ProgramBuildLog is a convenience method for ProgramBuildInfo() to retrieve the ProgramBuildLogInfo property
// for a device.
func ProgramBuildLog(program Program, device DeviceID) (string, error) {
	return queryString(func(paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
		return ProgramBuildInfo(program, device, ProgramBuildLogInfo, paramSize, paramValue)
	})
}

// ProgramInfoName identifies properties of a program, which can be queried with ProgramInfo().
type ProgramInfoName C.cl_program_info

const (
	// ProgramNumDevicesInfo returns the number of devices associated with the program.
	//
	// Returned type: uint32
	ProgramNumDevicesInfo ProgramInfoName = C.CL_PROGRAM_NUM_DEVICES
	// ProgramDevicesInfo returns the list of devices associated with the program.
	//
	// Returned type: []DeviceID
	ProgramDevicesInfo ProgramInfoName = C.CL_PROGRAM_DEVICES
	// ProgramSourceInfo returns the program source code, concatenated as a single NUL-terminated string.
	//
	// Returned type: string
	ProgramSourceInfo ProgramInfoName = C.CL_PROGRAM_SOURCE
	// ProgramBinarySizesInfo returns the size, in bytes, of the program binary for each device associated with
	// the program, in the same order as ProgramDevicesInfo.
	//
	// Returned type: []uintptr
	ProgramBinarySizesInfo ProgramInfoName = C.CL_PROGRAM_BINARY_SIZES
	// ProgramBinariesInfo returns the program binaries for all devices associated with the program.
	//
	// The caller must provide an array of pointers to buffers, one per device, each sized according to
	// ProgramBinarySizesInfo, in the same order as ProgramDevicesInfo.
	ProgramBinariesInfo ProgramInfoName = C.CL_PROGRAM_BINARIES
)

// ProgramInfo queries information about a program.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetProgramInfo.html
func ProgramInfo(program Program, paramName ProgramInfoName, paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
	sizeReturn := C.size_t(0)
	status := C.clGetProgramInfo(
		program.handle(),
		C.cl_program_info(paramName),
		C.size_t(paramSize),
		paramValue,
		&sizeReturn)
	if status != C.CL_SUCCESS {
		return 0, StatusError(status)
	}
	return uintptr(sizeReturn), nil
}

// ProgramNumDevices is a convenience method for ProgramInfo() to retrieve the ProgramNumDevicesInfo property.
func ProgramNumDevices(program Program) (uint32, error) {
	var count C.cl_uint
	if _, err := ProgramInfo(program, ProgramNumDevicesInfo, unsafe.Sizeof(count), unsafe.Pointer(&count)); err != nil {
		return 0, err
	}
	return uint32(count), nil
}

// ProgramDevices is a convenience method for ProgramInfo() to retrieve the ProgramDevicesInfo property.
func ProgramDevices(program Program) ([]DeviceID, error) {
	count, err := ProgramNumDevices(program)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]DeviceID, count)
	size := uintptr(count) * unsafe.Sizeof(DeviceID(0))
	if _, err := ProgramInfo(program, ProgramDevicesInfo, size, unsafe.Pointer(&ids[0])); err != nil {
		return nil, err
	}
	return ids, nil
}

// ProgramBinarySizes is a convenience method for ProgramInfo() to retrieve the ProgramBinarySizesInfo property.
func ProgramBinarySizes(program Program) ([]uintptr, error) {
	count, err := ProgramNumDevices(program)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	sizes := make([]C.size_t, count)
	size := uintptr(count) * unsafe.Sizeof(sizes[0])
	if _, err := ProgramInfo(program, ProgramBinarySizesInfo, size, unsafe.Pointer(&sizes[0])); err != nil {
		return nil, err
	}
	out := make([]uintptr, count)
	for i, s := range sizes {
		out[i] = uintptr(s)
	}
	return out, nil
}

// ProgramBinaries is a convenience method for ProgramInfo() to retrieve the ProgramBinariesInfo property.
//
// The returned slice has one entry per device associated with the program, in the same order as ProgramDevices().
// A device for which the program has not yet been built is represented by an empty (zero-length) slice.
func ProgramBinaries(program Program) ([][]byte, error) {
	sizes, err := ProgramBinarySizes(program)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, nil
	}
	buffers := make([][]byte, len(sizes))
	ptrs := make([]unsafe.Pointer, len(sizes))
	for i, size := range sizes {
		if size == 0 {
			continue
		}
		buffers[i] = make([]byte, size)
		ptrs[i] = unsafe.Pointer(&buffers[i][0])
	}
	argSize := uintptr(len(ptrs)) * unsafe.Sizeof(ptrs[0])
	if _, err := ProgramInfo(program, ProgramBinariesInfo, argSize, unsafe.Pointer(&ptrs[0])); err != nil {
		return nil, err
	}
	return buffers, nil
}
