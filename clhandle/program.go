package clhandle

import (
	"fmt"

	"github.com/gnieto/cl-cache/cl12"
)

// ProgramState tracks where a Program sits in its from-source-or-binary, then-build lifecycle.
//
//	          FromSource                   Build(options)
//	    ∅ ─────────────────▶ SourceOnly ─────────────────▶ Built
//	          FromBinary                    Build
//	    ∅ ─────────────────▶ BinaryLoaded ───────────────▶ Built
//
// Binaries() only returns non-empty blobs once the program is at least BinaryLoaded or Built.
type ProgramState int

const (
	// ProgramSourceOnly is a program constructed from source that has not yet been built.
	ProgramSourceOnly ProgramState = iota
	// ProgramBinaryLoaded is a program constructed from per-device binaries that has not yet been finalised.
	ProgramBinaryLoaded
	// ProgramBuilt is a program that has completed a successful build (compile-and-link from source, or
	// finalisation from binaries) for every device it was built against.
	ProgramBuilt
)

// Program owns a driver-side program object bound to a context and a set of devices.
type Program struct {
	id    cl12.Program
	state ProgramState
}

// NewProgramFromSource creates a program from kernel source text. The result starts in ProgramSourceOnly state;
// call Build() to compile it.
func NewProgramFromSource(ctx Context, source string) (Program, error) {
	id, err := cl12.CreateProgramWithSource(ctx.id, source)
	if err != nil {
		return Program{}, fmt.Errorf("clhandle: create program from source: %w", err)
	}
	return Program{id: id, state: ProgramSourceOnly}, nil
}

// NewProgramFromBinary creates a program from one compiled binary per device, in the same order as devices.
// The result starts in ProgramBinaryLoaded state; call Build() to finalise it so kernels can be created.
func NewProgramFromBinary(ctx Context, devices []Device, binaries [][]byte) (Program, error) {
	if len(devices) == 0 {
		return Program{}, fmt.Errorf("clhandle: create program from binary: no devices")
	}
	for i, binary := range binaries {
		if len(binary) == 0 {
			return Program{}, fmt.Errorf("clhandle: create program from binary: empty binary for device %d (%s)", i, devices[i].Name())
		}
	}
	ids := make([]cl12.DeviceID, len(devices))
	for i, d := range devices {
		ids[i] = d.ID()
	}
	id, err := cl12.CreateProgramWithBinary(ctx.id, ids, binaries)
	if err != nil {
		return Program{}, fmt.Errorf("clhandle: create program from binary: %w", err)
	}
	return Program{id: id, state: ProgramBinaryLoaded}, nil
}

// AdoptProgram wraps a raw program id obtained from elsewhere, retaining it once. Its ProgramState is assumed to
// be ProgramBuilt, since a program crossing the host-ABI boundary is expected to already be usable.
func AdoptProgram(id cl12.Program) (Program, error) {
	if err := cl12.RetainProgram(id); err != nil {
		return Program{}, fmt.Errorf("clhandle: retain program: %w", err)
	}
	return Program{id: id, state: ProgramBuilt}, nil
}

// ID returns the raw driver program identifier.
func (p Program) ID() cl12.Program { return p.id }

// State returns the program's current position in its build lifecycle.
func (p Program) State() ProgramState { return p.state }

// Build compiles (for a source-only program) or finalises (for a binary-loaded program) the program for the
// given devices with the given build options. On success the program transitions to ProgramBuilt.
func (p *Program) Build(devices []Device, options string) error {
	ids := make([]cl12.DeviceID, len(devices))
	for i, d := range devices {
		ids[i] = d.ID()
	}
	if err := cl12.BuildProgram(p.id, ids, options); err != nil {
		return err
	}
	p.state = ProgramBuilt
	return nil
}

// BuildLog returns the build log produced for a device by the most recent Build() call.
func (p Program) BuildLog(device Device) (string, error) {
	return cl12.ProgramBuildLog(p.id, device.ID())
}

// Binaries returns the per-device compiled binaries, in the same order as Devices(). A device the program has
// not yet been built for is represented by an empty slice.
func (p Program) Binaries() ([][]byte, error) {
	return cl12.ProgramBinaries(p.id)
}

// Devices returns the device set this program is scoped to.
func (p Program) Devices() ([]cl12.DeviceID, error) {
	return cl12.ProgramDevices(p.id)
}

// Release releases the program's driver reference. Errors are ignored; release is best-effort and never panics.
func (p Program) Release() {
	_ = cl12.ReleaseProgram(p.id)
}
