// Package cacheengine implements the fan-out-per-device compile-or-load orchestration: given a kernel source (or
// a tag), a device set and a driver context, it returns a finalised Program built for every requested device,
// consulting and populating a cachestore.Backend along the way.
package cacheengine

import (
	"errors"
	"fmt"

	"github.com/gnieto/cl-cache/cachekey"
	"github.com/gnieto/cl-cache/cachestore"
	"github.com/gnieto/cl-cache/cl12"
	"github.com/gnieto/cl-cache/clhandle"
	"github.com/hashicorp/go-hclog"
)

// Engine owns a backend and a key hasher. It is not safe for concurrent use: callers are expected to serialise
// their own access to one Engine instance.
type Engine struct {
	backend cachestore.Backend
	hasher  *cachekey.Hasher
	logger  hclog.Logger
}

// New returns an Engine backed by backend.
func New(backend cachestore.Backend, opts ...Option) *Engine {
	e := &Engine{
		backend: backend,
		hasher:  cachekey.NewHasher(),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) fingerprintFor(device clhandle.Device) (cachekey.Fingerprint, error) {
	platform, err := clhandle.PlatformFromID(device.PlatformID())
	if err != nil {
		return cachekey.Fingerprint{}, &ClError{Op: "resolve platform", Err: err}
	}
	return cachekey.FingerprintOf(device, platform), nil
}

// Get is sugar for GetWithOptions(source, devices, ctx, "").
func (e *Engine) Get(source string, devices []clhandle.Device, ctx clhandle.Context) (clhandle.Program, error) {
	return e.GetWithOptions(source, devices, ctx, "")
}

// GetWithOptions returns a Program, built for every device in devices, assembled from cached binaries where
// available and compiled for the rest. Devices that cache-miss are compiled together in one driver build call;
// the result (hits and freshly compiled binaries) is reassembled in devices' original order and finalised as a
// from-binary Program.
func (e *Engine) GetWithOptions(source string, devices []clhandle.Device, ctx clhandle.Context, options string) (clhandle.Program, error) {
	hits := make(map[cl12.DeviceID][]byte, len(devices))
	var misses []clhandle.Device

	for _, device := range devices {
		fp, err := e.fingerprintFor(device)
		if err != nil {
			return clhandle.Program{}, err
		}
		key := e.hasher.Key(source, fp, options)
		bytes, err := e.backend.Get(key)
		switch {
		case err == nil:
			hits[device.ID()] = bytes
		case errors.Is(err, cachestore.ErrNotFound):
			misses = append(misses, device)
		default:
			return clhandle.Program{}, &CacheError{Op: "get", Err: err}
		}
	}
	e.logger.Debug("resolved device set", "total", len(devices), "hits", len(devices)-len(misses), "misses", len(misses))

	if len(misses) > 0 {
		compiled, err := e.compileMisses(ctx, source, options, misses)
		if err != nil {
			return clhandle.Program{}, err
		}
		for _, device := range misses {
			fp, err := e.fingerprintFor(device)
			if err != nil {
				return clhandle.Program{}, err
			}
			key := e.hasher.Key(source, fp, options)
			binary := compiled[device.ID()]
			if err := e.backend.Put(key, binary); err != nil {
				e.logger.Warn("backend put failed, dropping freshly compiled binary", "device", device.ID(), "key", key, "error", err)
				return clhandle.Program{}, &CacheError{Op: "put", Err: err}
			}
			hits[device.ID()] = binary
		}
	}

	final := make([][]byte, len(devices))
	for i, device := range devices {
		final[i] = hits[device.ID()]
	}
	return e.finalize(ctx, devices, final)
}

// compileMisses builds source against ctx for exactly the miss devices and extracts their binaries. It returns
// a ClBuildError if the build fails, or if the driver reports success but a miss device's binary is empty.
func (e *Engine) compileMisses(ctx clhandle.Context, source, options string, misses []clhandle.Device) (map[cl12.DeviceID][]byte, error) {
	program, err := clhandle.NewProgramFromSource(ctx, source)
	if err != nil {
		return nil, &ClError{Op: "create program from source", Err: err}
	}
	defer program.Release()

	if err := program.Build(misses, options); err != nil {
		logs := e.collectBuildLogs(program, misses)
		e.logger.Error("build failed", "devices", len(misses), "error", err, "logs", logs)
		return nil, &ClBuildError{Logs: logs}
	}

	programDeviceIDs, err := program.Devices()
	if err != nil {
		return nil, &ClError{Op: "query program devices", Err: err}
	}
	binaries, err := program.Binaries()
	if err != nil {
		return nil, &ClError{Op: "extract binaries", Err: err}
	}

	missing := make(map[cl12.DeviceID]bool, len(misses))
	for _, device := range misses {
		missing[device.ID()] = true
	}

	result := make(map[cl12.DeviceID][]byte, len(misses))
	for i, id := range programDeviceIDs {
		if !missing[id] {
			continue
		}
		if len(binaries[i]) == 0 {
			logs := e.collectBuildLogs(program, misses)
			e.logger.Error("build reported success but produced an empty binary", "device", id, "logs", logs)
			return nil, &ClBuildError{Logs: logs}
		}
		result[id] = binaries[i]
	}
	return result, nil
}

func (e *Engine) collectBuildLogs(program clhandle.Program, devices []clhandle.Device) map[cl12.DeviceID]string {
	logs := make(map[cl12.DeviceID]string, len(devices))
	for _, device := range devices {
		log, err := program.BuildLog(device)
		if err != nil {
			log = fmt.Sprintf("<build log unavailable: %v>", err)
		}
		logs[device.ID()] = log
	}
	return logs
}

// finalize constructs a from-binary Program over devices and binaries (same order) and builds it, transitioning
// it from ProgramBinaryLoaded to ProgramBuilt.
func (e *Engine) finalize(ctx clhandle.Context, devices []clhandle.Device, binaries [][]byte) (clhandle.Program, error) {
	program, err := clhandle.NewProgramFromBinary(ctx, devices, binaries)
	if err != nil {
		return clhandle.Program{}, &ClError{Op: "create program from binary", Err: err}
	}
	if err := program.Build(devices, ""); err != nil {
		logs := e.collectBuildLogs(program, devices)
		e.logger.Error("finalisation build failed", "devices", len(devices), "error", err, "logs", logs)
		return clhandle.Program{}, &ClBuildError{Logs: logs}
	}
	return program, nil
}

// GetWithTag returns a Program assembled entirely from binaries previously stored under tag. If any requested
// device has no entry under tag, it returns NotAllBinariesLoaded listing every missing device — there is no
// source to compile from.
func (e *Engine) GetWithTag(tag string, devices []clhandle.Device, ctx clhandle.Context) (clhandle.Program, error) {
	hits := make(map[cl12.DeviceID][]byte, len(devices))
	var missing []cl12.DeviceID

	for _, device := range devices {
		fp, err := e.fingerprintFor(device)
		if err != nil {
			return clhandle.Program{}, err
		}
		key := e.hasher.TagKey(tag, fp)
		bytes, err := e.backend.Get(key)
		switch {
		case err == nil:
			hits[device.ID()] = bytes
		case errors.Is(err, cachestore.ErrNotFound):
			missing = append(missing, device.ID())
		default:
			return clhandle.Program{}, &CacheError{Op: "get", Err: err}
		}
	}
	if len(missing) > 0 {
		return clhandle.Program{}, &NotAllBinariesLoaded{Devices: missing}
	}

	final := make([][]byte, len(devices))
	for i, device := range devices {
		final[i] = hits[device.ID()]
	}
	return e.finalize(ctx, devices, final)
}

// PutWithTag stores program's per-device binaries under tag, one entry per device in devices. If program has not
// been built for one of devices (an empty binary), it returns NeedBinaryProgram for that device and stores
// nothing for the remaining devices from this call.
func (e *Engine) PutWithTag(tag string, devices []clhandle.Device, program clhandle.Program) error {
	programDeviceIDs, err := program.Devices()
	if err != nil {
		return &ClError{Op: "query program devices", Err: err}
	}
	binaries, err := program.Binaries()
	if err != nil {
		return &ClError{Op: "extract binaries", Err: err}
	}
	indexOf := make(map[cl12.DeviceID]int, len(programDeviceIDs))
	for i, id := range programDeviceIDs {
		indexOf[id] = i
	}

	for _, device := range devices {
		idx, ok := indexOf[device.ID()]
		if !ok || len(binaries[idx]) == 0 {
			return &NeedBinaryProgram{Device: device.ID()}
		}
		fp, err := e.fingerprintFor(device)
		if err != nil {
			return err
		}
		key := e.hasher.TagKey(tag, fp)
		if err := e.backend.Put(key, binaries[idx]); err != nil {
			return &CacheError{Op: "put", Err: err}
		}
	}
	return nil
}
