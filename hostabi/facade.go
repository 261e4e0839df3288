package hostabi

import (
	"fmt"

	"github.com/gnieto/cl-cache/cacheengine"
	"github.com/gnieto/cl-cache/cachestore"
	"github.com/gnieto/cl-cache/cl12"
	"github.com/gnieto/cl-cache/clhandle"
)

// CreateFS creates a filesystem-backed cache instance rooted at path and registers it on the calling thread.
// The returned handle is only valid on the thread that created it.
func CreateFS(path string) (HandleID, error) {
	backend, err := cachestore.NewFilesystem(path)
	if err != nil {
		return 0, fmt.Errorf("hostabi: create filesystem backend: %w", err)
	}
	return global.register(cacheengine.New(backend)), nil
}

// adoptAll wraps each raw device id, retaining it once, and returns a release function that undoes exactly
// those retains (the facade's own reference), leaving the caller's original reference untouched.
func adoptAll(deviceIDs []cl12.DeviceID) ([]clhandle.Device, func(), error) {
	devices := make([]clhandle.Device, 0, len(deviceIDs))
	release := func() {
		for _, d := range devices {
			d.Release()
		}
	}
	for _, id := range deviceIDs {
		d, err := clhandle.AdoptDevice(id)
		if err != nil {
			logger.Warn("adopt device failed", "device", id, "error", err)
			release()
			return nil, func() {}, fmt.Errorf("hostabi: adopt device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, release, nil
}

// Get adapts cache_get: borrowed devices and context, source with default options, transferring ownership of
// the returned raw program handle to the caller.
func Get(id HandleID, source string, deviceIDs []cl12.DeviceID, contextID cl12.Context) (cl12.Program, error) {
	return GetWithOptions(id, source, deviceIDs, contextID, "")
}

// GetWithOptions adapts cache_get_with_options.
func GetWithOptions(id HandleID, source string, deviceIDs []cl12.DeviceID, contextID cl12.Context, options string) (cl12.Program, error) {
	engine, err := global.lookup(id)
	if err != nil {
		return 0, err
	}
	devices, releaseDevices, err := adoptAll(deviceIDs)
	if err != nil {
		return 0, err
	}
	defer releaseDevices()
	ctx, err := clhandle.AdoptContext(contextID)
	if err != nil {
		return 0, fmt.Errorf("hostabi: adopt context: %w", err)
	}
	defer ctx.Release()

	program, err := engine.GetWithOptions(source, devices, ctx, options)
	if err != nil {
		logger.Error("cache_get_with_options failed", "handle", id, "error", err)
		return 0, err
	}
	return program.ID(), nil
}

// GetWithTag adapts cache_get_with_tag.
func GetWithTag(id HandleID, tag string, deviceIDs []cl12.DeviceID, contextID cl12.Context) (cl12.Program, error) {
	engine, err := global.lookup(id)
	if err != nil {
		return 0, err
	}
	devices, releaseDevices, err := adoptAll(deviceIDs)
	if err != nil {
		return 0, err
	}
	defer releaseDevices()
	ctx, err := clhandle.AdoptContext(contextID)
	if err != nil {
		return 0, fmt.Errorf("hostabi: adopt context: %w", err)
	}
	defer ctx.Release()

	program, err := engine.GetWithTag(tag, devices, ctx)
	if err != nil {
		return 0, err
	}
	return program.ID(), nil
}

// PutWithTag adapts cache_put_with_tag. The program handle is borrowed: the facade retains it for the duration
// of the call and releases its own reference before returning, leaving the caller's copy untouched.
func PutWithTag(id HandleID, tag string, deviceIDs []cl12.DeviceID, programID cl12.Program) error {
	engine, err := global.lookup(id)
	if err != nil {
		return err
	}
	devices, releaseDevices, err := adoptAll(deviceIDs)
	if err != nil {
		return err
	}
	defer releaseDevices()
	program, err := clhandle.AdoptProgram(programID)
	if err != nil {
		return fmt.Errorf("hostabi: adopt program: %w", err)
	}
	defer program.Release()

	return engine.PutWithTag(tag, devices, program)
}
