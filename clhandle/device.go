package clhandle

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/gnieto/cl-cache/cl12"
)

// Device is a shared, reference-counted handle to an OpenCL device.
//
// Devices are comparable and hashable by their driver id, independent of which Device value in the process
// happens to hold it — Clone() hands out a new Device sharing the same underlying refcount, and ID() returns the
// stable comparable key callers should use for maps (the cache engine keys its hit/miss maps this way, not by the
// Device value, which carries a private refcount pointer and is not itself comparable).
type Device struct {
	id       cl12.DeviceID
	name     string
	platform cl12.PlatformID
	refCount *int32
}

// AdoptDevice wraps a raw device id obtained from elsewhere (e.g. across the host-ABI boundary). It retains the
// device once, so the wrapper and the caller's original reference each own exactly one count.
func AdoptDevice(id cl12.DeviceID) (Device, error) {
	if err := cl12.RetainDevice(id); err != nil {
		return Device{}, fmt.Errorf("clhandle: retain device: %w", err)
	}
	return newDevice(id)
}

// devicesOf enumerates the devices of deviceType on a platform as fresh (already-owned) handles. DeviceIDs()
// performed no retain, matching the driver's own behaviour for enumeration results, so these wrappers start at
// whatever refcount the driver already holds on the platform's behalf; Clone()/Release() still balance from there.
func devicesOf(platform cl12.PlatformID, deviceType cl12.DeviceTypeFlags) ([]Device, error) {
	ids, err := cl12.DeviceIDs(platform, deviceType)
	if err != nil {
		return nil, fmt.Errorf("clhandle: enumerate devices: %w", err)
	}
	devices := make([]Device, 0, len(ids))
	for _, id := range ids {
		d, err := newDevice(id)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}

// Devices enumerates the devices of the given type belonging to a platform.
func (p Platform) Devices(deviceType cl12.DeviceTypeFlags) ([]Device, error) {
	return devicesOf(p.id, deviceType)
}

func newDevice(id cl12.DeviceID) (Device, error) {
	name, err := cl12.DeviceInfoString(id, cl12.DeviceNameInfo)
	if err != nil {
		return Device{}, fmt.Errorf("clhandle: device name: %w", err)
	}
	var platform cl12.PlatformID
	if _, err := cl12.DeviceInfo(id, cl12.DevicePlatformInfo, unsafe.Sizeof(platform), unsafe.Pointer(&platform)); err != nil {
		return Device{}, fmt.Errorf("clhandle: device platform: %w", err)
	}
	count := int32(1)
	return Device{id: id, name: name, platform: platform, refCount: &count}, nil
}

// ID returns the raw driver device identifier. This is the stable, comparable key to use when a device needs to
// be a map key or compared for equality, per the driver-id-not-reference-identity rule.
func (d Device) ID() cl12.DeviceID { return d.id }

// Name returns the device's human-readable name.
func (d Device) Name() string { return d.name }

// PlatformID returns the raw driver platform identifier this device belongs to.
func (d Device) PlatformID() cl12.PlatformID { return d.platform }

// Clone returns a new Device sharing this one's underlying reference count, incremented by one. Both the
// original and the clone must eventually have Release() called on them.
func (d Device) Clone() Device {
	atomic.AddInt32(d.refCount, 1)
	return d
}

// Release decrements the shared reference count. When it reaches zero the driver device handle is released.
// Release errors are ignored: driver teardown is best-effort and Release never panics.
func (d Device) Release() {
	if atomic.AddInt32(d.refCount, -1) == 0 {
		_ = cl12.ReleaseDevice(d.id)
	}
}
