// Package clhandle wraps the raw, reference-counted handles the driver binding in cl12 hands back into
// owning Go values with deterministic release semantics.
//
// Adoption constructors (those taking a raw id obtained elsewhere) retain once on construction, so the wrapper
// and the caller's original reference each own exactly one count. Fresh constructors (those that call a driver
// create function) do not retain again, since the driver already returns a fresh count of one. Every wrapper's
// Release() calls the matching driver release function exactly once and ignores the resulting error: driver
// teardown is best-effort and must never panic.
package clhandle

import (
	"fmt"
	"sync"

	"github.com/gnieto/cl-cache/cl12"
)

// platformMutex serialises the two-call clGetPlatformIDs sequence. Some OpenCL implementations return an
// invalid status under concurrent platform enumeration; this is the one process-wide lock in the package.
var platformMutex sync.Mutex

// Platform is an owning handle to one OpenCL platform instance.
//
// Platforms have no driver-side reference count (OpenCL defines no clRetainPlatform/clReleasePlatform); their
// lifetime is process-long and handles are stable across queries, so Platform carries no Release() method.
type Platform struct {
	id         cl12.PlatformID
	name       string
	version    string
	vendor     string
	profile    string
	extensions string
}

// ID returns the raw driver platform identifier. Callers must not retain this value beyond the wrapper's
// lifetime.
func (p Platform) ID() cl12.PlatformID { return p.id }

// Name returns the platform's human-readable name.
func (p Platform) Name() string { return p.name }

// Version returns the OpenCL version string reported by the platform, e.g. "OpenCL 1.2".
func (p Platform) Version() string { return p.version }

// Vendor returns the platform vendor string.
func (p Platform) Vendor() string { return p.vendor }

// Profile returns the OpenCL profile name ("FULL_PROFILE" or "EMBEDDED_PROFILE").
func (p Platform) Profile() string { return p.profile }

// Extensions returns the space-separated list of extensions the platform's devices all support.
func (p Platform) Extensions() string { return p.extensions }

// Platforms enumerates every OpenCL platform available on the system.
func Platforms() ([]Platform, error) {
	platformMutex.Lock()
	ids, err := cl12.PlatformIDs()
	platformMutex.Unlock()
	if err != nil {
		return nil, fmt.Errorf("clhandle: enumerate platforms: %w", err)
	}
	platforms := make([]Platform, 0, len(ids))
	for _, id := range ids {
		p, err := newPlatform(id)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// PlatformFromID wraps a raw platform id already obtained from a device or another query, without re-enumerating
// every platform on the system.
func PlatformFromID(id cl12.PlatformID) (Platform, error) {
	return newPlatform(id)
}

func newPlatform(id cl12.PlatformID) (Platform, error) {
	name, err := cl12.PlatformInfoString(id, cl12.PlatformNameInfo)
	if err != nil {
		return Platform{}, fmt.Errorf("clhandle: platform name: %w", err)
	}
	version, err := cl12.PlatformInfoString(id, cl12.PlatformVersionInfo)
	if err != nil {
		return Platform{}, fmt.Errorf("clhandle: platform version: %w", err)
	}
	vendor, _ := cl12.PlatformInfoString(id, cl12.PlatformVendorInfo)
	profile, _ := cl12.PlatformInfoString(id, cl12.PlatformProfileInfo)
	extensions, _ := cl12.PlatformInfoString(id, cl12.PlatformExtensionsInfo)
	return Platform{
		id:         id,
		name:       name,
		version:    version,
		vendor:     vendor,
		profile:    profile,
		extensions: extensions,
	}, nil
}

