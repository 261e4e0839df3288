// Package query implements the platform and device selector variants callers use to pick a target from the
// handles clhandle enumerates, without the cache engine itself knowing about selection policy.
package query

import (
	"fmt"
	"regexp"

	"github.com/gnieto/cl-cache/cl12"
	"github.com/gnieto/cl-cache/clhandle"
)

// PlatformQuery selects one platform out of those clhandle.Platforms() enumerates.
type PlatformQuery struct {
	kind    platformQueryKind
	index   int
	pattern string
}

type platformQueryKind int

const (
	platformDefault platformQueryKind = iota
	platformIndex
	platformRegexp
)

// DefaultPlatform selects the first enumerated platform.
func DefaultPlatform() PlatformQuery { return PlatformQuery{kind: platformDefault} }

// PlatformAtIndex selects the platform at the given position in enumeration order.
func PlatformAtIndex(index int) PlatformQuery {
	return PlatformQuery{kind: platformIndex, index: index}
}

// PlatformMatching selects the platform whose name matches pattern (case-sensitive).
func PlatformMatching(pattern string) PlatformQuery {
	return PlatformQuery{kind: platformRegexp, pattern: pattern}
}

// Resolve evaluates the query against the currently enumerated platforms.
func (q PlatformQuery) Resolve() (clhandle.Platform, error) {
	platforms, err := clhandle.Platforms()
	if err != nil {
		return clhandle.Platform{}, fmt.Errorf("query: enumerate platforms: %w", err)
	}
	if len(platforms) == 0 {
		return clhandle.Platform{}, fmt.Errorf("query: no platforms available")
	}

	switch q.kind {
	case platformDefault:
		return platforms[0], nil
	case platformIndex:
		if q.index < 0 || q.index >= len(platforms) {
			return clhandle.Platform{}, fmt.Errorf("query: platform index %d out of range (have %d)", q.index, len(platforms))
		}
		return platforms[q.index], nil
	case platformRegexp:
		re, err := regexp.Compile(q.pattern)
		if err != nil {
			return clhandle.Platform{}, fmt.Errorf("query: invalid platform pattern %q: %w", q.pattern, err)
		}
		for _, p := range platforms {
			if re.MatchString(p.Name()) {
				return p, nil
			}
		}
		return clhandle.Platform{}, fmt.Errorf("query: no platform name matches %q", q.pattern)
	default:
		return clhandle.Platform{}, fmt.Errorf("query: unknown platform query kind %d", q.kind)
	}
}

// DeviceClass selects devices by the driver's device-type bitmask.
type DeviceClass int

const (
	// DeviceClassCPU selects CPU devices only.
	DeviceClassCPU DeviceClass = iota
	// DeviceClassGPU selects GPU devices and accelerator devices.
	DeviceClassGPU
	// DeviceClassAll selects every device type the platform exposes.
	DeviceClassAll
)

func (c DeviceClass) flags() cl12.DeviceTypeFlags {
	switch c {
	case DeviceClassCPU:
		return cl12.DeviceTypeCPU
	case DeviceClassGPU:
		return cl12.DeviceTypeGpu | cl12.DeviceTypeAccelerator
	default:
		return cl12.DeviceTypeAll
	}
}

// DeviceQuery selects zero or more devices out of those a Platform enumerates. An empty result is not an error
// at query time; callers decide whether that is acceptable.
type DeviceQuery struct {
	kind    deviceQueryKind
	index   int
	class   DeviceClass
	pattern string
}

type deviceQueryKind int

const (
	deviceIndex deviceQueryKind = iota
	deviceType
	deviceRegexp
)

// DeviceAtIndex selects the single device at the given position in enumeration order.
func DeviceAtIndex(index int) DeviceQuery { return DeviceQuery{kind: deviceIndex, index: index} }

// DevicesOfClass selects every device of the given class.
func DevicesOfClass(class DeviceClass) DeviceQuery { return DeviceQuery{kind: deviceType, class: class} }

// DevicesMatching selects every device whose name matches pattern.
func DevicesMatching(pattern string) DeviceQuery { return DeviceQuery{kind: deviceRegexp, pattern: pattern} }

// Resolve evaluates the query against the platform's currently enumerated devices.
func (q DeviceQuery) Resolve(platform clhandle.Platform) ([]clhandle.Device, error) {
	switch q.kind {
	case deviceIndex:
		all, err := platform.Devices(cl12.DeviceTypeAll)
		if err != nil {
			return nil, fmt.Errorf("query: enumerate devices: %w", err)
		}
		if q.index < 0 || q.index >= len(all) {
			return nil, fmt.Errorf("query: device index %d out of range (have %d)", q.index, len(all))
		}
		return all[q.index : q.index+1], nil
	case deviceType:
		devices, err := platform.Devices(q.class.flags())
		if err != nil {
			return nil, fmt.Errorf("query: enumerate devices: %w", err)
		}
		return devices, nil
	case deviceRegexp:
		re, err := regexp.Compile(q.pattern)
		if err != nil {
			return nil, fmt.Errorf("query: invalid device pattern %q: %w", q.pattern, err)
		}
		all, err := platform.Devices(cl12.DeviceTypeAll)
		if err != nil {
			return nil, fmt.Errorf("query: enumerate devices: %w", err)
		}
		var matched []clhandle.Device
		for _, d := range all {
			if re.MatchString(d.Name()) {
				matched = append(matched, d)
			}
		}
		return matched, nil
	default:
		return nil, fmt.Errorf("query: unknown device query kind %d", q.kind)
	}
}
