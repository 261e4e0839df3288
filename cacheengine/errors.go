package cacheengine

import (
	"fmt"
	"strings"

	"github.com/gnieto/cl-cache/cl12"
	"github.com/hashicorp/go-multierror"
)

// ClError wraps a driver-side failure that the engine did not otherwise classify.
type ClError struct {
	Op  string
	Err error
}

func (e *ClError) Error() string { return fmt.Sprintf("cacheengine: %s: %v", e.Op, e.Err) }
func (e *ClError) Unwrap() error { return e.Err }

// ClBuildError reports a failed compile, or a compile that the driver reported as successful but that produced
// an empty binary for at least one device. Logs holds the per-device build log, keyed by driver device id.
type ClBuildError struct {
	Logs map[cl12.DeviceID]string
}

func (e *ClBuildError) Error() string {
	var merr *multierror.Error
	for device, log := range e.Logs {
		merr = multierror.Append(merr, fmt.Errorf("device %s: %s", device, strings.TrimSpace(log)))
	}
	if merr == nil {
		return "cacheengine: build failed"
	}
	return fmt.Sprintf("cacheengine: build failed: %v", merr)
}

// NotAllBinariesLoaded is returned by GetWithTag when at least one requested device has no entry under the tag;
// there is no source to fall back to compiling from.
type NotAllBinariesLoaded struct {
	Devices []cl12.DeviceID
}

func (e *NotAllBinariesLoaded) Error() string {
	return fmt.Sprintf("cacheengine: tag missing for %d of the requested devices", len(e.Devices))
}

// NeedBinaryProgram is returned by PutWithTag when the program being tagged has not been built for every
// requested device (a source-only or partially-built program has no binary to cache).
type NeedBinaryProgram struct {
	Device cl12.DeviceID
}

func (e *NeedBinaryProgram) Error() string {
	return fmt.Sprintf("cacheengine: program has no binary for device %s", e.Device)
}

// CacheError reports a backend failure not otherwise classified (an I/O error is wrapped into one of these).
type CacheError struct {
	Op  string
	Err error
}

func (e *CacheError) Error() string { return fmt.Sprintf("cacheengine: backend %s: %v", e.Op, e.Err) }
func (e *CacheError) Unwrap() error { return e.Err }
