// Package cachekey derives the content-address and tag keys the cache engine uses to index compiled binaries.
package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/gnieto/cl-cache/clhandle"
)

// Fingerprint identifies the (device, platform) pair a binary was compiled for.
type Fingerprint struct {
	DeviceName      string
	PlatformName    string
	PlatformVersion string
}

// FingerprintOf derives a Fingerprint from a device handle and the platform it belongs to.
func FingerprintOf(device clhandle.Device, platform clhandle.Platform) Fingerprint {
	return Fingerprint{
		DeviceName:      device.Name(),
		PlatformName:    platform.Name(),
		PlatformVersion: platform.Version(),
	}
}

// Hasher derives stable, 64-hex-character content addresses from source, options and device identity. It is
// stateful only in that it reuses one digest across calls; each call resets the digest before hashing, so a
// single Hasher is safe to call repeatedly but not concurrently.
type Hasher struct {
	digest hash.Hash
}

// NewHasher returns a ready-to-use Hasher.
func NewHasher() *Hasher {
	return &Hasher{digest: sha256.New()}
}

// Key derives the 64-hex content address for (source, fp, options) as
// sha256(source ∥ fp.DeviceName ∥ fp.PlatformName ∥ fp.PlatformVersion ∥ options).
func (h *Hasher) Key(source string, fp Fingerprint, options string) string {
	h.digest.Reset()
	h.digest.Write([]byte(source))
	h.digest.Write([]byte(fp.DeviceName))
	h.digest.Write([]byte(fp.PlatformName))
	h.digest.Write([]byte(fp.PlatformVersion))
	h.digest.Write([]byte(options))
	return hex.EncodeToString(h.digest.Sum(nil))
}

// TagKey derives the key for a tag entry: the tag verbatim, followed by the 64-hex fingerprint digest
// sha256(fp.DeviceName ∥ fp.PlatformName ∥ fp.PlatformVersion). The tag is not hashed, so tag entries stay
// human-greppable on disk.
func (h *Hasher) TagKey(tag string, fp Fingerprint) string {
	h.digest.Reset()
	h.digest.Write([]byte(fp.DeviceName))
	h.digest.Write([]byte(fp.PlatformName))
	h.digest.Write([]byte(fp.PlatformVersion))
	return fmt.Sprintf("%s%s", tag, hex.EncodeToString(h.digest.Sum(nil)))
}
