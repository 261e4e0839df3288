package cachekey_test

import (
	"testing"

	"github.com/gnieto/cl-cache/cachekey"
	"github.com/stretchr/testify/assert"
)

func TestKeyIsDeterministic(t *testing.T) {
	t.Parallel()
	h := cachekey.NewHasher()
	fp := cachekey.Fingerprint{DeviceName: "GeForce", PlatformName: "NVIDIA CUDA", PlatformVersion: "OpenCL 1.2"}

	first := h.Key("__kernel void noop() {}", fp, "")
	second := h.Key("__kernel void noop() {}", fp, "")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestKeySeparatesDevices(t *testing.T) {
	t.Parallel()
	h := cachekey.NewHasher()
	source := "__kernel void noop() {}"
	fp1 := cachekey.Fingerprint{DeviceName: "GeForce", PlatformName: "NVIDIA CUDA", PlatformVersion: "OpenCL 1.2"}
	fp2 := cachekey.Fingerprint{DeviceName: "Radeon", PlatformName: "NVIDIA CUDA", PlatformVersion: "OpenCL 1.2"}

	assert.NotEqual(t, h.Key(source, fp1, ""), h.Key(source, fp2, ""))
}

func TestKeySeparatesOptions(t *testing.T) {
	t.Parallel()
	h := cachekey.NewHasher()
	source := "__kernel void noop() {}"
	fp := cachekey.Fingerprint{DeviceName: "GeForce", PlatformName: "NVIDIA CUDA", PlatformVersion: "OpenCL 1.2"}

	assert.NotEqual(t, h.Key(source, fp, ""), h.Key(source, fp, "-D X=1"))
}

func TestTagKeyIsPrefixedVerbatim(t *testing.T) {
	t.Parallel()
	h := cachekey.NewHasher()
	fp := cachekey.Fingerprint{DeviceName: "GeForce", PlatformName: "NVIDIA CUDA", PlatformVersion: "OpenCL 1.2"}

	key := h.TagKey("v1", fp)

	assert.True(t, len(key) > len("v1"))
	assert.Equal(t, "v1", key[:len("v1")])
	assert.Len(t, key, len("v1")+64)
}

func TestTagKeyReusesDigestAcrossCalls(t *testing.T) {
	t.Parallel()
	h := cachekey.NewHasher()
	fp := cachekey.Fingerprint{DeviceName: "GeForce", PlatformName: "NVIDIA CUDA", PlatformVersion: "OpenCL 1.2"}

	first := h.TagKey("v1", fp)
	_ = h.Key("some other content", fp, "")
	second := h.TagKey("v1", fp)

	assert.Equal(t, first, second, "Reset() must fully clear state left by an intervening Key() call")
}
