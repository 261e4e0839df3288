package query

import (
	"testing"

	"github.com/gnieto/cl-cache/cl12"
	"github.com/stretchr/testify/assert"
)

func TestDeviceClassFlags(t *testing.T) {
	t.Parallel()
	assert.Equal(t, cl12.DeviceTypeCPU, DeviceClassCPU.flags())
	assert.Equal(t, cl12.DeviceTypeGpu|cl12.DeviceTypeAccelerator, DeviceClassGPU.flags())
	assert.Equal(t, cl12.DeviceTypeAll, DeviceClassAll.flags())
}

func TestPlatformMatchingIsCaseSensitive(t *testing.T) {
	t.Parallel()
	q := PlatformMatching("^NVIDIA")
	assert.Equal(t, platformRegexp, q.kind)
	assert.Equal(t, "^NVIDIA", q.pattern)
}
