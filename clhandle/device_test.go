package clhandle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceCloneSharesRefCount(t *testing.T) {
	t.Parallel()
	count := int32(1)
	original := Device{id: 42, name: "test-device", refCount: &count}

	clone := original.Clone()

	assert.Equal(t, int32(2), *original.refCount)
	assert.Same(t, original.refCount, clone.refCount)
	assert.Equal(t, original.ID(), clone.ID(), "clones must compare equal by driver id")
}

func TestDeviceIDIsTheComparableKey(t *testing.T) {
	t.Parallel()
	count := int32(1)
	a := Device{id: 7, name: "a", refCount: &count}
	b := Device{id: 7, name: "b", refCount: &count}

	assert.Equal(t, a.ID(), b.ID(), "two Device values wrapping the same driver id must share a map key")
}
