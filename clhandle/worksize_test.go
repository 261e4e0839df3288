package clhandle

import (
	"testing"

	"github.com/gnieto/cl-cache/cl12"
	"github.com/stretchr/testify/assert"
)

func TestWorkSize1DDimensions(t *testing.T) {
	t.Parallel()
	ws := WorkSize1D{GlobalSize: 1024, LocalSize: 64}
	assert.Equal(t, []cl12.WorkDimension{{GlobalSize: 1024, LocalSize: 64}}, ws.dimensions())
}

func TestWorkSize1DDimensionsWithOffset(t *testing.T) {
	t.Parallel()
	ws := WorkSize1D{GlobalSize: 1024, LocalSize: 64, Offset: 128}
	assert.Equal(t, []cl12.WorkDimension{{GlobalOffset: 128, GlobalSize: 1024, LocalSize: 64}}, ws.dimensions())
}

func TestWorkSize2DDimensions(t *testing.T) {
	t.Parallel()
	ws := WorkSize2D{GlobalSize: [2]uintptr{16, 32}, LocalSize: [2]uintptr{4, 4}}
	assert.Equal(t, []cl12.WorkDimension{
		{GlobalSize: 16, LocalSize: 4},
		{GlobalSize: 32, LocalSize: 4},
	}, ws.dimensions())
}

func TestWorkSize3DDimensions(t *testing.T) {
	t.Parallel()
	ws := WorkSize3D{GlobalSize: [3]uintptr{8, 8, 8}, LocalSize: [3]uintptr{2, 2, 2}}
	dims := ws.dimensions()
	assert.Len(t, dims, 3)
	for i, d := range dims {
		assert.Equal(t, uintptr(8), d.GlobalSize, "dimension %d", i)
		assert.Equal(t, uintptr(2), d.LocalSize, "dimension %d", i)
	}
}
