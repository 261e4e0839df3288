package clhandle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramStateDistinctValues(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, ProgramSourceOnly, ProgramBinaryLoaded)
	assert.NotEqual(t, ProgramSourceOnly, ProgramBuilt)
	assert.NotEqual(t, ProgramBinaryLoaded, ProgramBuilt)
}

func TestNewProgramFromBinaryRejectsEmptyBinary(t *testing.T) {
	t.Parallel()
	count := int32(1)
	devices := []Device{{id: 1, name: "dev0", refCount: &count}}

	_, err := NewProgramFromBinary(Context{}, devices, [][]byte{{}})

	assert.ErrorContains(t, err, "dev0")
}

func TestNewProgramFromBinaryRejectsNoDevices(t *testing.T) {
	t.Parallel()
	_, err := NewProgramFromBinary(Context{}, nil, nil)
	assert.Error(t, err)
}
