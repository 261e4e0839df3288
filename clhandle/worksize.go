package clhandle

import "github.com/gnieto/cl-cache/cl12"

// WorkSize describes the global (and, optionally, local) size of an ND-range kernel launch in a
// dimension-agnostic way. WorkSize1D, WorkSize2D and WorkSize3D implement it.
type WorkSize interface {
	dimensions() []cl12.WorkDimension
}

// WorkSize1D launches a kernel over a single dimension. LocalSize of zero lets the driver pick a work-group
// size. Offset of zero means global IDs start at 0, the same as leaving it absent.
type WorkSize1D struct {
	GlobalSize uintptr
	LocalSize  uintptr
	Offset     uintptr
}

func (ws WorkSize1D) dimensions() []cl12.WorkDimension {
	return []cl12.WorkDimension{{GlobalOffset: ws.Offset, GlobalSize: ws.GlobalSize, LocalSize: ws.LocalSize}}
}

// WorkSize2D launches a kernel over two dimensions.
type WorkSize2D struct {
	GlobalSize [2]uintptr
	LocalSize  [2]uintptr
	Offset     [2]uintptr
}

func (ws WorkSize2D) dimensions() []cl12.WorkDimension {
	return []cl12.WorkDimension{
		{GlobalOffset: ws.Offset[0], GlobalSize: ws.GlobalSize[0], LocalSize: ws.LocalSize[0]},
		{GlobalOffset: ws.Offset[1], GlobalSize: ws.GlobalSize[1], LocalSize: ws.LocalSize[1]},
	}
}

// WorkSize3D launches a kernel over three dimensions.
type WorkSize3D struct {
	GlobalSize [3]uintptr
	LocalSize  [3]uintptr
	Offset     [3]uintptr
}

func (ws WorkSize3D) dimensions() []cl12.WorkDimension {
	return []cl12.WorkDimension{
		{GlobalOffset: ws.Offset[0], GlobalSize: ws.GlobalSize[0], LocalSize: ws.LocalSize[0]},
		{GlobalOffset: ws.Offset[1], GlobalSize: ws.GlobalSize[1], LocalSize: ws.LocalSize[1]},
		{GlobalOffset: ws.Offset[2], GlobalSize: ws.GlobalSize[2], LocalSize: ws.LocalSize[2]},
	}
}
