package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a front-end drives. Step is called exactly once per
// logical tick; Cells is a display-encoded view that the driver must not
// mutate.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider maps display values returned by Cells to colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}
