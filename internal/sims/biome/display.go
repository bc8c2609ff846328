package biome

import (
	"image/color"
	"math"
)

const (
	displayTerrainShift = 6
	displayLevelMask    = 0x3f
	levelsPerDecade     = 10
)

// DisplayLevels is the number of population shades per terrain.
const DisplayLevels = displayLevelMask + 1

var biomePalette = buildBiomePalette()

// Palette exposes the color palette used for rendering the biome world.
func (w *World) Palette() []color.RGBA {
	return biomePalette
}

// PopulationLevel maps a population onto a logarithmic shade in
// [0, DisplayLevels). Zero population is level zero.
func PopulationLevel(pop int) uint8 {
	if pop <= 0 {
		return 0
	}
	level := 1 + int(math.Log10(float64(pop))*levelsPerDecade)
	if level > displayLevelMask {
		level = displayLevelMask
	}
	return uint8(level)
}

// EncodeDisplay packs terrain and population shade into one palette index.
func EncodeDisplay(t Terrain, pop int) uint8 {
	return uint8(t)<<displayTerrainShift | PopulationLevel(pop)
}

// DecodeDisplay splits a palette index back into terrain and shade.
func DecodeDisplay(v uint8) (Terrain, uint8) {
	return Terrain(v >> displayTerrainShift), v & displayLevelMask
}

func (w *World) rebuildDisplay() {
	for i := range w.display {
		w.display[i] = EncodeDisplay(w.state.Terrain[i], w.state.Pop[i])
	}
}

func buildBiomePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		t, level := DecodeDisplay(uint8(i))
		palette[i] = PaletteColor(t, level)
	}
	return palette
}

// PaletteColor is the color for a terrain at a population shade. Shades
// blend the terrain color toward the settlement color.
func PaletteColor(t Terrain, level uint8) color.RGBA {
	if !t.Valid() {
		return color.RGBA{A: 255}
	}
	base := terrainColor(t)
	if level == 0 {
		return base
	}
	weight := 0.25 + 0.75*float64(level)/float64(displayLevelMask)
	return blendColors(base, color.RGBA{R: 235, G: 60, B: 40, A: 255}, weight)
}

func terrainColor(t Terrain) color.RGBA {
	switch t {
	case TerrainResource:
		return color.RGBA{R: 128, G: 64, B: 0, A: 255}
	case TerrainWater:
		return color.RGBA{R: 77, G: 179, B: 255, A: 255}
	default:
		return color.RGBA{R: 51, G: 102, B: 0, A: 255}
	}
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*inv + float64(b)*overlayWeight + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}
