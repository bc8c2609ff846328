package biome

// Terrain enumerates the cell classification layer.
type Terrain uint8

const (
	TerrainLand Terrain = iota
	TerrainResource
	TerrainWater
)

// terrainCount is the number of terrain variants.
const terrainCount = 3

// Terrains lists every variant in draw order: Generate maps IntN(3) onto it.
var Terrains = [terrainCount]Terrain{TerrainLand, TerrainResource, TerrainWater}

// Valid reports whether t is one of the three variants.
func (t Terrain) Valid() bool { return t < terrainCount }

func (t Terrain) String() string {
	switch t {
	case TerrainLand:
		return "land"
	case TerrainResource:
		return "resource"
	case TerrainWater:
		return "water"
	default:
		return "invalid"
	}
}
