package biome

import (
	"strconv"

	"popsim/internal/core"
)

// Parameters reports the active configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.W),
				intParam("h", "Height", w.grid.H),
				intParam("passes", "Smoothing passes", w.cfg.Passes),
				int64Param("seed", "Seed", w.seed),
				{Key: "mode", Label: "Tick mode", Type: core.ParamTypeString, Value: w.cfg.Mode.String()},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("seed_chance_resource", "Resource seed chance", params.SeedChanceResource),
				intParam("seed_max_resource", "Resource seed max", params.SeedMaxResource),
				floatParam("seed_chance_land", "Land seed chance", params.SeedChanceLand),
				intParam("seed_max_land", "Land seed max", params.SeedMaxLand),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("growth_chance_resource", "Resource growth chance", params.GrowthChanceResource),
				floatParam("growth_chance_land", "Land growth chance", params.GrowthChanceLand),
				floatParam("growth_rate", "Growth rate", params.GrowthRate),
			},
		},
		{
			Name: "Migration",
			Params: []core.Parameter{
				floatParam("migration_chance", "Migration chance", params.MigrationChance),
				floatParam("migration_rate", "Migration rate", params.MigrationRate),
			},
		},
		{
			Name: "Shrink",
			Params: []core.Parameter{
				floatParam("shrink_chance_resource", "Resource shrink chance", params.ShrinkChanceResource),
				floatParam("shrink_chance_land", "Land shrink chance", params.ShrinkChanceLand),
				floatParam("shrink_rate", "Shrink rate", params.ShrinkRate),
				intParam("shrink_floor", "Extinguish floor", params.ShrinkFloor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule tunables the HUD may adjust while the
// world runs. Seeding tables only take effect on the next Reset.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "growth_chance_resource", Label: "Res grow", Type: core.ParamTypeFloat, Step: 0.001, Max: 1},
		{Key: "growth_chance_land", Label: "Land grow", Type: core.ParamTypeFloat, Step: 0.001, Max: 1},
		{Key: "migration_chance", Label: "Migrate", Type: core.ParamTypeFloat, Step: 0.001, Max: 1},
		{Key: "shrink_chance_resource", Label: "Res shrink", Type: core.ParamTypeFloat, Step: 0.001, Max: 1},
		{Key: "shrink_chance_land", Label: "Land shrink", Type: core.ParamTypeFloat, Step: 0.001, Max: 1},
		{Key: "shrink_floor", Label: "Extinguish", Type: core.ParamTypeInt, Step: 1, Max: 1000},
	}
}

// SetFloatParameter updates a probability or rate; values are clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	if !w.cfg.Params.SetFloat(key, value) {
		return false
	}
	w.state.Params = w.cfg.Params
	return true
}

// SetIntParameter updates an integer table entry.
func (w *World) SetIntParameter(key string, value int) bool {
	if !w.cfg.Params.SetInt(key, value) {
		return false
	}
	w.state.Params = w.cfg.Params
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
