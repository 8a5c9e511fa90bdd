package config

import "sort"

func preset(scenario string, params map[string]float64) *Config {
	cfg := DefaultConfig()
	cfg.Scenario = scenario
	cfg.Params = params
	return cfg
}

var Presets = map[string]map[string]*Config{
	"projectile": {
		"classic": preset("projectile", nil),
		"lob":     preset("projectile", map[string]float64{"vx": 15, "vy": 55, "horizon": 11.224}),
		"flat":    preset("projectile", map[string]float64{"vx": 60, "vy": 15, "horizon": 3.061}),
	},
	"circular": {
		"slow": preset("circular", map[string]float64{"period": 2}),
		"fast": preset("circular", map[string]float64{"period": 0.5}),
	},
	"satellite": {
		"low_orbit": preset("satellite", nil),
	},
	"shm": {
		"stiff": preset("shm", map[string]float64{"k": 20}),
		"heavy": preset("shm", map[string]float64{"mass": 4}),
	},
	"inclined_plane": {
		"gentle": preset("inclined_plane", map[string]float64{"angle": 10}),
		"steep":  preset("inclined_plane", map[string]float64{"angle": 40}),
	},
	"buoyancy": {
		"floats": preset("buoyancy", map[string]float64{"density": 500}),
		"sinks":  preset("buoyancy", map[string]float64{"density": 2700}),
	},
	"length_contraction": {
		"near_light": preset("length_contraction", map[string]float64{"speed": 2.5e8}),
	},
	"launcher": {
		"far_target": preset("launcher", map[string]float64{"target": 2}),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scenario, name string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
