package config

// Materials holds film properties for common magnonic materials.
// Values are representative room-temperature literature numbers.
var Materials = map[string]MaterialConfig{
	"yig": {
		Ms:        1.4e5,
		Thickness: 2e-8,
		Aex:       3.5e-12,
	},
	"permalloy": {
		Ms:        8.0e5,
		Thickness: 2e-8,
		Aex:       1.3e-11,
	},
	"cofeb": {
		Ms:        1.15e6,
		Thickness: 1.5e-9,
		Aex:       1.9e-11,
	},
}

// Presets maps model name to named scenario configurations.
var Presets = map[string]map[string]*Config{
	"kalinikos-slavin": {
		"yig-surface": {
			Model: "kalinikos-slavin", Material: Materials["yig"],
			Wave: WaveConfig{KMin: 1e6, KMax: 1e8, Points: 200, Heff: 8e4, Config: "MSSW"},
		},
		"yig-backward-volume": {
			Model: "kalinikos-slavin", Material: Materials["yig"],
			Wave: WaveConfig{KMin: 1e6, KMax: 1e8, Points: 200, Heff: 8e4, Config: "BVSW"},
		},
		"permalloy-pinned": {
			Model: "kalinikos-slavin", Material: Materials["permalloy"],
			Wave: WaveConfig{ModeNo: 1, KMin: 1e6, KMax: 2e8, Points: 200, Heff: 4e5, Config: "MSSW", Pinned: true},
		},
	},
	"prabhakar-stancil": {
		"yig-surface": {
			Model: "prabhakar-stancil", Material: Materials["yig"],
			Wave: WaveConfig{KMin: 1e6, KMax: 1e8, Points: 200, Heff: 8e4, Config: "MSSW"},
		},
		"yig-forward-volume": {
			Model: "prabhakar-stancil", Material: Materials["yig"],
			Wave: WaveConfig{KMin: 1e6, KMax: 1e8, Points: 200, Heff: 8e4, Config: "FVSW"},
		},
	},
	"harms-duine": {
		"yig-exchange": {
			Model: "harms-duine", Material: Materials["yig"],
			Wave: WaveConfig{KMin: 1e6, KMax: 5e7, Points: 200, Heff: 8e4, Config: "MSSW"},
		},
		"cofeb-thin": {
			Model: "harms-duine", Material: Materials["cofeb"],
			Wave: WaveConfig{KMin: 1e6, KMax: 5e7, Points: 200, Heff: 6e5, Config: "MSSW"},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
