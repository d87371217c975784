package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/magnon-tools/spinwave/internal/dispersion"
	"github.com/magnon-tools/spinwave/internal/magnon"
)

const (
	DefaultModel  = "kalinikos-slavin"
	DefaultKMin   = 1e6
	DefaultKMax   = 1e8
	DefaultPoints = 100
	DefaultHeff     = 8e4
	DefaultGeometry = "MSSW"
)

type Config struct {
	Model    string         `yaml:"model"`
	Material MaterialConfig `yaml:"material"`
	Wave     WaveConfig     `yaml:"wave"`
	Sweep    SweepConfig    `yaml:"sweep"`
}

// MaterialConfig describes the film in SI units.
type MaterialConfig struct {
	Ms        float64 `yaml:"ms"`        // A/m
	Thickness float64 `yaml:"thickness"` // m
	Aex       float64 `yaml:"aex"`       // J/m
}

type WaveConfig struct {
	ModeNo int     `yaml:"mode_no"`
	KMin   float64 `yaml:"kmin"` // rad/m
	KMax   float64 `yaml:"kmax"` // rad/m
	Points int     `yaml:"points"`
	Heff   float64 `yaml:"heff"` // A/m
	Config string  `yaml:"config"`
	Pinned bool    `yaml:"pinned"`
}

type SweepConfig struct {
	HeffMin float64 `yaml:"heff_min"` // A/m
	HeffMax float64 `yaml:"heff_max"` // A/m
	Curves  int     `yaml:"curves"`
}

func Default() *Config {
	return &Config{
		Model:    DefaultModel,
		Material: Materials["yig"],
		Wave: WaveConfig{
			KMin:   DefaultKMin,
			KMax:   DefaultKMax,
			Points: DefaultPoints,
			Heff:   DefaultHeff,
			Config: DefaultGeometry,
		},
		Sweep: SweepConfig{
			HeffMin: 4e4,
			HeffMax: 1.6e5,
			Curves:  4,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Film converts the material section to the model input type.
func (c *Config) Film() magnon.Film {
	return magnon.Film{
		Ms:        c.Material.Ms,
		Thickness: c.Material.Thickness,
		Aex:       c.Material.Aex,
	}
}

// Params resolves the wave section to model parameters. The configuration
// name is parsed here, so an unknown name surfaces before any model is
// built.
func (c *Config) Params() (dispersion.Params, error) {
	mode, err := dispersion.ParseMode(c.Wave.Config)
	if err != nil {
		return dispersion.Params{}, err
	}
	return dispersion.Params{
		ModeNo: c.Wave.ModeNo,
		Ksw:    magnon.Span(c.Wave.KMin, c.Wave.KMax, c.Wave.Points),
		Heff:   c.Wave.Heff,
		Config: mode,
		Pinned: c.Wave.Pinned,
	}, nil
}
