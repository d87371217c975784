package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/magnon-tools/spinwave/internal/dispersion"
	"github.com/magnon-tools/spinwave/internal/magnon"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Model != "kalinikos-slavin" {
		t.Errorf("expected model kalinikos-slavin, got %s", cfg.Model)
	}
	if cfg.Material.Ms <= 0 {
		t.Error("default material has no magnetization")
	}
	if cfg.Wave.Points < 2 {
		t.Error("default k-grid has too few points")
	}
	if cfg.Wave.KMin <= 0 || cfg.Wave.KMax <= cfg.Wave.KMin {
		t.Error("default k-range is invalid")
	}
}

func TestConfig_Params(t *testing.T) {
	cfg := Default()
	p, err := cfg.Params()
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Ksw) != cfg.Wave.Points {
		t.Errorf("expected %d grid points, got %d", cfg.Wave.Points, len(p.Ksw))
	}
	if p.Config != dispersion.MSSW {
		t.Errorf("expected MSSW, got %v", p.Config)
	}

	cfg.Wave.Config = "sideways"
	if _, err := cfg.Params(); !errors.Is(err, magnon.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := Default()
	cfg.Model = "harms-duine"
	cfg.Wave.Heff = 1.2e5
	cfg.Wave.Pinned = true

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Model != "harms-duine" {
		t.Errorf("model = %s, want harms-duine", loaded.Model)
	}
	if loaded.Wave.Heff != 1.2e5 {
		t.Errorf("heff = %v, want 1.2e5", loaded.Wave.Heff)
	}
	if !loaded.Wave.Pinned {
		t.Error("pinned flag lost in round trip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("kalinikos-slavin", "yig-surface")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Material.Ms != 1.4e5 {
		t.Errorf("expected YIG Ms 1.4e5, got %v", cfg.Material.Ms)
	}

	if GetPreset("kalinikos-slavin", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "yig-surface") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("harms-duine")) == 0 {
		t.Error("expected presets for harms-duine")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresets_BuildCleanly(t *testing.T) {
	// Every compiled-in preset must construct its model without error.
	for model, presets := range Presets {
		for name, cfg := range presets {
			p, err := cfg.Params()
			if err != nil {
				t.Errorf("%s/%s: %v", model, name, err)
				continue
			}
			if _, err := dispersion.Build(cfg.Model, cfg.Film(), p); err != nil {
				t.Errorf("%s/%s: %v", model, name, err)
			}
		}
	}
}
