package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Run from a scratch directory so no local configs/pong.yaml leaks in.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v diverged from DefaultConfig %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	data := []byte(`
field:
  top_margin: 2
paddle:
  width: 6
ball:
  interval_ms: 30
  speed_scaling: false
ai:
  interval_ms: 50
progression:
  max_hits: 3
  max_levels: 7
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paddle.Width != 6 || cfg.Progression.MaxLevels != 7 || cfg.Ball.SpeedScaling {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected an error for unparsable yaml")
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative top margin", func(c *Config) { c.Field.TopMargin = -1 }},
		{"paddle too narrow", func(c *Config) { c.Paddle.Width = 1 }},
		{"zero ball interval", func(c *Config) { c.Ball.IntervalMs = 0 }},
		{"zero ai interval", func(c *Config) { c.AI.IntervalMs = 0 }},
		{"zero max hits", func(c *Config) { c.Progression.MaxHits = 0 }},
		{"zero max levels", func(c *Config) { c.Progression.MaxLevels = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestRulesConversion(t *testing.T) {
	rules := DefaultConfig().Rules()
	if rules.BallInterval != 25*time.Millisecond {
		t.Errorf("BallInterval = %v, expected 25ms", rules.BallInterval)
	}
	if rules.AIInterval != 45*time.Millisecond {
		t.Errorf("AIInterval = %v, expected 45ms", rules.AIInterval)
	}
	if rules.MaxHits != 5 || rules.MaxLevel != 5 || rules.PaddleWidth != 4 || rules.FieldTop != 1 {
		t.Errorf("unexpected rules %+v", rules)
	}
	if !rules.SpeedScaling {
		t.Error("SpeedScaling should carry through")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	t.Run("fixed disables scaling only", func(t *testing.T) {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, PresetFixed)
		if cfg.Ball.SpeedScaling {
			t.Error("fixed preset should disable speed scaling")
		}
		cfg.Ball.SpeedScaling = true
		if cfg != DefaultConfig() {
			t.Error("fixed preset should change nothing else")
		}
	})

	t.Run("normal is the identity", func(t *testing.T) {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, PresetNormal)
		if cfg != DefaultConfig() {
			t.Error("normal preset should leave the config untouched")
		}
	})

	t.Run("presets stay valid", func(t *testing.T) {
		for _, p := range []Preset{PresetEasy, PresetNormal, PresetHard, PresetFixed} {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, p)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid config: %v", p, err)
			}
		}
	})
}
