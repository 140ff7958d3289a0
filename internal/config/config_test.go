package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSumstackCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := []byte(`
grid:
  cols: 6
  max_rows: 8
  initial_rows: 2
values:
  min: 2
  max: 7
target:
  min: 5
  max: 15
time:
  limit_seconds: 12.5
ui:
  overshoot_flash_ms: 250
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSumstack(path)
	if err != nil {
		t.Fatalf("LoadSumstack() failed: %v", err)
	}

	if cfg.Grid.Cols != 6 || cfg.Grid.MaxRows != 8 || cfg.Grid.InitialRows != 2 {
		t.Errorf("Grid = %+v, want {6 8 2}", cfg.Grid)
	}
	if cfg.Values.Min != 2 || cfg.Values.Max != 7 {
		t.Errorf("Values = %+v, want {2 7}", cfg.Values)
	}
	if cfg.Target.Min != 5 || cfg.Target.Max != 15 {
		t.Errorf("Target = %+v, want {5 15}", cfg.Target)
	}
	if cfg.Time.LimitSeconds != 12.5 {
		t.Errorf("Time.LimitSeconds = %v, want 12.5", cfg.Time.LimitSeconds)
	}
	if cfg.UI.OvershootFlashMs != 250 {
		t.Errorf("UI.OvershootFlashMs = %d, want 250", cfg.UI.OvershootFlashMs)
	}
}

func TestLoadSumstackMissingCustomPath(t *testing.T) {
	_, err := LoadSumstack(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadSumstack() with missing custom path should fail")
	}
}

func TestLoadSumstackBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadSumstack(path); err == nil {
		t.Error("LoadSumstack() with unparseable custom config should fail")
	}
}

func TestDefaultSumstackConfig(t *testing.T) {
	cfg := DefaultSumstackConfig()

	if cfg.Grid.Cols != 8 || cfg.Grid.MaxRows != 10 || cfg.Grid.InitialRows != 3 {
		t.Errorf("Grid = %+v, want {8 10 3}", cfg.Grid)
	}
	if cfg.Values.Min != 1 || cfg.Values.Max != 9 {
		t.Errorf("Values = %+v, want {1 9}", cfg.Values)
	}
	if cfg.Target.Min != 10 || cfg.Target.Max != 25 {
		t.Errorf("Target = %+v, want {10 25}", cfg.Target)
	}
	if cfg.Time.LimitSeconds != 30 {
		t.Errorf("Time.LimitSeconds = %v, want 30", cfg.Time.LimitSeconds)
	}
}

func TestApplySumstackPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantTargetMin int
		wantTargetMax int
		wantLimit     float64
	}{
		{DifficultyEasy, 8, 18, 45},
		{DifficultyNormal, 10, 25, 30},
		{DifficultyHard, 15, 35, 20},
		{"", 10, 25, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSumstackConfig()
			ApplySumstackPreset(&cfg, tt.preset)

			if cfg.Target.Min != tt.wantTargetMin || cfg.Target.Max != tt.wantTargetMax {
				t.Errorf("Target = {%d %d}, want {%d %d}",
					cfg.Target.Min, cfg.Target.Max, tt.wantTargetMin, tt.wantTargetMax)
			}
			if cfg.Time.LimitSeconds != tt.wantLimit {
				t.Errorf("Time.LimitSeconds = %v, want %v", cfg.Time.LimitSeconds, tt.wantLimit)
			}
			// Presets never touch the board shape
			if cfg.Grid != DefaultSumstackConfig().Grid {
				t.Errorf("Grid changed by preset: %+v", cfg.Grid)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []string{"", "easy", "normal", "hard"} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"extreme", "EASY", "fixed"} {
		if ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = true, want false", p)
		}
	}
}
