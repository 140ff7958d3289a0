// Package config provides YAML-based rules configuration and difficulty
// presets for sumstack.
package config

// SumstackConfig contains all tunable game parameters.
type SumstackConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Values ValuesConfig `yaml:"values"`
	Target TargetConfig `yaml:"target"`
	Time   TimeConfig   `yaml:"time"`
	UI     UIConfig     `yaml:"ui"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Cols        int `yaml:"cols"`
	MaxRows     int `yaml:"max_rows"`
	InitialRows int `yaml:"initial_rows"`
}

// ValuesConfig defines the block value range (inclusive).
type ValuesConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TargetConfig defines the target sum range (inclusive).
type TargetConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimeConfig defines time-mode parameters.
type TimeConfig struct {
	LimitSeconds float64 `yaml:"limit_seconds"`
}

// UIConfig defines presentation timing knobs.
type UIConfig struct {
	// OvershootFlashMs is how long an over-target selection stays
	// flagged before it auto-clears.
	OvershootFlashMs int `yaml:"overshoot_flash_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the string names a known preset.
func ValidPreset(preset string) bool {
	switch DifficultyPreset(preset) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, "":
		return true
	}
	return false
}

// ApplySumstackPreset adjusts config parameters for a difficulty preset.
// Presets only shift the constants before a session starts; nothing is
// runtime-mutable once play begins.
func ApplySumstackPreset(cfg *SumstackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Target.Min = 8
		cfg.Target.Max = 18
		cfg.Time.LimitSeconds = 45
	case DifficultyHard:
		cfg.Target.Min = 15
		cfg.Target.Max = 35
		cfg.Time.LimitSeconds = 20
	}
	// Normal and unset keep the loaded values.
}
