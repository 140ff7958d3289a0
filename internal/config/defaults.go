package config

import (
	_ "embed"
)

//go:embed defaults/sumstack.yaml
var defaultSumstackYAML []byte

// DefaultSumstackConfig returns the default game configuration, used as
// the last-resort fallback when even the embedded YAML fails to parse.
func DefaultSumstackConfig() SumstackConfig {
	return SumstackConfig{
		Grid: GridConfig{
			Cols:        8,
			MaxRows:     10,
			InitialRows: 3,
		},
		Values: ValuesConfig{
			Min: 1,
			Max: 9,
		},
		Target: TargetConfig{
			Min: 10,
			Max: 25,
		},
		Time: TimeConfig{
			LimitSeconds: 30,
		},
		UI: UIConfig{
			OvershootFlashMs: 500,
		},
	}
}
