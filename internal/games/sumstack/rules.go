package sumstack

// Rules holds the fixed parameters of a session. They are loaded from the
// config layer at game start and never change while a session is running.
type Rules struct {
	Cols        int     // Grid width in blocks
	MaxRows     int     // A block reaching this row ends the game
	InitialRows int     // Rows generated at session start
	MinValue    int     // Lowest block value (inclusive)
	MaxValue    int     // Highest block value (inclusive)
	TargetMin   int     // Lowest target sum (inclusive)
	TargetMax   int     // Highest target sum (inclusive)
	TimeLimit   float64 // Countdown length in seconds (time mode only)
}

// DefaultRules returns the standard game parameters.
func DefaultRules() Rules {
	return Rules{
		Cols:        8,
		MaxRows:     10,
		InitialRows: 3,
		MinValue:    1,
		MaxValue:    9,
		TargetMin:   10,
		TargetMax:   25,
		TimeLimit:   30.0,
	}
}

// timeLimitTenths returns the countdown length in tenths of a second.
// Time is tracked in integer tenths so that repeated 100ms ticks reach
// exactly zero with no float drift.
func (r Rules) timeLimitTenths() int {
	return int(r.TimeLimit*10 + 0.5)
}
