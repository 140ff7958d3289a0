package sumstack

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Status     Status
	Mode       Mode
	BlockCount int
	MaxRow     int // Highest occupied row, -1 when the grid is empty
	Target     int
	Score      int
	HighScore  int
	TimeLeft   float64
	Selected   int
	Overshoot  bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	maxRow := -1
	for _, b := range s.blocks {
		if b.Row > maxRow {
			maxRow = b.Row
		}
	}

	return Snapshot{
		Status:     s.status,
		Mode:       s.mode,
		BlockCount: len(s.blocks),
		MaxRow:     maxRow,
		Target:     s.target,
		Score:      s.score,
		HighScore:  s.highScore,
		TimeLeft:   s.TimeLeft(),
		Selected:   s.selection.Len(),
		Overshoot:  s.overshoot,
	}
}
