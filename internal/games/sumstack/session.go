package sumstack

import "math/rand"

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Mode selects the session's advancement rule.
type Mode string

const (
	// ModeClassic pushes a fresh row after every successful clear.
	ModeClassic Mode = "classic"
	// ModeTime pushes a fresh row when the countdown runs out; a
	// successful clear resets the countdown instead of adding a row.
	ModeTime Mode = "time"
)

// HighScoreStore persists the best score per mode across sessions.
// Implementations must treat failures as non-fatal: the session keeps
// its in-memory high score regardless of persistence availability.
type HighScoreStore interface {
	LoadHighScore(modeID string) (int, error)
	SaveHighScore(modeID string, score int) error
}

// Session owns the complete game state for one play-through and is the
// only mutation entry point. All methods are synchronous; callers drive
// it from a single goroutine.
type Session struct {
	rules Rules
	gen   *Generator
	store HighScoreStore // may be nil

	status    Status
	mode      Mode
	blocks    []Block
	target    int
	score     int
	highScore int
	selection Selection
	overshoot bool

	// Countdown in tenths of a second, time mode only.
	timeTenths int
}

// NewSession creates an idle session. Call Start to begin playing.
// store may be nil, in which case high scores live in memory only.
func NewSession(rules Rules, rng *rand.Rand, store HighScoreStore) *Session {
	return &Session{
		rules:  rules,
		gen:    NewGenerator(rules, rng),
		store:  store,
		status: StatusIdle,
	}
}

// Start begins a fresh session in the given mode: new grid of
// InitialRows, new target, score 0, empty selection, full countdown.
func (s *Session) Start(mode Mode) {
	s.mode = mode
	s.status = StatusPlaying
	s.blocks = s.gen.InitialGrid(s.rules.InitialRows)
	s.target = s.gen.Target()
	s.score = 0
	s.selection.Clear()
	s.overshoot = false
	s.timeTenths = 0
	if mode == ModeTime {
		s.timeTenths = s.rules.timeLimitTenths()
	}
	s.loadHighScore()
}

// Retry restarts in the same mode after a game over.
func (s *Session) Retry() {
	if s.status != StatusGameOver {
		return
	}
	s.Start(s.mode)
}

// ReturnHome discards the current session state.
func (s *Session) ReturnHome() {
	s.status = StatusIdle
	s.blocks = nil
	s.selection.Clear()
	s.overshoot = false
	s.timeTenths = 0
}

// TogglePause switches between playing and paused. The countdown does
// not advance while paused because Tick is gated on StatusPlaying.
func (s *Session) TogglePause() {
	switch s.status {
	case StatusPlaying:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusPlaying
	}
}

// ToggleBlock adds or removes the block from the selection and evaluates
// the result. It is a no-op outside playing status and while an
// overshoot flag is pending. Returns the evaluation outcome (Pending for
// no-ops and empty selections).
func (s *Session) ToggleBlock(id BlockID) Outcome {
	if s.status != StatusPlaying || s.overshoot {
		return OutcomePending
	}

	s.selection.Toggle(id)
	if s.selection.Len() == 0 {
		return OutcomePending
	}

	outcome := Evaluate(s.selection.IDs(), s.blocks, s.target)
	switch outcome {
	case OutcomeSuccess:
		s.applySuccess()
	case OutcomeOvershoot:
		s.overshoot = true
	}
	return outcome
}

// ClearSelection empties the selection unconditionally (user action).
// A pending overshoot flag is resolved along with it.
func (s *Session) ClearSelection() {
	s.selection.Clear()
	s.overshoot = false
}

// ResolveOvershoot clears the flagged selection once the caller's flash
// period has elapsed. No-op when no overshoot is pending.
func (s *Session) ResolveOvershoot() {
	if !s.overshoot {
		return
	}
	s.selection.Clear()
	s.overshoot = false
}

// applySuccess scores the cleared selection and advances the board.
// Grid mutation, overflow check and status transition happen inside this
// single call so the renderer never observes a partial update.
func (s *Session) applySuccess() {
	points := s.selection.Len() * 10
	if s.mode == ModeTime {
		points += s.timeTenths / 10 // whole seconds remaining
	}
	s.score += points
	if s.score > s.highScore {
		s.highScore = s.score
		s.persistHighScore()
	}

	s.removeSelected()

	if s.mode == ModeClassic {
		s.blocks = s.gen.AddRow(s.blocks)
		if Overflowing(s.blocks, s.rules.MaxRows) {
			s.status = StatusGameOver
		}
	} else {
		s.timeTenths = s.rules.timeLimitTenths()
	}

	s.selection.Clear()
	s.overshoot = false
	s.target = s.gen.Target()
	s.healEmptyGrid()
}

// removeSelected deletes the selected blocks from the grid.
func (s *Session) removeSelected() {
	kept := s.blocks[:0]
	for _, b := range s.blocks {
		if !s.selection.Has(b.ID) {
			kept = append(kept, b)
		}
	}
	s.blocks = kept
}

// Tick advances the time-mode countdown by 100ms. It is a no-op unless
// the session is playing in time mode, which guarantees no tick lands
// after a pause, mode change or game over. When the countdown reaches
// zero a fresh row is pushed, overflow is checked, and the countdown
// resets.
func (s *Session) Tick() {
	if s.status != StatusPlaying || s.mode != ModeTime {
		return
	}

	s.timeTenths--
	if s.timeTenths > 0 {
		return
	}

	s.blocks = s.gen.AddRow(s.blocks)
	if Overflowing(s.blocks, s.rules.MaxRows) {
		s.status = StatusGameOver
		s.timeTenths = 0
		return
	}
	s.timeTenths = s.rules.timeLimitTenths()
}

// healEmptyGrid regenerates a fresh grid if play continues with no
// blocks left. Guards against the pathological all-cleared state without
// ending the game.
func (s *Session) healEmptyGrid() {
	if s.status == StatusPlaying && len(s.blocks) == 0 {
		s.blocks = s.gen.InitialGrid(s.rules.InitialRows)
	}
}

// loadHighScore pulls the persisted best for the current mode.
// Read failures fall back to the in-memory value (default 0).
func (s *Session) loadHighScore() {
	if s.store == nil {
		return
	}
	best, err := s.store.LoadHighScore(string(s.mode))
	if err == nil && best > s.highScore {
		s.highScore = best
	}
}

// persistHighScore writes the new best. Failures are swallowed: score
// tracking never blocks on persistence availability.
func (s *Session) persistHighScore() {
	if s.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, session keeps the in-memory value
	s.store.SaveHighScore(string(s.mode), s.highScore)
}

// --- Accessors ---

// Status returns the session lifecycle state.
func (s *Session) Status() Status { return s.status }

// Mode returns the active game mode.
func (s *Session) Mode() Mode { return s.mode }

// Blocks returns the live block set. Callers must not mutate it.
func (s *Session) Blocks() []Block { return s.blocks }

// Target returns the current target sum.
func (s *Session) Target() int { return s.target }

// Score returns the current session score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen this process (or loaded from the
// store), monotonically non-decreasing.
func (s *Session) HighScore() int { return s.highScore }

// TimeLeft returns the remaining countdown in seconds (time mode).
func (s *Session) TimeLeft() float64 { return float64(s.timeTenths) / 10 }

// Selected returns the selected block IDs in insertion order.
func (s *Session) Selected() []BlockID { return s.selection.IDs() }

// IsSelected reports whether the block is part of the selection.
func (s *Session) IsSelected(id BlockID) bool { return s.selection.Has(id) }

// SelectionSum returns the current selection's total value.
func (s *Session) SelectionSum() int { return Sum(s.selection.IDs(), s.blocks) }

// Overshoot reports whether an overshoot flag is pending resolution.
func (s *Session) Overshoot() bool { return s.overshoot }

// Rules returns the session's fixed parameters.
func (s *Session) Rules() Rules { return s.rules }

// BlockAt returns the block occupying (row, col), if any.
func (s *Session) BlockAt(row, col int) (Block, bool) {
	for _, b := range s.blocks {
		if b.Row == row && b.Col == col {
			return b, true
		}
	}
	return Block{}, false
}
