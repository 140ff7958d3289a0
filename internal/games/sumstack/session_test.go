package sumstack

import (
	"errors"
	"math/rand"
	"testing"
)

// memStore is an in-memory HighScoreStore for tests.
type memStore struct {
	scores  map[string]int
	failing bool
	saves   int
}

func newMemStore() *memStore {
	return &memStore{scores: make(map[string]int)}
}

func (m *memStore) LoadHighScore(modeID string) (int, error) {
	if m.failing {
		return 0, errors.New("store unavailable")
	}
	return m.scores[modeID], nil
}

func (m *memStore) SaveHighScore(modeID string, score int) error {
	m.saves++
	if m.failing {
		return errors.New("store unavailable")
	}
	m.scores[modeID] = score
	return nil
}

func newTestSession(mode Mode, store HighScoreStore) *Session {
	s := NewSession(testRules(), rand.New(rand.NewSource(1)), store)
	s.Start(mode)
	return s
}

// setGrid replaces the session's grid and target with a handcrafted
// arrangement for scenario tests.
func setGrid(s *Session, target int, blocks ...Block) {
	s.blocks = append([]Block(nil), blocks...)
	s.target = target
	s.selection.Clear()
	s.overshoot = false
}

func TestStartInitializesSession(t *testing.T) {
	s := newTestSession(ModeClassic, nil)

	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %v, expected playing", s.Status())
	}
	if s.Mode() != ModeClassic {
		t.Errorf("Mode() = %v, expected classic", s.Mode())
	}
	if got := len(s.Blocks()); got != s.Rules().InitialRows*s.Rules().Cols {
		t.Errorf("initial grid has %d blocks, expected %d", got, s.Rules().InitialRows*s.Rules().Cols)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Target() < s.Rules().TargetMin || s.Target() > s.Rules().TargetMax {
		t.Errorf("Target() = %d outside configured range", s.Target())
	}
	if s.TimeLeft() != 0 {
		t.Error("classic mode should not run a countdown")
	}

	timed := newTestSession(ModeTime, nil)
	if timed.TimeLeft() != timed.Rules().TimeLimit {
		t.Errorf("TimeLeft() = %v, expected %v", timed.TimeLeft(), timed.Rules().TimeLimit)
	}
}

func TestClassicSuccessAddsRow(t *testing.T) {
	s := newTestSession(ModeClassic, nil)
	setGrid(s, 5,
		Block{ID: 1, Value: 3, Row: 0, Col: 0},
		Block{ID: 2, Value: 5, Row: 0, Col: 1},
		Block{ID: 3, Value: 2, Row: 0, Col: 2},
	)

	out := s.ToggleBlock(1)
	if out != OutcomePending {
		t.Fatalf("first toggle outcome = %v, expected pending", out)
	}
	out = s.ToggleBlock(3)
	if out != OutcomeSuccess {
		t.Fatalf("second toggle outcome = %v, expected success", out)
	}

	// Grid size = (previous - |S|) + Cols
	want := (3 - 2) + s.Rules().Cols
	if len(s.Blocks()) != want {
		t.Errorf("grid size = %d, expected %d", len(s.Blocks()), want)
	}

	// Survivor shifted up one row, identity intact
	survivor, ok := s.BlockAt(1, 1)
	if !ok || survivor.ID != 2 || survivor.Value != 5 {
		t.Errorf("surviving block not shifted intact: %+v ok=%v", survivor, ok)
	}

	if s.Score() != 2*10 {
		t.Errorf("Score() = %d, expected 20", s.Score())
	}
	if len(s.Selected()) != 0 {
		t.Error("selection should clear after success")
	}
}

func TestTimeSuccessResetsCountdown(t *testing.T) {
	s := newTestSession(ModeTime, nil)
	setGrid(s, 5,
		Block{ID: 1, Value: 5, Row: 0, Col: 0},
		Block{ID: 2, Value: 7, Row: 0, Col: 1},
	)
	s.timeTenths = 123 // 12.3s remaining

	out := s.ToggleBlock(1)
	if out != OutcomeSuccess {
		t.Fatalf("outcome = %v, expected success", out)
	}

	// No row added in time mode: size = previous - |S|
	if len(s.Blocks()) != 1 {
		t.Errorf("grid size = %d, expected 1", len(s.Blocks()))
	}

	// Points = |S|*10 + floor(timeLeft)
	if s.Score() != 1*10+12 {
		t.Errorf("Score() = %d, expected 22", s.Score())
	}

	if s.TimeLeft() != s.Rules().TimeLimit {
		t.Errorf("TimeLeft() = %v, expected reset to %v", s.TimeLeft(), s.Rules().TimeLimit)
	}
}

func TestOvershootFlagsSelection(t *testing.T) {
	s := newTestSession(ModeClassic, nil)
	setGrid(s, 5,
		Block{ID: 1, Value: 3, Row: 0, Col: 0},
		Block{ID: 2, Value: 5, Row: 0, Col: 1},
	)

	s.ToggleBlock(1)
	out := s.ToggleBlock(2) // 3+5=8 > 5
	if out != OutcomeOvershoot {
		t.Fatalf("outcome = %v, expected overshoot", out)
	}
	if !s.Overshoot() {
		t.Fatal("overshoot flag should be set")
	}
	if s.Score() != 0 {
		t.Error("overshoot must not change the score")
	}

	// Further toggles are no-ops while flagged
	s.ToggleBlock(1)
	if len(s.Selected()) != 2 {
		t.Error("toggle should be a no-op while overshoot is pending")
	}

	s.ResolveOvershoot()
	if s.Overshoot() || len(s.Selected()) != 0 {
		t.Error("ResolveOvershoot should clear the flag and the selection")
	}
}

func TestClearSelectionUnconditional(t *testing.T) {
	s := newTestSession(ModeClassic, nil)
	setGrid(s, 5,
		Block{ID: 1, Value: 3, Row: 0, Col: 0},
		Block{ID: 2, Value: 5, Row: 0, Col: 1},
	)

	s.ToggleBlock(1)
	s.ToggleBlock(2) // Overshoot

	s.ClearSelection()
	if len(s.Selected()) != 0 || s.Overshoot() {
		t.Error("ClearSelection should empty the selection and drop the flag")
	}
}

func TestCountdownTimeoutAddsRow(t *testing.T) {
	s := newTestSession(ModeTime, nil)
	before := len(s.Blocks())
	s.timeTenths = 10 // 1.0s

	for i := 0; i < 9; i++ {
		s.Tick()
	}
	if len(s.Blocks()) != before {
		t.Fatal("row must not be added before the countdown expires")
	}

	s.Tick() // Tenth 100ms tick reaches zero
	if len(s.Blocks()) != before+s.Rules().Cols {
		t.Errorf("grid size = %d, expected %d after timeout", len(s.Blocks()), before+s.Rules().Cols)
	}
	if s.TimeLeft() != s.Rules().TimeLimit {
		t.Errorf("TimeLeft() = %v, expected reset to %v", s.TimeLeft(), s.Rules().TimeLimit)
	}
}

func TestTickGating(t *testing.T) {
	tests := []struct {
		name string
		prep func(s *Session)
	}{
		{"paused", func(s *Session) { s.TogglePause() }},
		{"game over", func(s *Session) { s.status = StatusGameOver }},
		{"idle", func(s *Session) { s.ReturnHome() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(ModeTime, nil)
			tc.prep(s)
			before := s.timeTenths
			s.Tick()
			if s.timeTenths != before {
				t.Errorf("Tick advanced the countdown in %s state", tc.name)
			}
		})
	}

	// Classic mode never ticks
	s := newTestSession(ModeClassic, nil)
	s.Tick()
	if s.TimeLeft() != 0 {
		t.Error("classic mode must not run a countdown")
	}
}

func TestPauseResumeKeepsCountdown(t *testing.T) {
	s := newTestSession(ModeTime, nil)
	s.timeTenths = 50

	s.TogglePause()
	if s.Status() != StatusPaused {
		t.Fatal("TogglePause should pause a playing session")
	}
	s.Tick()
	s.TogglePause()
	if s.Status() != StatusPlaying {
		t.Fatal("TogglePause should resume a paused session")
	}
	if s.timeTenths != 50 {
		t.Error("countdown advanced across a pause")
	}

	s.Tick()
	if s.timeTenths != 49 {
		t.Error("countdown should resume after unpausing")
	}
}

func TestOverflowEndsClassicGame(t *testing.T) {
	s := newTestSession(ModeClassic, nil)
	// A block already at the top: one more shift overflows.
	setGrid(s, 5,
		Block{ID: 1, Value: 5, Row: 0, Col: 0},
		Block{ID: 2, Value: 9, Row: s.Rules().MaxRows - 1, Col: 3},
	)

	out := s.ToggleBlock(1)
	if out != OutcomeSuccess {
		t.Fatalf("outcome = %v, expected success", out)
	}
	if s.Status() != StatusGameOver {
		t.Errorf("Status() = %v, expected gameover after overflow", s.Status())
	}
}

func TestTimeoutOverflowEndsGame(t *testing.T) {
	s := newTestSession(ModeTime, nil)
	setGrid(s, 5,
		Block{ID: 1, Value: 5, Row: s.Rules().MaxRows - 1, Col: 0},
	)
	s.timeTenths = 1

	s.Tick()
	if s.Status() != StatusGameOver {
		t.Errorf("Status() = %v, expected gameover after timeout overflow", s.Status())
	}
	if s.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %v, expected 0 at game over", s.TimeLeft())
	}
}

func TestSelfHealEmptyGrid(t *testing.T) {
	s := newTestSession(ModeTime, nil)
	setGrid(s, 5,
		Block{ID: 1, Value: 5, Row: 0, Col: 0},
	)

	out := s.ToggleBlock(1)
	if out != OutcomeSuccess {
		t.Fatalf("outcome = %v, expected success", out)
	}

	// Clearing the last block regenerates a fresh grid instead of
	// leaving an unplayable empty board.
	if len(s.Blocks()) != s.Rules().InitialRows*s.Rules().Cols {
		t.Errorf("grid size = %d, expected regenerated %d blocks",
			len(s.Blocks()), s.Rules().InitialRows*s.Rules().Cols)
	}
	if s.Status() != StatusPlaying {
		t.Error("self-heal must not end the session")
	}
}

func TestHighScorePersistence(t *testing.T) {
	store := newMemStore()
	store.scores["classic"] = 15

	s := newTestSession(ModeClassic, store)
	if s.HighScore() != 15 {
		t.Fatalf("HighScore() = %d, expected loaded 15", s.HighScore())
	}

	setGrid(s, 5, Block{ID: 1, Value: 5, Row: 0, Col: 0})
	s.ToggleBlock(1) // +10, still below the best

	if s.HighScore() != 15 {
		t.Errorf("HighScore() = %d, expected unchanged 15", s.HighScore())
	}

	setGrid(s, 5, Block{ID: 2, Value: 5, Row: 0, Col: 0})
	s.ToggleBlock(2) // +10 = 20, new best

	if s.HighScore() != 20 {
		t.Errorf("HighScore() = %d, expected 20", s.HighScore())
	}
	if store.scores["classic"] != 20 {
		t.Errorf("store best = %d, expected persisted 20", store.scores["classic"])
	}

	// High score never decreases across sessions
	s.status = StatusGameOver
	s.Retry()
	if s.HighScore() != 20 {
		t.Errorf("HighScore() = %d after retry, expected 20", s.HighScore())
	}
}

func TestHighScoreSurvivesFailingStore(t *testing.T) {
	store := newMemStore()
	store.failing = true

	s := newTestSession(ModeClassic, store)
	setGrid(s, 5, Block{ID: 1, Value: 5, Row: 0, Col: 0})
	s.ToggleBlock(1)

	// Persistence failed but the in-memory value still updated
	if s.HighScore() != 10 {
		t.Errorf("HighScore() = %d, expected in-memory 10", s.HighScore())
	}
	if store.saves != 1 {
		t.Errorf("expected one save attempt, got %d", store.saves)
	}
}

func TestToggleOutsidePlayingIsNoop(t *testing.T) {
	s := newTestSession(ModeClassic, nil)
	id := s.Blocks()[0].ID

	s.TogglePause()
	s.ToggleBlock(id)
	if len(s.Selected()) != 0 {
		t.Error("toggle while paused should be a no-op")
	}

	s.TogglePause()
	s.status = StatusGameOver
	s.ToggleBlock(id)
	if len(s.Selected()) != 0 {
		t.Error("toggle after game over should be a no-op")
	}
}

func TestRetryAndReturnHome(t *testing.T) {
	s := newTestSession(ModeTime, nil)

	// Retry does nothing unless the game is over
	s.Retry()
	if s.Status() != StatusPlaying {
		t.Error("Retry from playing should be a no-op")
	}

	s.status = StatusGameOver
	s.Retry()
	if s.Status() != StatusPlaying || s.Mode() != ModeTime {
		t.Error("Retry should restart in the same mode")
	}
	if s.Score() != 0 {
		t.Error("Retry should reset the score")
	}

	s.ReturnHome()
	if s.Status() != StatusIdle {
		t.Errorf("Status() = %v, expected idle", s.Status())
	}
	if len(s.Blocks()) != 0 {
		t.Error("ReturnHome should discard the grid")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(testRules(), rand.New(rand.NewSource(12345)), nil)
		s.Start(ModeTime)
		for i := 0; i < 25; i++ {
			s.Tick()
		}
		if b, ok := s.BlockAt(0, 0); ok {
			s.ToggleBlock(b.ID)
		}
		return s.Snapshot()
	}

	if run() != run() {
		t.Error("identical seeds and inputs should produce identical snapshots")
	}
}
