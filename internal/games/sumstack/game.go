package sumstack

import (
	"math/rand"

	"github.com/ovoronin/sumstack/internal/config"
	"github.com/ovoronin/sumstack/internal/core"
	"github.com/ovoronin/sumstack/internal/registry"
)

// Game adapts a Session to the platform's tick-driven registry.Game
// interface: it maps input actions to session calls, subdivides frame
// ticks into the session's 100ms countdown ticks, and renders the board.
type Game struct {
	mode    Mode
	session *Session
	rules   Rules

	// Tick bookkeeping
	tick          uint64
	tickRate      int
	framesPerDeci int // Frames per 100ms countdown tick
	frameAcc      int

	// Overshoot flash
	flashTicksTotal int
	flashTicks      int

	// Cursor position on the grid
	cursorRow int
	cursorCol int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level collaborators, set by the CLI before games are created
// (same pattern as per-game config paths).
var (
	configPath       string
	difficultyPreset string
	highScoreStore   HighScoreStore
)

// SetConfigPath sets the rules config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetHighScoreStore wires the persistence collaborator used for
// immediate high-score saves. May be nil (in-memory only).
func SetHighScoreStore(store HighScoreStore) {
	highScoreStore = store
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTime creates a new time attack mode game.
func NewTime() *Game {
	return &Game{mode: ModeTime}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("time", func() registry.Game {
		return NewTime()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTime {
		return "Sum Stack (Time Attack)"
	}
	return "Sum Stack"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fileCfg, err := config.LoadSumstack(configPath)
	if err != nil {
		fileCfg = config.DefaultSumstackConfig()
	}
	config.ApplySumstackPreset(&fileCfg, config.DifficultyPreset(difficultyPreset))
	g.rules = rulesFromConfig(fileCfg)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.framesPerDeci = core.Max(1, g.tickRate/10)
	g.frameAcc = 0

	flashMs := fileCfg.UI.OvershootFlashMs
	if flashMs <= 0 {
		flashMs = 500
	}
	g.flashTicksTotal = core.Max(1, flashMs*g.tickRate/1000)
	g.flashTicks = 0

	g.tick = 0
	g.cursorRow = 0
	g.cursorCol = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.rules, rng, highScoreStore)
	g.session.Start(g.mode)

	g.checkScreenSize()
}

// rulesFromConfig converts the YAML config into session rules.
func rulesFromConfig(cfg config.SumstackConfig) Rules {
	rules := Rules{
		Cols:        cfg.Grid.Cols,
		MaxRows:     cfg.Grid.MaxRows,
		InitialRows: cfg.Grid.InitialRows,
		MinValue:    cfg.Values.Min,
		MaxValue:    cfg.Values.Max,
		TargetMin:   cfg.Target.Min,
		TargetMax:   cfg.Target.Max,
		TimeLimit:   cfg.Time.LimitSeconds,
	}

	// Guard against a broken config file rather than failing mid-game.
	def := DefaultRules()
	if rules.Cols <= 0 || rules.MaxRows <= 1 || rules.InitialRows <= 0 ||
		rules.InitialRows >= rules.MaxRows ||
		rules.MinValue <= 0 || rules.MaxValue < rules.MinValue ||
		rules.TargetMax < rules.TargetMin || rules.TimeLimit <= 0 {
		return def
	}
	return rules
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.rules.Cols*cellWidth + 4
	minH := g.rules.MaxRows + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the adapter's view of the terminal without restarting
// the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle retry after game over
	if in.Has(core.ActionRestart) && g.session.Status() == StatusGameOver {
		g.session.Retry()
		g.cursorRow = 0
		g.cursorCol = 0
		g.flashTicks = 0
		g.frameAcc = 0
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	if g.tooSmall || g.session.Status() != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	// A flagged overshoot blocks further selection until it resolves;
	// the countdown keeps running underneath.
	if g.session.Overshoot() {
		g.flashTicks--
		if g.flashTicks <= 0 {
			g.session.ResolveOvershoot()
		}
		g.stepCountdown()
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)
	g.stepCountdown()

	return core.StepResult{State: g.State()}
}

// processInput handles cursor movement and selection actions.
func (g *Game) processInput(in core.InputFrame) {
	// Screen-up means a higher row index (row 0 is the bottom).
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, g.rules.MaxRows-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, g.rules.MaxRows-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, g.rules.Cols-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, g.rules.Cols-1)
	}

	if in.Has(core.ActionClearSel) {
		g.session.ClearSelection()
	}

	if in.Has(core.ActionSelect) {
		if block, ok := g.session.BlockAt(g.cursorRow, g.cursorCol); ok {
			outcome := g.session.ToggleBlock(block.ID)
			if outcome == OutcomeOvershoot {
				g.flashTicks = g.flashTicksTotal
			}
		}
	}
}

// stepCountdown forwards frame ticks to the session's 100ms countdown.
// The session itself ignores ticks outside playing/time, so no stray
// tick can land after a pause or game over.
func (g *Game) stepCountdown() {
	if g.mode != ModeTime || g.session.Status() != StatusPlaying {
		g.frameAcc = 0
		return
	}
	g.frameAcc++
	if g.frameAcc >= g.framesPerDeci {
		g.frameAcc = 0
		g.session.Tick()
	}
}

// Session exposes the underlying session for tests.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() == StatusGameOver,
		Paused:   g.session.Status() == StatusPaused || g.tooSmall,
	}
}
