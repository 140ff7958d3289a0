package sumstack

import (
	"fmt"

	"github.com/ovoronin/sumstack/internal/core"
)

const (
	hudHeight = 2 // Title line plus separator
	cellWidth = 4 // Screen columns per block
)

// Render draws the board, HUD and overlays into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)
	g.renderFooter(dst)

	switch g.session.Status() {
	case StatusGameOver:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Best: %d  (R to retry)", g.session.Score(), g.session.HighScore()))
	case StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	hud := fmt.Sprintf(" %s | Target: %d  Sum: %d  Score: %d  Best: %d",
		g.Title(), s.Target(), s.SelectionSum(), s.Score(), s.HighScore())
	if g.mode == ModeTime {
		hud += fmt.Sprintf("  Time: %4.1fs", s.TimeLeft())
	}
	dst.DrawText(0, 0, hud)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the block stack with row 0 at the bottom and the
// overflow boundary at the top of the frame.
func (g *Game) renderGrid(dst *core.Screen) {
	rules := g.rules
	boxW := rules.Cols*cellWidth + 2
	boxH := rules.MaxRows + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := hudHeight + 1

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawBox(box)

	// The top edge is the overflow line; losing is touching it.
	for x := boxX + 1; x < box.Right()-1; x++ {
		dst.SetCell(x, boxY, '═', g.dangerColor())
	}

	for _, b := range g.session.Blocks() {
		if b.Row >= rules.MaxRows {
			continue // Overflowed blocks are past the frame
		}
		x := boxX + 1 + b.Col*cellWidth
		y := boxY + 1 + (rules.MaxRows - 1 - b.Row)

		selected := g.session.IsSelected(b.ID)
		underCursor := b.Row == g.cursorRow && b.Col == g.cursorCol

		color := core.ColorDefault
		switch {
		case selected && g.session.Overshoot():
			color = core.ColorRed
		case selected:
			color = core.ColorCyan
		}
		if underCursor {
			color = core.ColorBrightYellow
		}

		left, right := ' ', ' '
		if selected {
			left, right = '[', ']'
		}
		if underCursor && !selected {
			left, right = '>', '<'
		}

		dst.SetCell(x, y, left, color)
		dst.DrawTextColored(x+1, y, fmt.Sprintf("%2d", b.Value), color)
		dst.SetCell(x+3, y, right, color)
	}

	// Empty cell under the cursor still shows a marker
	if _, ok := g.session.BlockAt(g.cursorRow, g.cursorCol); !ok {
		x := boxX + 1 + g.cursorCol*cellWidth
		y := boxY + 1 + (rules.MaxRows - 1 - g.cursorRow)
		dst.SetCell(x, y, '>', core.ColorBrightYellow)
		dst.SetCell(x+3, y, '<', core.ColorBrightYellow)
	}

	if g.mode == ModeTime {
		g.renderTimeBar(dst, boxX+1, box.Bottom(), boxW-2)
	}
}

// dangerColor highlights the overflow line when the stack is one shift
// away from ending the game.
func (g *Game) dangerColor() core.Color {
	if Overflowing(g.session.Blocks(), g.rules.MaxRows-1) {
		return core.ColorRed
	}
	return core.ColorGray
}

// renderTimeBar draws the countdown as a shrinking bar under the grid.
func (g *Game) renderTimeBar(dst *core.Screen, x, y, width int) {
	limit := g.rules.TimeLimit
	if limit <= 0 {
		return
	}
	filled := int(float64(width) * g.session.TimeLeft() / limit)
	filled = core.Clamp(filled, 0, width)

	color := core.ColorGreen
	if g.session.TimeLeft() < limit/4 {
		color = core.ColorRed
	}
	for i := 0; i < width; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		dst.SetCell(x+i, y, r, color)
	}
}

// renderFooter draws the key hints at the bottom of the screen.
func (g *Game) renderFooter(dst *core.Screen) {
	hints := "Arrows: Move  Space: Select  C: Clear  P: Pause  Q: Quit"
	dst.DrawTextCentered(dst.Height()-1, hints)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
