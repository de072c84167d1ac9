package snake

import (
	"fmt"

	"github.com/vovakirdan/purple-snake/internal/core"
)

// Layout constants, in terminal cells.
const (
	cellWidth  = 2  // Terminal columns per grid cell, keeps cells roughly square
	panelWidth = 20 // Information panel
	panelGap   = 2  // Space between board and panel
)

const title = "PURPLE SNAKE"

// Resize lays the board and panel out for a screen of w*h cells.
// Grid-to-screen scaling is computed here once, not on every draw.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	boardW := g.cfg.Canvas.GridW()*cellWidth + 2
	boardH := g.cfg.Canvas.GridH() + 2
	totalW := boardW + panelGap + panelWidth

	if w < totalW || h < boardH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.board = core.NewRect((w-totalW)/2, (h-boardH)/2, boardW, boardH)
	g.panel = core.NewRect(g.board.Right()+panelGap, g.board.Y, panelWidth, boardH)
}

// MinScreenSize returns the smallest screen the game can be drawn on.
func (g *Game) MinScreenSize() (int, int) {
	return g.cfg.Canvas.GridW()*cellWidth + 2 + panelGap + panelWidth, g.cfg.Canvas.GridH() + 2
}

// Render repaints the whole screen from the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.MinScreenSize()
		g.renderOverlay(dst, dst.Bounds(), "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	dst.DrawBox(g.board, core.ColorGray)
	g.renderSnake(dst)
	g.renderApple(dst)
	g.renderPanel(dst)

	inner := g.board.Inset(1)
	switch {
	case g.gameOver:
		g.renderOverlay(dst, inner, "Game Over!", fmt.Sprintf("Score: %d", g.score))
	case !g.started:
		g.renderOverlay(dst, inner, "Purple Snake", "Press Enter to start")
	}
}

// cellOrigin maps a grid cell to its left screen column and row.
// ok is false for cells outside the grid, such as a head that left the board.
func (g *Game) cellOrigin(c Cell) (x, y int, ok bool) {
	if c.X < 0 || c.Y < 0 || c.X >= g.cfg.Canvas.GridW() || c.Y >= g.cfg.Canvas.GridH() {
		return 0, 0, false
	}
	inner := g.board.Inset(1)
	return inner.X + c.X*cellWidth, inner.Y + c.Y, true
}

// renderSnake draws one filled cell per body segment.
func (g *Game) renderSnake(dst *core.Screen) {
	for _, seg := range g.snake {
		x, y, ok := g.cellOrigin(seg)
		if !ok {
			continue
		}
		dst.SetColored(x, y, '█', core.ColorSnake)
		dst.SetColored(x+1, y, '█', core.ColorSnake)
	}
}

// renderApple stamps the apple glyph.
func (g *Game) renderApple(dst *core.Screen) {
	x, y, ok := g.cellOrigin(g.apple)
	if !ok {
		return
	}
	dst.SetColored(x, y, '◖', core.ColorApple)
	dst.SetColored(x+1, y, '◗', core.ColorApple)
}

// renderPanel draws the title, scores and the Start hint.
func (g *Game) renderPanel(dst *core.Screen) {
	p := g.panel

	banner := core.NewRect(p.X, p.Y, p.W, 3)
	dst.DrawBox(banner, core.ColorMagenta)
	dst.DrawTextIn(banner, banner.Y+1, title, core.ColorBrightMagenta)

	y := banner.Bottom() + 1
	dst.DrawTextColored(p.X+1, y, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	// Read fresh on every render so the display follows the last write.
	dst.DrawTextColored(p.X+1, y+1, fmt.Sprintf("High Score: %d", g.HighScore()), core.ColorBrightWhite)

	hint := "[Enter] Start"
	if g.started && !g.gameOver {
		hint = "[Enter] Restart"
	}
	dst.DrawTextColored(p.X+1, y+3, hint, core.ColorYellow)
}

// renderOverlay draws a boxed two-line message centered in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := area.Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextIn(box, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextIn(box, box.Y+3, line2, core.ColorDefault)
}
