package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs are the characters used to draw the board.
type Glyphs struct {
	Head          rune
	Body          rune
	Food          rune
	UnicodeBorder bool
}

// DefaultGlyphs returns the classic curses-style glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Head: '@',
		Body: '#',
		Food: '*',
	}
}

// Status line messages.
const (
	msgPaused  = "PAUSED - Press P to continue"
	msgOver    = "GAME OVER! Final Score: %d - Press any key to exit"
	msgCleared = "BOARD CLEARED! Final Score: %d - Press any key to exit"
)

// Render draws the board, snake, food and status line into dst.
// It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boxW, boxH := g.width+2, g.height+2
	offsetX := core.Max(0, (dst.Width()-boxW)/2)
	box := core.NewRect(offsetX, 0, boxW, boxH)

	g.drawBox(dst, box)
	g.renderTitle(dst, box)

	cell := func(p core.Point) (int, int) {
		return offsetX + 1 + p.X, 1 + p.Y
	}

	if g.hasFood {
		fx, fy := cell(g.food)
		dst.SetColored(fx, fy, g.glyphs.Food, core.ColorRed)
	}

	// Body first so the head always wins
	for i := len(g.snake) - 1; i >= 1; i-- {
		sx, sy := cell(g.snake[i])
		dst.SetColored(sx, sy, g.glyphs.Body, core.ColorGreen)
	}
	if len(g.snake) > 0 {
		hx, hy := cell(g.snake[0])
		dst.SetColored(hx, hy, g.glyphs.Head, core.ColorBrightGreen)
	}

	g.renderStatus(dst, offsetX, box.Bottom())

	switch g.status {
	case core.StatusPaused:
		g.renderOverlay(dst, box, "Paused", "Press P to continue")
	case core.StatusOver:
		title := "Game Over"
		if g.cleared {
			title = "Board Cleared!"
		}
		g.renderOverlay(dst, box, title, fmt.Sprintf("Final Score: %d", g.score))
	}
}

func (g *Game) renderTitle(dst *core.Screen, box core.Rect) {
	title := " SNAKE "
	if len(title)+2 > box.W {
		return
	}
	x := box.X + (box.W-len(title))/2
	dst.DrawTextColored(x, box.Y, title, core.ColorBrightGreen)
}

// renderStatus draws the score and status message on the line below the box.
func (g *Game) renderStatus(dst *core.Screen, x, y int) {
	score := fmt.Sprintf("Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawTextColored(x, y, score, core.ColorYellow)

	var msg string
	switch {
	case g.status == core.StatusPaused:
		msg = msgPaused
	case g.status == core.StatusOver && g.cleared:
		msg = fmt.Sprintf(msgCleared, g.score)
	case g.status == core.StatusOver:
		msg = fmt.Sprintf(msgOver, g.score)
	default:
		return
	}
	dst.DrawTextColored(x+len(score)+2, y, msg, core.ColorBrightRed)
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := core.Min(maxLen+4, area.W)
	boxH := 5
	if boxH > area.H {
		return
	}
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	g.drawBox(dst, box)

	drawCentered(dst, box, box.Y+1, line1, core.ColorBrightRed)
	drawCentered(dst, box, box.Y+3, line2, core.ColorYellow)
}

// drawBox draws a frame in the configured border style.
func (g *Game) drawBox(dst *core.Screen, r core.Rect) {
	if g.glyphs.UnicodeBorder {
		dst.DrawBox(r, core.ColorWhite)
	} else {
		dst.DrawBoxASCII(r, core.ColorWhite)
	}
}

// drawCentered draws text centered horizontally within r.
func drawCentered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-len(text))/2
	for i, ch := range text {
		px := x + i
		if px > r.X && px < r.Right()-1 {
			dst.SetColored(px, y, ch, c)
		}
	}
}
