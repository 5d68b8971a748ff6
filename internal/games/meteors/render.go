package meteors

import (
	"fmt"

	"github.com/arcadelab/tui-meteors/internal/core"
	"github.com/arcadelab/tui-meteors/internal/geom"
)

// Display characters for rendering
const (
	ShipChar   = '█'
	MeteorChar = '▓'
	BulletChar = '•'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case phaseStart:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "PRESS ENTER TO START", core.ColorBrightBlue)
		dst.DrawTextCentered(mid+1, "ARROW KEYS TO MOVE", core.ColorGray)
		dst.DrawTextCentered(mid+2, "SPACE TO SHOOT", core.ColorGray)
		if g.practice {
			dst.DrawTextCentered(mid+4, "PRACTICE MODE", core.ColorGreen)
		}

	case phaseLevel:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid, fmt.Sprintf("LEVEL %d", g.level), core.ColorBrightBlue)
		dst.DrawTextCentered(mid+2, "PRESS ENTER", core.ColorGray)

	case phaseGameOver:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "YOU DIED", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("SCORE %d", g.score), core.ColorWhite)
		dst.DrawTextCentered(mid+3, "PRESS ENTER", core.ColorGray)

	case phasePlay:
		g.renderWorld(dst)
		hud := fmt.Sprintf("SCORE %d  LEVEL %d", g.score, g.level)
		dst.DrawTextColored(1, 0, hud, core.ColorWhite)
		if g.paused {
			dst.DrawTextCentered(dst.Height()/2, "PAUSED", core.ColorYellow)
		}
	}
}

// renderWorld scales world coordinates to screen cells (y flipped:
// the world's y axis points up, the terminal's down) and draws every
// entity's outline segments.
func (g *Game) renderWorld(dst *core.Screen) {
	for _, line := range g.ship.Lines() {
		g.drawSegment(dst, line, ShipChar, core.ColorCyan)
	}

	for _, m := range g.meteors {
		c := m.Color()
		for _, line := range m.Lines() {
			g.drawSegment(dst, line, MeteorChar, c)
		}
	}

	if g.bullet != nil {
		x, y := g.toCell(dst, g.bullet.Pos)
		dst.SetCell(x, y, BulletChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawSegment(dst *core.Screen, line geom.Line, r rune, c core.Color) {
	x0, y0 := g.toCell(dst, line.Start)
	x1, y1 := g.toCell(dst, line.End)
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

func (g *Game) toCell(dst *core.Screen, p geom.Vec) (int, int) {
	x := int(p.X / g.bounds.X * float64(dst.Width()))
	y := dst.Height() - 1 - int(p.Y/g.bounds.Y*float64(dst.Height()))
	return x, y
}
