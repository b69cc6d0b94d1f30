package runner

import (
	"fmt"

	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/game/entity"
	"github.com/Yanthir84/PawRun/internal/game/player"
)

// Visual characters for rendering
const (
	RunnerChar   = '◆'
	JumperChar   = '▲'
	SliderChar   = '▬'
	CoinChar     = '●'
	LowChar      = '▄'
	HighChar     = '▀'
	SceneryChar  = '┃'
	BorderChar   = '║'
	LaneMarkChar = '·'
)

const viewAhead = 30.0 // World units of corridor visible above the player row

// Render draws a top-down view of the corridor: far depth at the top of the
// screen, the player near the bottom.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	playerRow := h - 4
	if playerRow < 4 {
		playerRow = h - 1
	}

	laneCols := 7
	colsPerUnit := float64(laneCols) / g.cfg.Lanes.Width
	// The camera trails the player laterally; shift the corridor against it
	centerCol := w/2 - int(g.camera.X*1.5)
	rowsPerUnit := float64(playerRow-1) / viewAhead

	row := func(depth float64) int {
		return playerRow - int((depth-g.forward)*rowsPerUnit)
	}
	colOf := func(x float64) int {
		return centerCol + int(x*colsPerUnit)
	}

	// Corridor borders and lane markings
	half := g.cfg.Lanes.Width * 1.5
	leftCol := colOf(-half)
	rightCol := colOf(half)
	for y := 0; y <= playerRow; y++ {
		dst.SetColored(leftCol, y, BorderChar, core.ColorGray)
		dst.SetColored(rightCol, y, BorderChar, core.ColorGray)
		if y%3 == 0 {
			for lane := 0; lane < entity.LaneCount-1; lane++ {
				x := entity.LaneOffset(lane, g.cfg.Lanes.Width) + g.cfg.Lanes.Width/2
				dst.SetColored(colOf(x), y, LaneMarkChar, core.ColorGray)
			}
		}
	}

	// Entities, nearest drawn last so they win overdraw
	g.arena.Each(func(e entity.Entity) {
		y := row(e.Depth)
		if y < 1 || y > playerRow {
			return
		}
		switch e.Kind {
		case entity.KindCollectible:
			dst.SetColored(colOf(e.X), y, CoinChar, core.ColorBrightYellow)
		case entity.KindLowObstacle:
			g.drawObstacle(dst, e, y, LowChar, core.ColorBrightRed, colOf)
		case entity.KindHighObstacle:
			g.drawObstacle(dst, e, y, HighChar, core.ColorBrightMagenta, colOf)
		case entity.KindScenery:
			dst.SetColored(colOf(e.X), y, SceneryChar, core.ColorGray)
		}
	})

	// Player, lifted while airborne
	glyph := RunnerChar
	switch g.player.Pose() {
	case player.PoseJumping:
		glyph = JumperChar
	case player.PoseSliding:
		glyph = SliderChar
	}
	lift := int(g.player.VerticalOffset())
	if lift > 2 {
		lift = 2
	}
	dst.SetColored(colOf(g.player.Lateral()), playerRow-lift, glyph, core.ColorBrightCyan)

	// HUD
	dst.DrawText(2, h-2, fmt.Sprintf(" Score: %d ", g.score))
	right := fmt.Sprintf(" %dm  %.1f u/s ", int(g.forward), g.speed)
	dst.DrawText(w-len(right)-2, h-2, right)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "WIPEOUT", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawObstacle fills the columns the obstacle spans at its row.
func (g *Game) drawObstacle(dst *core.Screen, e entity.Entity, y int, ch rune, c core.Color, colOf func(float64) int) {
	halfW := e.W / 2
	from := colOf(e.X - halfW)
	to := colOf(e.X + halfW)
	for x := from; x <= to; x++ {
		dst.SetColored(x, y, ch, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
