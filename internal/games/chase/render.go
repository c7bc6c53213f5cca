package chase

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

// Game-over text shown once an adversary catches the player.
const (
	GameOverLine  = "Game Over! Press any key to exit."
	FinalScoreFmt = "Final Score: %d"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	snap := g.state.Snapshot()

	if snap.Phase == sim.PhaseTerminal {
		renderGameOver(dst, snap.Score())
		return
	}

	g.renderHUD(dst, snap)

	if g.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX, offY := g.mazeOrigin(dst)
	renderMaze(dst, snap, offX, offY)

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// mazeOrigin returns the screen position of maze cell (0,0).
// The maze is centered horizontally below the HUD.
func (g *Game) mazeOrigin(dst *core.Screen) (x, y int) {
	return max(0, (dst.Width()-mazeWidth(g.params.Cols))/2), hudHeight
}

// mazeWidth returns the number of terminal columns a maze occupies.
func mazeWidth(cols int) int {
	return cols * cellWidth
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" %s - Score: %d", g.Title(), snap.Score())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderMaze draws cells, then the player, then adversaries on top.
func renderMaze(dst *core.Screen, snap sim.Snapshot, offX, offY int) {
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			x := offX + c*cellWidth
			y := offY + r
			switch snap.At(sim.P(r, c)) {
			case sim.CellWall:
				for i := range cellWidth {
					dst.SetColored(x+i, y, WallChar, WallColor)
				}
			case sim.CellPellet:
				dst.SetColored(x, y, PelletChar, PelletColor)
			case sim.CellPowerUp:
				dst.SetColored(x, y, PowerUpChar, PowerUpColor)
			}
		}
	}

	p := snap.Player.Pos
	dst.SetColored(offX+p.Col*cellWidth, offY+p.Row, PlayerChar, PlayerColor)

	for _, a := range snap.Adversaries {
		dst.SetColored(offX+a.Pos.Col*cellWidth, offY+a.Pos.Row, AdversaryChar, a.Color)
	}
}

// renderGameOver draws the final screen.
func renderGameOver(dst *core.Screen, score int) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, GameOverLine)
	dst.DrawTextCentered(cy+1, fmt.Sprintf(FinalScoreFmt, score))
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := dst.Bounds().Centered(maxLen+4, 5)

	// Blank the interior so the maze doesn't bleed through.
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
