package snake

import (
	"fmt"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

// Layout constants. One block is two terminal columns wide.
const (
	blockWidth = 2
	hudHeight  = 1
)

// RequiredSize returns the smallest screen that fits the HUD and the board.
func RequiredSize(g Grid) (width, height int) {
	return g.Cols*blockWidth + 2, g.Rows + 2 + hudHeight
}

// RequiredSize returns the smallest screen this game can be played on.
func (g *Game) RequiredSize() (width, height int) {
	return RequiredSize(g.rules.Grid)
}

// boardRect returns the bordered board area centred horizontally on dst.
func boardRect(dst *core.Screen, g Grid) core.Rect {
	w, h := RequiredSize(g)
	x := core.Max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudHeight, w, h-hudHeight)
}

// HUD formats the status line.
func HUD(s *State) string {
	return fmt.Sprintf("Score: %d  Level: %d  Lives: %d  Speed: %d",
		s.Score, s.Level, s.Lives, s.Speed)
}

// specialColor returns the colour used for a special food kind.
func specialColor(k FoodKind) core.Color {
	switch k {
	case SpeedUp:
		return core.ColorYellow
	case SlowDown:
		return core.ColorBlue
	case AddLife:
		return core.ColorCyan
	case RemoveLife:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

// Draw renders the state, including pause and game over overlays.
// It is shared by live play and replays.
func Draw(dst *core.Screen, s *State) {
	dst.DrawTextColored(1, 0, HUD(s), core.ColorWhite)

	board := boardRect(dst, s.Rules.Grid)
	dst.DrawBox(board, core.ColorGray)

	block := func(p Position, text string, c core.Color) {
		dst.DrawTextColored(board.X+1+p.X*blockWidth, board.Y+1+p.Y, text, c)
	}

	for _, o := range s.Obstacles {
		block(o, "##", core.ColorOrange)
	}
	if s.Food.X >= 0 {
		block(s.Food, "()", core.ColorRed)
	}
	if s.Special != nil {
		block(s.Special.Pos, "<>", specialColor(s.Special.Kind))
	}
	for i, p := range s.Snake {
		c := core.ColorGreen
		if i == len(s.Snake)-1 {
			c = core.ColorBrightGreen
		}
		block(p, "██", c)
	}

	switch {
	case s.Over:
		drawGameOver(dst, board, s)
	case s.Paused:
		drawPaused(dst, board, s)
	}
}

// Render draws the game into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		w, h := RequiredSize(g.rules.Grid)
		cy := dst.Height() / 2
		dst.DrawTextCentered(cy-1, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(cy, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()), core.ColorWhite)
		dst.DrawTextCentered(cy+1, "Resize to continue", core.ColorGray)
		return
	}
	Draw(dst, &g.state)
}

func drawPaused(dst *core.Screen, board core.Rect, s *State) {
	lines := []string{
		"Paused",
		"",
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Lives: %d", s.Lives),
		"",
		"P to continue",
	}
	drawPanel(dst, board, lines, core.ColorBrightYellow)
}

func drawGameOver(dst *core.Screen, board core.Rect, s *State) {
	lines := []string{
		"Game Over!",
		"",
		fmt.Sprintf("Final Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		"",
		"R: Restart  Q: Quit",
	}
	drawPanel(dst, board, lines, core.ColorBrightRed)
}

// drawPanel draws a boxed message centred on the board.
func drawPanel(dst *core.Screen, board core.Rect, lines []string, title core.Color) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	panel := board.Centered(w+4, len(lines)+2)
	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = title
		}
		x := panel.X + (panel.W-len([]rune(l)))/2
		dst.DrawTextColored(x, panel.Y+1+i, l, c)
	}
}
