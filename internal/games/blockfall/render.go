package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellWidth = 2  // each board cell is drawn as "[]"
	hudWidth  = 18 // side panel, including the gap to the well
)

var helpLines = []string{
	"←/→  move",
	"↑    rotate",
	"↓    drop",
	"P    pause",
	"R    restart",
	"Q    quit",
}

// Render draws the well, the side panel and any banner.
func (g *Game) Render(dst *core.Screen) {
	board := g.eng.Board()
	wellW := board.Cols()*cellWidth + 2
	wellH := board.Rows() + 2

	if dst.Width() < wellW || dst.Height() < wellH {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("need %dx%d", wellW, wellH), core.ColorGray)
		return
	}

	totalW := wellW
	if dst.Width() >= wellW+hudWidth {
		totalW += hudWidth
	}
	area := core.CenteredRect(dst.Width(), dst.Height(), totalW, wellH)
	well := core.NewRect(area.X, area.Y, wellW, wellH)

	dst.DrawBox(well, core.ColorGray)
	g.renderCells(dst, board, well)
	if totalW > wellW {
		g.renderHUD(dst, well.Right()+2, well.Y)
	}
	g.renderBanner(dst, well)
}

// renderCells paints every board cell inside the well border.
func (g *Game) renderCells(dst *core.Screen, board *engine.Board, well core.Rect) {
	pieceColor, _ := g.eng.PieceColor()

	for r := range board.Rows() {
		for c := range board.Cols() {
			cell, err := board.CellState(r, c)
			if err != nil {
				continue
			}
			x := well.X + 1 + c*cellWidth
			y := well.Y + 1 + r

			switch cell.Kind() {
			case engine.CellLocked:
				dst.SetCell(x, y, '[', cell.Color())
				dst.SetCell(x+1, y, ']', cell.Color())
			case engine.CellEphemeral:
				dst.SetCell(x, y, '[', pieceColor)
				dst.SetCell(x+1, y, ']', pieceColor)
			default:
				dst.SetCell(x+1, y, '.', core.ColorGray)
			}
		}
	}
}

// renderHUD draws the title, counters and key help to the right of the well.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	st := g.State()
	score := st.Score
	if st.GameOver {
		score = st.LastScore
	}

	dst.DrawTextColor(x, y, g.title, core.ColorBrightCyan)
	dst.DrawTextColor(x, y+2, fmt.Sprintf("Score  %d", score), core.ColorBrightWhite)
	dst.DrawTextColor(x, y+3, fmt.Sprintf("Best   %d", st.HighScore), core.ColorYellow)
	dst.DrawTextColor(x, y+4, fmt.Sprintf("Lines  %d", st.Lines), core.ColorWhite)
	dst.DrawTextColor(x, y+5, fmt.Sprintf("Pieces %d", st.Pieces), core.ColorWhite)
	dst.DrawTextColor(x, y+6, fmt.Sprintf("Speed  x%.1f", float64(g.baseDrop)/float64(g.DropTicks())), core.ColorWhite)

	if p, ok := g.eng.Piece(); ok {
		dst.DrawTextColor(x, y+8, "Piece  "+p.ShapeName, p.Color)
	}

	for i, line := range helpLines {
		dst.DrawTextColor(x, y+10+i, line, core.ColorGray)
	}
}

// renderBanner overlays start, pause and game-over messages on the well.
func (g *Game) renderBanner(dst *core.Screen, well core.Rect) {
	var lines []string
	var color core.Color

	switch {
	case g.paused:
		lines, color = []string{"PAUSED", "P to resume"}, core.ColorYellow
	case g.eng.IsAwaitingStart():
		lines, color = []string{"BLOCKFALL", "ENTER to start"}, core.ColorBrightCyan
	case g.eng.IsOver():
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", g.eng.LastScore()), "ENTER to play"}
		color = core.ColorBrightRed
	default:
		return
	}

	inner := well.W - 2
	top := well.Y + well.H/2 - len(lines)/2
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		// Blank a full-width strip so the text stays readable over the board.
		for x := well.X + 1; x < well.Right()-1; x++ {
			dst.SetCell(x, top+i, ' ', core.ColorDefault)
		}
		x := well.X + 1 + (inner-len(runes))/2
		dst.DrawTextColor(x, top+i, string(runes), color)
	}
}
