package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // including the left border
	cellHeight = 2 // including the top border
	hudHeight  = 3

	boardW = engine.Size*cellWidth + 1
	boardH = engine.Size*cellHeight + 1
)

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, snap, boardX)
	renderGrid(dst, boardX, boardY)
	if g.anim.phase == phaseSlide {
		g.renderSlides(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, snap, boardX, boardY)
	}
	g.renderOverlays(dst, snap, boardX, boardY)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorAccent)

	dst.DrawTextColored(boardX, 1, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)
	best := fmt.Sprintf("Best: %d", snap.Best)
	dst.DrawTextColored(boardX+boardW-len(best), 1, best, core.ColorText)

	info := fmt.Sprintf("Moves: %d  Max: %d", snap.Moves, engine.Value(snap.MaxRank))
	dst.DrawTextColored(boardX+(boardW-len(info))/2, 2, info, core.ColorMuted)
}

func renderGrid(dst *core.Screen, boardX, boardY int) {
	const n = engine.Size
	for row := range n + 1 {
		for col := range n + 1 {
			px := boardX + col*cellWidth
			py := boardY + row*cellHeight

			var corner rune
			switch {
			case row == 0 && col == 0:
				corner = '┌'
			case row == 0 && col == n:
				corner = '┐'
			case row == n && col == 0:
				corner = '└'
			case row == n && col == n:
				corner = '┘'
			case row == 0:
				corner = '┬'
			case row == n:
				corner = '┴'
			case col == 0:
				corner = '├'
			case col == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorFrame)

			if col < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorFrame)
				}
			}
			if row < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorFrame)
				}
			}
		}
	}
}

// cellOrigin returns the top-left interior character of a board cell. Board
// Y grows upward, screen rows grow downward.
func cellOrigin(boardX, boardY int, c engine.Coord) (int, int) {
	return boardX + c.X*cellWidth + 1, boardY + (engine.Size-1-c.Y)*cellHeight + 1
}

func drawTile(dst *core.Screen, x, y, rank int, highlight bool) {
	color := core.TileColor(rank)
	if highlight {
		color = core.ColorHighlight
	}
	dst.FillRect(core.NewRect(x, y, cellWidth-1, cellHeight-1), core.Cell{Rune: ' ', Color: color})

	label := strconv.Itoa(engine.Value(rank))
	pad := max(0, (cellWidth-1-len(label))/2)
	dst.DrawTextColored(x+pad, y, label, color)
}

func (g *Game) renderTiles(dst *core.Screen, snap engine.Snapshot, boardX, boardY int) {
	for x := range engine.Size {
		for y := range engine.Size {
			t := snap.Board[x][y]
			if t.ID == engine.NoTile {
				continue
			}
			px, py := cellOrigin(boardX, boardY, t.Pos)
			drawTile(dst, px, py, t.Rank, g.anim.popping(t.Pos))
		}
	}
}

func (g *Game) renderSlides(dst *core.Screen, boardX, boardY int) {
	t := easeOutQuad(g.anim.progress())
	// Absorbed tiles first so survivors draw on top.
	for pass := range 2 {
		for _, sl := range g.anim.slides {
			if sl.Absorbed != (pass == 0) {
				continue
			}
			fx, fy := cellOrigin(boardX, boardY, sl.From)
			tx, ty := cellOrigin(boardX, boardY, sl.To)
			drawTile(dst, core.Lerp(fx, tx, t), core.Lerp(fy, ty, t), sl.Rank, false)
		}
	}
	renderGrid(dst, boardX, boardY)
}

func (g *Game) renderOverlays(dst *core.Screen, snap engine.Snapshot, boardX, boardY int) {
	cx := boardX + boardW/2
	cy := boardY + boardH/2

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.State().GameOver:
		drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Score %d  Max %d", snap.Score, engine.Value(snap.MaxRank)),
			"R: restart  Q: quit")
	}
}

func drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	box := core.NewRect(cx-(width+4)/2, cy-(len(lines)+2)/2, width+4, len(lines)+2)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBoxColored(box, core.ColorAccent)
	for i, line := range lines {
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, core.ColorText)
	}
}
