package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/tom-on-the-internet/shell-snake/game"
	"github.com/tom-on-the-internet/shell-snake/terminal"
)

// Renderer turns the game loop's draw events into cell writes on the
// screen. It redraws only what the loop says changed; the full board is
// painted exactly once, at Init.
type Renderer struct {
	screen *terminal.Screen
	grid   game.Grid
}

// New creates a renderer for the given board
func New(screen *terminal.Screen, grid game.Grid) *Renderer {
	return &Renderer{screen: screen, grid: grid}
}

// Init paints the whole board: border, score line, snake, food
func (r *Renderer) Init(st *game.State) {
	r.drawBorder(colorWall)
	r.drawScore(st.Score)
	for _, seg := range st.Snake.Segments() {
		r.screen.SetCell(seg.Row, seg.Col, snakeRune, snakeColor(st.Score))
	}
	r.screen.SetCell(st.Food.Row, st.Food.Col, foodRune, colorFood)
	r.screen.Flush()
}

// SnakeMoved draws the new head and erases the vacated tail. Nothing
// else on the board changed, so nothing else is touched
func (r *Renderer) SnakeMoved(st *game.State, newHead, vacated game.Coord, hasVacated bool) {
	if hasVacated {
		r.screen.ClearCell(vacated.Row, vacated.Col)
	}
	r.screen.SetCell(newHead.Row, newHead.Col, snakeRune, snakeColor(st.Score))
	r.screen.Flush()
}

// Refresh redraws food, blocks and the score line after a meal. Block
// draws are idempotent, so repainting the whole set is safe and keeps
// the loop from tracking which block is new
func (r *Renderer) Refresh(st *game.State) {
	r.screen.SetCell(st.Food.Row, st.Food.Col, foodRune, colorFood)
	for b := range st.Blocks {
		r.screen.SetCell(b.Row, b.Col, blockRune, colorBlock)
	}
	r.drawScore(st.Score)
	r.screen.Flush()
}

// GameOver is the one post-death render: the border and the fatal head
// flash in the alert color
func (r *Renderer) GameOver(st *game.State) {
	r.drawBorder(colorAlert)
	head := st.Snake.Head()
	r.screen.SetCell(head.Row, head.Col, snakeRune, colorAlert)
	r.drawScore(st.Score)
	r.screen.Flush()
}

func (r *Renderer) drawBorder(color terminal.RGB) {
	for col := 1; col <= r.grid.Cols; col++ {
		r.screen.SetCell(1, col, wallRune, color)
		r.screen.SetCell(r.grid.Rows, col, wallRune, color)
	}
	for row := 2; row < r.grid.Rows; row++ {
		r.screen.SetCell(row, 1, wallRune, color)
		r.screen.SetCell(row, r.grid.Cols, wallRune, color)
	}
}

// drawScore centers the score readout in the top border row
func (r *Renderer) drawScore(score int) {
	text := fmt.Sprintf(" SCORE %d ", score)
	col := (r.grid.Cols - runewidth.StringWidth(text)) / 2
	if col < 1 {
		col = 1
	}
	r.screen.WriteText(1, col, text, colorScore)
}
