package tui

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/game"
)

// Glyphs for the playing field.
const (
	ballRune   = 'o'
	paddleRune = '█'
	hudRune    = '─'
)

// ScreenRenderer draws the game state into a cell buffer. It serves two
// callers: the model's tag-drain loop and the engine's resize path, so every
// draw call and View take the renderer's own lock. The buffer stands in for
// the terminal as the one serialized drawing resource.
type ScreenRenderer struct {
	mu     sync.Mutex
	screen *core.Screen
	snap   func() game.Snapshot
}

// NewScreenRenderer creates a renderer over a fresh buffer.
func NewScreenRenderer(width, height int) *ScreenRenderer {
	return &ScreenRenderer{screen: core.NewScreen(width, height)}
}

// Bind attaches the snapshot source. Must be called before any draw call;
// split from the constructor because the engine needs the renderer first.
func (r *ScreenRenderer) Bind(snap func() game.Snapshot) {
	r.snap = snap
}

// Resize grows or shrinks the buffer to the terminal size.
func (r *ScreenRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Resize(width, height)
}

// DrawPaddle draws the paddle at its current position.
func (r *ScreenRenderer) DrawPaddle(side game.Side) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.snap()
	r.drawPaddleSpan(s, side, paddlePos(s, side), paddleColor(side))
}

// DeletePaddle erases the paddle at its previous position.
func (r *ScreenRenderer) DeletePaddle(side game.Side) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.snap()
	prev := s.PrevPaddlePos
	if side == game.SideAI {
		prev = s.PrevAIPos
	}
	half := s.PaddleWidth / 2
	for _, col := range paddleCols(s, side) {
		for row := prev - half; row <= prev+half; row++ {
			r.screen.Set(col, row, ' ')
		}
	}
}

// DrawBall draws the ball at its current position.
func (r *ScreenRenderer) DrawBall() {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.snap()
	r.screen.SetColored(s.BallCol, s.BallRow, ballRune, core.ColorYellow)
}

// DeleteBall erases the ball at its previous position.
func (r *ScreenRenderer) DeleteBall() {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.snap()
	r.screen.Set(s.PrevBallCol, s.PrevBallRow, ' ')
}

// Repaint redraws the whole field from the current snapshot: HUD, both
// paddles and the ball. Used after a resize and as the first frame of a
// round.
func (r *ScreenRenderer) Repaint() {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.snap()

	r.screen.Clear()
	r.drawHUD(s)
	r.drawPaddleSpan(s, game.SideAI, s.AIPos, paddleColor(game.SideAI))
	r.drawPaddleSpan(s, game.SidePlayer, s.PaddlePos, paddleColor(game.SidePlayer))
	r.screen.SetColored(s.BallCol, s.BallRow, ballRune, core.ColorYellow)
}

// UpdateHUD repaints only the status row.
func (r *ScreenRenderer) UpdateHUD() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawHUD(r.snap())
}

// View renders the buffer to a styled frame.
func (r *ScreenRenderer) View() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RenderScreen(r.screen)
}

// drawHUD paints the status row above the field.
func (r *ScreenRenderer) drawHUD(s game.Snapshot) {
	for x := 0; x < s.Cols; x++ {
		r.screen.SetColored(x, s.FieldTop-1, hudRune, core.ColorGray)
	}
	hud := fmt.Sprintf(" level %d  hits %d ", s.Level+1, s.HitCount)
	r.screen.DrawTextColored(1, s.FieldTop-1, hud, core.ColorWhite)
}

func (r *ScreenRenderer) drawPaddleSpan(s game.Snapshot, side game.Side, pos int, c core.Color) {
	half := s.PaddleWidth / 2
	for _, col := range paddleCols(s, side) {
		for row := pos - half; row <= pos+half; row++ {
			if row >= s.FieldTop && row <= s.BottomRow {
				r.screen.SetColored(col, row, paddleRune, c)
			}
		}
	}
}

// paddleCols returns both columns of a paddle: the collision column and the
// cell toward the field that thickens it to two cells wide.
func paddleCols(s game.Snapshot, side game.Side) [2]int {
	if side == game.SideAI {
		return [2]int{s.AICol, s.AICol + 1}
	}
	return [2]int{s.PaddleCol, s.PaddleCol - 1}
}

func paddlePos(s game.Snapshot, side game.Side) int {
	if side == game.SideAI {
		return s.AIPos
	}
	return s.PaddlePos
}

func paddleColor(side game.Side) core.Color {
	if side == game.SideAI {
		return core.ColorRed
	}
	return core.ColorGreen
}
