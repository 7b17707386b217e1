package tui

import (
	"testing"

	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		BallRow: 10, BallCol: 40,
		PrevBallRow: 9, PrevBallCol: 39,
		PaddlePos: 12, PrevPaddlePos: 11,
		PaddleCol: 79,
		AIPos:     8, PrevAIPos: 7,
		AICol:     1,
		BottomRow: 23, Cols: 80,
		HitCount: 2, Level: 1,
		FieldTop: 1, PaddleWidth: 4,
	}
}

func newTestRenderer(snap game.Snapshot) *ScreenRenderer {
	r := NewScreenRenderer(80, 24)
	r.Bind(func() game.Snapshot { return snap })
	return r
}

func TestRepaintPlacesEverything(t *testing.T) {
	snap := testSnapshot()
	r := newTestRenderer(snap)
	r.Repaint()

	if got := r.screen.Get(snap.BallCol, snap.BallRow); got != ballRune {
		t.Errorf("ball cell = %q, expected %q", got, ballRune)
	}
	for _, pos := range []struct {
		col, row int
	}{
		{snap.PaddleCol, snap.PaddlePos},
		{snap.PaddleCol, snap.PaddlePos - 2},
		{snap.PaddleCol, snap.PaddlePos + 2},
		{snap.PaddleCol - 1, snap.PaddlePos},
		{snap.AICol, snap.AIPos},
		{snap.AICol + 1, snap.AIPos},
	} {
		if got := r.screen.Get(pos.col, pos.row); got != paddleRune {
			t.Errorf("paddle cell (%d,%d) = %q, expected %q", pos.col, pos.row, got, paddleRune)
		}
	}
	// HUD occupies the row above the field.
	if got := r.screen.GetCell(0, snap.FieldTop-1); got.Rune != hudRune {
		t.Errorf("HUD cell = %q, expected %q", got.Rune, hudRune)
	}
}

func TestPaddleColors(t *testing.T) {
	snap := testSnapshot()
	r := newTestRenderer(snap)
	r.Repaint()

	if c := r.screen.GetCell(snap.PaddleCol, snap.PaddlePos).Color; c != core.ColorGreen {
		t.Errorf("player paddle color = %v, expected green", c)
	}
	if c := r.screen.GetCell(snap.AICol, snap.AIPos).Color; c != core.ColorRed {
		t.Errorf("ai paddle color = %v, expected red", c)
	}
}

func TestEraseDrawCycle(t *testing.T) {
	snap := testSnapshot()
	r := newTestRenderer(snap)
	r.Repaint()

	// Ball advanced: previous position is erased, new one drawn.
	r.screen.Set(snap.PrevBallCol, snap.PrevBallRow, ballRune)
	r.DeleteBall()
	if got := r.screen.Get(snap.PrevBallCol, snap.PrevBallRow); got != ' ' {
		t.Errorf("previous ball cell = %q, expected erased", got)
	}
	r.DrawBall()
	if got := r.screen.Get(snap.BallCol, snap.BallRow); got != ballRune {
		t.Errorf("ball cell = %q, expected %q", got, ballRune)
	}

	// Player paddle moved from PrevPaddlePos to PaddlePos. Both columns
	// follow.
	r.DeletePaddle(game.SidePlayer)
	for _, col := range []int{snap.PaddleCol, snap.PaddleCol - 1} {
		if got := r.screen.Get(col, snap.PrevPaddlePos-2); got != ' ' {
			t.Errorf("previous paddle top cell (%d,%d) = %q, expected erased", col, snap.PrevPaddlePos-2, got)
		}
	}
	r.DrawPaddle(game.SidePlayer)
	for _, col := range []int{snap.PaddleCol, snap.PaddleCol - 1} {
		if got := r.screen.Get(col, snap.PaddlePos+2); got != paddleRune {
			t.Errorf("paddle bottom cell (%d,%d) = %q, expected %q", col, snap.PaddlePos+2, got, paddleRune)
		}
	}
}

func TestPaddlesAreTwoColumnsWide(t *testing.T) {
	snap := testSnapshot()
	r := newTestRenderer(snap)
	r.Repaint()

	if got := r.screen.Get(snap.PaddleCol-1, snap.PaddlePos); got != paddleRune {
		t.Errorf("player paddle inner column (%d,%d) = %q, expected %q",
			snap.PaddleCol-1, snap.PaddlePos, got, paddleRune)
	}
	if got := r.screen.Get(snap.AICol+1, snap.AIPos); got != paddleRune {
		t.Errorf("ai paddle inner column (%d,%d) = %q, expected %q",
			snap.AICol+1, snap.AIPos, got, paddleRune)
	}
	// The inner column carries the same color as the collision column.
	if c := r.screen.GetCell(snap.PaddleCol-1, snap.PaddlePos).Color; c != core.ColorGreen {
		t.Errorf("player inner column color = %v, expected green", c)
	}
}

func TestRenderScreenPlainAndColored(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(0, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	if out == "" {
		t.Fatal("empty render output")
	}
	// Two rows joined by exactly one newline.
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("rendered %d lines, expected 2", lines)
	}
}
