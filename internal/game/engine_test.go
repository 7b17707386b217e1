package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/termpong/internal/core"
)

// chanSource feeds scripted events to the input actor.
type chanSource struct {
	ch chan core.InputEvent
}

func newChanSource() *chanSource {
	return &chanSource{ch: make(chan core.InputEvent, 16)}
}

func (c *chanSource) Next(ctx context.Context) (core.InputEvent, bool) {
	select {
	case ev := <-c.ch:
		return ev, true
	case <-ctx.Done():
		return core.InputEvent{}, false
	}
}

func (c *chanSource) send(kind core.EventKind) {
	c.ch <- core.InputEvent{Kind: kind}
}

// recordRenderer counts draw calls behind a mutex so the signal actor and
// the test can race on it safely.
type recordRenderer struct {
	mu       sync.Mutex
	repaints int
}

func (r *recordRenderer) DrawPaddle(Side)   {}
func (r *recordRenderer) DeletePaddle(Side) {}
func (r *recordRenderer) DrawBall()         {}
func (r *recordRenderer) DeleteBall()       {}

func (r *recordRenderer) Repaint() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.repaints++
}

func (r *recordRenderer) repaintCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repaints
}

// stubGeometry reports a mutable terminal size.
type stubGeometry struct {
	mu         sync.Mutex
	rows, cols int
}

func (g *stubGeometry) Dimensions() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rows, g.cols
}

func (g *stubGeometry) set(rows, cols int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rows, g.cols = rows, cols
}

func newTestEngine(t *testing.T) (*Engine, *chanSource, *recordRenderer, *stubGeometry) {
	t.Helper()
	src := newChanSource()
	rend := &recordRenderer{}
	geo := &stubGeometry{rows: 24, cols: 80}
	e := New(Options{
		Rules:    DefaultRules(),
		Source:   src,
		Renderer: rend,
		Geometry: geo,
	})
	return e, src, rend, geo
}

func TestEngineInputMovesPaddle(t *testing.T) {
	e, src, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	before := e.Snapshot().PaddlePos
	src.send(core.EventDown)
	waitForTag(t, e.Tags(), TagPlayerInput)

	after := e.Snapshot()
	if after.PaddlePos != before+1 {
		t.Errorf("PaddlePos = %d, expected %d", after.PaddlePos, before+1)
	}
	if after.PrevPaddlePos != before {
		t.Errorf("PrevPaddlePos = %d, expected %d", after.PrevPaddlePos, before)
	}

	src.send(core.EventUp)
	waitForTag(t, e.Tags(), TagPlayerInput)
	if got := e.Snapshot().PaddlePos; got != before {
		t.Errorf("PaddlePos = %d, expected back at %d", got, before)
	}
}

func TestEnginePointerMoveClampsToField(t *testing.T) {
	e, src, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	src.ch <- core.InputEvent{Kind: core.EventPointerMove, Row: 500}
	waitForTag(t, e.Tags(), TagPlayerInput)

	snap := e.Snapshot()
	want := snap.BottomRow - snap.PaddleWidth/2
	if snap.PaddlePos != want {
		t.Errorf("PaddlePos = %d, expected clamped to %d", snap.PaddlePos, want)
	}
}

func TestEngineQuitSetsExitFlagAndTerminalTag(t *testing.T) {
	e, src, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	src.send(core.EventQuit)
	waitForTag(t, e.Tags(), TagTerminal)
	if !e.ExitRequested() {
		t.Error("exit flag not set after quit")
	}
}

func TestEnginePlayRequestPolled(t *testing.T) {
	e, src, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	src.send(core.EventPlay)
	deadline := time.After(time.Second)
	for !e.ConsumePlayRequest() {
		select {
		case <-deadline:
			t.Fatal("play request never observed")
		case <-time.After(time.Millisecond):
		}
	}
	if e.ConsumePlayRequest() {
		t.Error("play request consumed twice")
	}
}

func TestEngineGateDropsMovementHonorsAcknowledgment(t *testing.T) {
	e, src, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	e.gate.Raise()
	before := e.Snapshot().PaddlePos

	// Movement during a level transition is dropped.
	src.send(core.EventDown)
	time.Sleep(20 * time.Millisecond)
	if got := e.Snapshot().PaddlePos; got != before {
		t.Errorf("paddle moved to %d during the gate, expected %d", got, before)
	}

	// The acknowledgment clears the gate.
	src.send(core.EventPlay)
	deadline := time.After(time.Second)
	for e.GateActive() {
		select {
		case <-deadline:
			t.Fatal("gate never cleared after acknowledgment")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestEngineResizeRepaintsAndReclamps(t *testing.T) {
	e, _, rend, geo := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	geo.set(12, 40)
	e.Resize()

	deadline := time.After(time.Second)
	for rend.repaintCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("resize never repainted")
		case <-time.After(time.Millisecond):
		}
	}

	snap := e.Snapshot()
	if snap.BottomRow != 11 || snap.Cols != 40 {
		t.Errorf("bounds %d/%d, expected 11/40", snap.BottomRow, snap.Cols)
	}
	if snap.PaddleCol != 39 {
		t.Errorf("PaddleCol = %d, expected 39", snap.PaddleCol)
	}
}

func TestEngineResizeIgnoresDegenerateGeometry(t *testing.T) {
	e, _, rend, geo := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	geo.set(1, 2)
	e.Resize()
	time.Sleep(20 * time.Millisecond)

	if rend.repaintCount() != 0 {
		t.Error("degenerate geometry triggered a repaint")
	}
	if snap := e.Snapshot(); snap.BottomRow != 23 || snap.Cols != 80 {
		t.Errorf("bounds changed to %d/%d on degenerate geometry", snap.BottomRow, snap.Cols)
	}
}

func TestEngineTerminateIsFatal(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	e.Terminate()
	waitForTag(t, e.Tags(), TagTerminal)

	if !e.Terminating() {
		t.Error("termination flag not set")
	}
	if !e.ExitRequested() {
		t.Error("default fatal path should request exit")
	}
}

func TestEngineRoundProducesBallTicks(t *testing.T) {
	src := newChanSource()
	rend := &recordRenderer{}
	geo := &stubGeometry{rows: 24, cols: 80}
	rules := DefaultRules()
	rules.BallInterval = time.Millisecond
	rules.AIInterval = time.Millisecond
	e := New(Options{Rules: rules, Source: src, Renderer: rend, Geometry: geo})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)
	e.StartRound(ctx)
	defer e.EndRound()

	waitForTag(t, e.Tags(), TagBallUpdated)
	waitForTag(t, e.Tags(), TagAIUpdated)
}
