package game

import (
	"context"
	"testing"
	"time"
)

func TestGateStartsCleared(t *testing.T) {
	g := NewPauseGate()
	if g.Active() {
		t.Fatal("new gate should start cleared")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx); err != nil {
		t.Fatalf("Wait on a cleared gate returned %v", err)
	}
}

func TestGateRaiseBlocksUntilClear(t *testing.T) {
	g := NewPauseGate()
	g.Raise()
	if !g.Active() {
		t.Fatal("gate should be active after Raise")
	}

	released := make(chan error, 1)
	go func() {
		released <- g.Wait(context.Background())
	}()

	select {
	case <-released:
		t.Fatal("Wait returned while the gate was active")
	case <-time.After(20 * time.Millisecond):
	}

	g.Clear()
	select {
	case err := <-released:
		if err != nil {
			t.Fatalf("Wait returned %v after Clear", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Clear")
	}
}

func TestGateClearReleasesAllWaiters(t *testing.T) {
	g := NewPauseGate()
	g.Raise()

	const waiters = 4
	released := make(chan struct{}, waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			g.Wait(context.Background())
			released <- struct{}{}
		}()
	}

	g.Clear()
	for i := 0; i < waiters; i++ {
		select {
		case <-released:
		case <-time.After(time.Second):
			t.Fatalf("waiter %d never released", i)
		}
	}
}

func TestGateWaitHonorsContext(t *testing.T) {
	g := NewPauseGate()
	g.Raise()

	ctx, cancel := context.WithCancel(context.Background())
	released := make(chan error, 1)
	go func() {
		released <- g.Wait(ctx)
	}()

	cancel()
	select {
	case err := <-released:
		if err == nil {
			t.Fatal("Wait returned nil for a canceled context")
		}
	case <-time.After(time.Second):
		t.Fatal("Wait ignored context cancellation")
	}
}

func TestGateIdempotentTransitions(t *testing.T) {
	g := NewPauseGate()
	g.Clear() // clearing a cleared gate
	g.Raise()
	g.Raise() // raising a raised gate
	if !g.Active() {
		t.Fatal("gate should be active")
	}
	g.Clear()
	if g.Active() {
		t.Fatal("gate should be cleared")
	}
}
