package pacing

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWaitElapses(t *testing.T) {
	start := time.Now()
	if err := Wait(t.Context(), 20*time.Millisecond); err != nil {
		t.Fatalf("Wait = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v", elapsed)
	}
}

func TestWaitZero(t *testing.T) {
	if err := Wait(t.Context(), 0); err != nil {
		t.Errorf("Wait(0) = %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := Wait(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait(0) on canceled ctx = %v, want Canceled", err)
	}
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Wait(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait = %v, want Canceled", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("cancel did not interrupt the wait")
	}
}

func TestPacerDelays(t *testing.T) {
	d := DefaultDelays()
	if d.Generation != 1500*time.Millisecond || d.Feedback != 800*time.Millisecond || d.Evaluation != 2*time.Second {
		t.Errorf("DefaultDelays = %+v", d)
	}

	p := Instant()
	for name, fn := range map[string]func(context.Context) error{
		"generation": p.Generation,
		"feedback":   p.Feedback,
		"evaluation": p.Evaluation,
	} {
		if err := fn(t.Context()); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
