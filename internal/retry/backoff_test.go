package retry

import (
	"testing"
	"time"
)

func TestBackoff_ExponentialGrowth(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(2.0),
		WithJitter(0),
	)

	expected := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
	}
	for attempt, want := range expected {
		if got := b.NextDelay(attempt); got != want {
			t.Errorf("attempt %d: expected %v, got %v", attempt, want, got)
		}
	}
}

func TestBackoff_CappedAtMaxDelay(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(1*time.Second),
		WithMaxDelay(5*time.Second),
		WithJitter(0),
	)

	if got := b.NextDelay(10); got != 5*time.Second {
		t.Errorf("expected delay capped at 5s, got %v", got)
	}
}

func TestBackoff_JitterDeterministic(t *testing.T) {
	// jitterFunc returning 1.0 maps to the maximum positive offset:
	// delay * (1 + jitter).
	b := NewExponentialBackoff(3,
		WithInitialDelay(100*time.Millisecond),
		WithJitter(0.1),
		WithJitterFunc(func() float64 { return 1.0 }),
	)

	if got := b.NextDelay(0); got != 110*time.Millisecond {
		t.Errorf("expected 110ms with max positive jitter, got %v", got)
	}
}

func TestBackoff_MaxAttempts(t *testing.T) {
	if got := NewExponentialBackoff(3).MaxAttempts(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := NewExponentialBackoff(-1).MaxAttempts(); got != -1 {
		t.Errorf("expected -1 (unlimited), got %d", got)
	}
}
