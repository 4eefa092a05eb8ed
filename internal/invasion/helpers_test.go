package invasion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// scriptedRand returns queued values in order, then fallback (clamped to n-1).
// Every n it was asked for is recorded.
type scriptedRand struct {
	values   []int
	fallback int
	calls    []int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return min(r.fallback, n-1)
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// neverRand makes every spawn roll fail.
type neverRand struct{}

func (neverRand) Intn(n int) int { return n - 1 }

// alwaysRand makes every spawn roll succeed with minimum sizes on platform 0.
type alwaysRand struct{}

func (alwaysRand) Intn(int) int { return 0 }

func newQuietSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.DefaultInvasionConfig(), 16*time.Millisecond, neverRand{}, core.NewRand(1))
}

// runCountdown ticks with no input until the session is Active.
func runCountdown(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; s.Phase() == PhaseCountdown; i++ {
		require.Less(t, i, 1000, "countdown never finished")
		s.Tick(core.NewInputFrame())
	}
	require.Equal(t, PhaseActive, s.Phase())
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
