package ratelimit

import (
	"testing"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/desim"
)

func newTestLimiter(n int) *catrate.Limiter {
	return catrate.NewLimiter(map[time.Duration]int{time.Minute: n})
}

func TestAcquireGrantedWhileBudgetAvailable(t *testing.T) {
	r := New[*desim.EffectState](newTestLimiter(2), "cat")

	_, ok := r.AcquireOrEnqueue(desim.Event[*desim.EffectState]{Process: 1})
	assert.True(t, ok)
	_, ok = r.AcquireOrEnqueue(desim.Event[*desim.EffectState]{Process: 2})
	assert.True(t, ok)
}

func TestAcquireQueuesOnceBudgetExhausted(t *testing.T) {
	r := New[*desim.EffectState](newTestLimiter(1), "cat")

	_, ok := r.AcquireOrEnqueue(desim.Event[*desim.EffectState]{Process: 1})
	require.True(t, ok)

	_, ok = r.AcquireOrEnqueue(desim.Event[*desim.EffectState]{Process: 2})
	assert.False(t, ok)
	assert.Equal(t, 1, r.Waiting())
}

func TestReleaseWithNoWaitersIsANoOp(t *testing.T) {
	r := New[*desim.EffectState](newTestLimiter(1), "cat")
	_, ok := r.ReleaseAndScheduleNext(desim.Event[*desim.EffectState]{Process: 1})
	assert.False(t, ok)
}

func TestDrainPendingNilWhenNothingAdmitted(t *testing.T) {
	r := New[*desim.EffectState](newTestLimiter(1), "cat")
	assert.Nil(t, r.DrainPending())
}
