package desim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcHandleResumeYieldsState(t *testing.T) {
	h := startProcess[*EffectState](func(ctx *Context[*EffectState]) {
		out := ctx.Yield(NewEffectState(Timeout(1)))
		assert.Equal(t, Time(5), ctx.Time())
		_ = out
		ctx.Yield(NewEffectState(Wait()))
	})

	yielded, completed, panicVal := h.resume(0, NewEffectState(Timeout(0)))
	require.False(t, completed)
	require.Nil(t, panicVal)
	assert.Equal(t, EffectTimeout, yielded.Effect().Kind)

	yielded, completed, panicVal = h.resume(5, NewEffectState(Timeout(0)))
	require.False(t, completed)
	require.Nil(t, panicVal)
	assert.Equal(t, EffectWait, yielded.Effect().Kind)
}

func TestProcHandleResumeCompletion(t *testing.T) {
	h := startProcess[*EffectState](func(ctx *Context[*EffectState]) {})
	_, completed, panicVal := h.resume(0, NewEffectState(Timeout(0)))
	assert.True(t, completed)
	assert.Nil(t, panicVal)
}

func TestProcHandleResumePanicIsRecovered(t *testing.T) {
	h := startProcess[*EffectState](func(ctx *Context[*EffectState]) {
		panic("kaboom")
	})
	_, completed, panicVal := h.resume(0, NewEffectState(Timeout(0)))
	assert.True(t, completed)
	assert.Equal(t, "kaboom", panicVal)
}

func TestContextStateReflectsLastResume(t *testing.T) {
	h := startProcess[*EffectState](func(ctx *Context[*EffectState]) {
		assert.Equal(t, EffectTimeout, ctx.State().Effect().Kind)
		ctx.Yield(NewEffectState(Wait()))
	})
	_, _, _ = h.resume(0, NewEffectState(Timeout(3)))
}
