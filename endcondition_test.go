package desim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndTimeSatisfied(t *testing.T) {
	e := EndTime[*EffectState](10)
	assert.False(t, e.satisfied(9, 0, 5))
	assert.True(t, e.satisfied(10, 0, 5))
	assert.True(t, e.satisfied(11, 0, 5))
}

func TestEndNoEventsSatisfied(t *testing.T) {
	e := EndNoEvents[*EffectState]()
	assert.False(t, e.satisfied(0, 0, 1))
	assert.True(t, e.satisfied(0, 0, 0))
}

func TestEndNStepsSatisfied(t *testing.T) {
	e := EndNSteps[*EffectState](3)
	assert.False(t, e.satisfied(0, 2, 1))
	assert.True(t, e.satisfied(0, 3, 1))
	assert.True(t, e.satisfied(0, 4, 1))
}
