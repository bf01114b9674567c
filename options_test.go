package desim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOptionsDefaultsToNoOpLogger(t *testing.T) {
	cfg := resolveOptions[*EffectState](nil)
	assert.NotNil(t, cfg.logger)
	assert.False(t, cfg.logger.IsEnabled(LevelDebug))
}

func TestWithLoggerOverridesDefault(t *testing.T) {
	custom := NewDefaultLogger(LevelWarn)
	cfg := resolveOptions([]Option[*EffectState]{WithLogger[*EffectState](custom)})
	assert.Same(t, custom, cfg.logger)
}

func TestWithLoggerNilIsIgnored(t *testing.T) {
	cfg := resolveOptions([]Option[*EffectState]{WithLogger[*EffectState](nil)})
	assert.IsType(t, noOpLogger{}, cfg.logger)
}

func TestWithTraceCapacityIgnoresNonPositive(t *testing.T) {
	cfg := resolveOptions([]Option[*EffectState]{WithTraceCapacity[*EffectState](-1)})
	assert.Equal(t, 0, cfg.traceCapacity)

	cfg = resolveOptions([]Option[*EffectState]{WithTraceCapacity[*EffectState](8)})
	assert.Equal(t, 8, cfg.traceCapacity)
}

func TestNilOptionIsSkipped(t *testing.T) {
	assert.NotPanics(t, func() {
		resolveOptions[*EffectState]([]Option[*EffectState]{nil})
	})
}
