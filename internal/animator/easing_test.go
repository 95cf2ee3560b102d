package animator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Easing
	}{
		{"linear", Linear},
		{"accelerate", Accelerate},
		{"decelerate", Decelerate},
		{"accelerate-decelerate", AccelerateDecelerate},
		{"spring", Spring(8, 0.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0, tt.fn(0), 1e-9)
			assert.InDelta(t, 1, tt.fn(1), 1e-9)
		})
	}
}

func TestEasingShapes(t *testing.T) {
	assert.Less(t, Accelerate(0.5), 0.5)
	assert.Greater(t, Decelerate(0.5), 0.5)
	assert.InDelta(t, 0.5, AccelerateDecelerate(0.5), 1e-9)
}

func TestSpringOvershoots(t *testing.T) {
	ease := Spring(8, 0.3)

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = max(peak, ease(float64(i)/100))
	}
	assert.Greater(t, peak, 1.0)
}

func TestSpringEasing_EndsOnTarget(t *testing.T) {
	a, clock, rec := newTestAnimator(WithEasing(Spring(8, 0.3)))

	a.Start(0, 100)
	runToEnd(t, a, clock, 50*time.Millisecond)

	assert.Equal(t, 100.0, rec.last())
}

func TestEasingByName(t *testing.T) {
	for _, name := range EasingNames() {
		e, err := EasingByName(name)
		assert.NoError(t, err, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
	}

	e, err := EasingByName(" Linear ")
	assert.NoError(t, err)
	assert.Equal(t, 0.25, e(0.25))

	_, err = EasingByName("bounce")
	assert.ErrorContains(t, err, "bounce")
}
