package animator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear time in [0,1] to animation progress. Progress must be 0
// at 0 and 1 at 1; it may leave that range in between.
type Easing func(t float64) float64

// Linear is the default: value changes uniformly with time.
func Linear(t float64) float64 { return t }

// Accelerate starts slow and speeds up.
func Accelerate(t float64) float64 { return t * t }

// Decelerate starts fast and slows down.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

// AccelerateDecelerate is slow at both ends.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

const springSamples = 120

// Spring returns an easing that follows a damped harmonica spring released
// from 0 towards 1. A damping ratio below 1 overshoots the target before
// settling; the animator still commits the exact target on completion.
func Spring(frequency, damping float64) Easing {
	s := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)

	samples := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = pos
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		f := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*f
	}
}

var easings = map[string]Easing{
	"linear":                Linear,
	"accelerate":            Accelerate,
	"decelerate":            Decelerate,
	"accelerate-decelerate": AccelerateDecelerate,
	"spring":                Spring(8, 0.4),
}

// EasingNames lists the names EasingByName understands.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EasingByName looks up an easing for config files and flags.
func EasingByName(name string) (Easing, error) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (want one of %s)", name, strings.Join(EasingNames(), ", "))
	}
	return e, nil
}
