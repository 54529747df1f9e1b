package tween

import "math"

// Easing maps normalized elapsed time [0,1] to normalized progress [0,1].
type Easing func(t float64) float64

// Named curves. The string forms ("quad.inOut" etc.) are what view configs
// reference; ByName resolves them.
var (
	Linear     Easing = func(t float64) float64 { return t }
	QuadInOut  Easing = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	}
	CubicInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}
	ExpoOut Easing = func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	}
	SineInOut Easing = func(t float64) float64 {
		return -(math.Cos(math.Pi*t) - 1) / 2
	}
)

var easingsByName = map[string]Easing{
	"linear":      Linear,
	"quad.inOut":  QuadInOut,
	"cubic.inOut": CubicInOut,
	"expo.out":    ExpoOut,
	"sine.inOut":  SineInOut,
}

// ByName resolves a curve identifier. Unknown names fall back to Linear; the
// second return reports whether the name was recognized.
func ByName(name string) (Easing, bool) {
	if e, ok := easingsByName[name]; ok {
		return e, true
	}
	return Linear, false
}
