package humanoid

import "math"

// Hash constants popularized by GLSL one-liner noise. The product of a
// high-frequency sine with a large irrational-looking multiplier decorrelates
// neighboring inputs well enough for pixel-scale tremor.
const (
	noiseFreq  = 12.9898
	noiseScale = 43758.5453
)

// hashNoise returns a deterministic pseudo-random value in [0,1) for a given
// t. This is cheap hash noise, not coherent Perlin/simplex noise: there is no
// gradient continuity between samples, only a stable, aperiodic-looking
// mapping from t to a scalar. The jitter model depends on these exact
// characteristics; swapping in a real coherent-noise generator would change
// the visible tremor.
func hashNoise(t float64) float64 {
	f := math.Mod(math.Sin(t*noiseFreq)*noiseScale, 1)
	// math.Mod keeps the sign of the dividend; fold negatives into [0,1).
	if f < 0 {
		f++
	}
	return f
}
