package humanoid

import (
	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// Multiplying t by this factor before hashing spreads consecutive waypoint
// parameters far apart in noise space, so the tremor shows no visible
// pattern over a path.
const jitterNoiseStretch = 100.0

// bezierPoint evaluates the standard cubic Bezier blend at parameter t,
// applied independently per axis:
//
//	B(t) = (1-t)^3*P0 + 3(1-t)^2*t*P1 + 3(1-t)*t^2*P2 + t^3*P3
//
// Total for any t; values outside [0,1] extrapolate the curve.
func bezierPoint(p0, p1, p2, p3 Vector2D, t float64) Vector2D {
	omt := 1.0 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).
		Add(p1.Mul(3 * omt2 * t)).
		Add(p2.Mul(3 * omt * t2)).
		Add(p3.Mul(t2 * t))
}

// planPath produces the ordered waypoint sequence from start to end,
// inclusive on both ends, with exactly steps+1 entries. steps below 1 is
// normalized to 1 rather than rejected.
//
// Linear mode interpolates evenly per axis with truncation to integers, so
// each axis progresses monotonically toward the target. Human mode bends the
// path along a cubic Bezier whose inner control points sit at symmetric
// random offsets around the integer midpoint (one shared offset, applied to
// both axes of both points, giving the characteristic S-curve bias) and then
// perturbs every waypoint by the same scalar hash-noise jitter on both axes.
//
// start == end is valid: the human path stays within control-point
// deflection plus jitter of the start, the linear path is constant.
//
// Callers must hold m.mu: the planner consumes m.rng.
func (m *Mouse) planPath(start, end schemas.Point, steps int, humanlike bool) []schemas.Point {
	if steps < 1 {
		steps = 1
	}

	path := make([]schemas.Point, 0, steps+1)

	if !humanlike {
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			path = append(path, schemas.Point{
				X: int(float64(start.X) + float64(end.X-start.X)*t),
				Y: int(float64(start.Y) + float64(end.Y-start.Y)*t),
			})
		}
		return path
	}

	mid := schemas.Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}
	offset := 0
	if max := m.cfg.CurveOffsetMax; max > 0 {
		offset = m.rng.Intn(2*max+1) - max
	}

	p0 := vecFromPoint(start)
	p3 := vecFromPoint(end)
	off := float64(offset)
	p1 := vecFromPoint(mid).Add(Vector2D{X: off, Y: off})
	p2 := vecFromPoint(mid).Sub(Vector2D{X: off, Y: off})

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pos := bezierPoint(p0, p1, p2, p3, t)

		// One scalar jitter sample per step, shared by both axes.
		jitter := (hashNoise(t*jitterNoiseStretch)*2 - 1) * m.cfg.JitterAmplitude
		pos = pos.Add(Vector2D{X: jitter, Y: jitter})

		path = append(path, pos.Point())
	}
	return path
}
