package humanoid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

func planned(m *Mouse, start, end schemas.Point, steps int, humanlike bool) []schemas.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.planPath(start, end, steps, humanlike)
}

func TestPlanPath_LinearSequence(t *testing.T) {
	m := NewTestMouse(newMockSink(), 1)

	path := planned(m, schemas.Point{X: 0, Y: 0}, schemas.Point{X: 100, Y: 50}, 10, false)

	want := make([]schemas.Point, 0, 11)
	for i := 0; i <= 10; i++ {
		want = append(want, schemas.Point{X: 10 * i, Y: 5 * i})
	}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Fatalf("linear path mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanPath_LinearEndpoints(t *testing.T) {
	m := NewTestMouse(newMockSink(), 2)
	start := schemas.Point{X: 13, Y: -7}
	end := schemas.Point{X: 811, Y: 403}

	for steps := 1; steps <= 37; steps++ {
		path := planned(m, start, end, steps, false)
		require.Len(t, path, steps+1, "steps=%d", steps)
		assert.Equal(t, start, path[0], "steps=%d", steps)
		assert.InDelta(t, end.X, path[steps].X, 1, "steps=%d", steps)
		assert.InDelta(t, end.Y, path[steps].Y, 1, "steps=%d", steps)
	}
}

func TestPlanPath_LinearMonotonic(t *testing.T) {
	m := NewTestMouse(newMockSink(), 3)
	cases := []struct {
		name       string
		start, end schemas.Point
	}{
		{"down right", schemas.Point{X: 0, Y: 0}, schemas.Point{X: 500, Y: 300}},
		{"up left", schemas.Point{X: 500, Y: 300}, schemas.Point{X: 20, Y: 10}},
		{"horizontal", schemas.Point{X: 100, Y: 42}, schemas.Point{X: 900, Y: 42}},
		{"negative space", schemas.Point{X: -50, Y: -80}, schemas.Point{X: -10, Y: -200}},
	}

	sign := func(v int) int {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := planned(m, tc.start, tc.end, 23, false)
			dirX := sign(tc.end.X - tc.start.X)
			dirY := sign(tc.end.Y - tc.start.Y)
			for i := 1; i < len(path); i++ {
				dx := path[i].X - path[i-1].X
				dy := path[i].Y - path[i-1].Y
				assert.GreaterOrEqual(t, dx*dirX, 0, "x overshoot at step %d", i)
				assert.GreaterOrEqual(t, dy*dirY, 0, "y overshoot at step %d", i)
			}
		})
	}
}

func TestPlanPath_StepsNormalizedToOne(t *testing.T) {
	m := NewTestMouse(newMockSink(), 4)
	path := planned(m, schemas.Point{X: 0, Y: 0}, schemas.Point{X: 10, Y: 10}, 0, false)
	assert.Len(t, path, 2)
	path = planned(m, schemas.Point{X: 0, Y: 0}, schemas.Point{X: 10, Y: 10}, -5, true)
	assert.Len(t, path, 2)
}

func TestPlanPath_HumanStationaryJitterOnly(t *testing.T) {
	m := NewTestMouse(newMockSink(), 5)
	// Zeroing the control-point offset isolates the tremor component.
	m.cfg.CurveOffsetMax = 0

	start := schemas.Point{X: 200, Y: 200}
	path := planned(m, start, start, 40, true)
	require.Len(t, path, 41)

	for i, p := range path {
		assert.LessOrEqual(t, abs(p.X-start.X), 3, "x deviation at step %d", i)
		assert.LessOrEqual(t, abs(p.Y-start.Y), 3, "y deviation at step %d", i)
		// The same scalar jitter is applied to both axes of a step.
		assert.Equal(t, p.X-start.X, p.Y-start.Y, "axes must share jitter at step %d", i)
	}
}

func TestPlanPath_HumanStationaryBounded(t *testing.T) {
	m := NewTestMouse(newMockSink(), 6)

	start := schemas.Point{X: 300, Y: 400}
	path := planned(m, start, start, 25, true)
	require.Len(t, path, 26)

	// The cubic with symmetric control offsets deflects at most
	// offset*max|3t(1-t)(1-2t)| ~= 0.289*offset from a stationary start,
	// plus jitter and truncation.
	maxDev := int(0.289*float64(m.cfg.CurveOffsetMax)+m.cfg.JitterAmplitude) + 1
	for i, p := range path {
		assert.LessOrEqual(t, abs(p.X-start.X), maxDev, "x deviation at step %d", i)
		assert.LessOrEqual(t, abs(p.Y-start.Y), maxDev, "y deviation at step %d", i)
	}
}

func TestPlanPath_HumanEndpointsNearTargets(t *testing.T) {
	m := NewTestMouse(newMockSink(), 7)
	start := schemas.Point{X: 50, Y: 60}
	end := schemas.Point{X: 640, Y: 480}

	path := planned(m, start, end, 30, true)
	require.Len(t, path, 31)

	// Endpoints coincide with start/end up to jitter and truncation.
	jitterBound := int(m.cfg.JitterAmplitude) + 1
	assert.LessOrEqual(t, abs(path[0].X-start.X), jitterBound)
	assert.LessOrEqual(t, abs(path[0].Y-start.Y), jitterBound)
	assert.LessOrEqual(t, abs(path[30].X-end.X), jitterBound)
	assert.LessOrEqual(t, abs(path[30].Y-end.Y), jitterBound)
}

func TestBezierPoint_Blend(t *testing.T) {
	p0 := Vector2D{X: 0, Y: 0}
	p1 := Vector2D{X: 10, Y: 20}
	p2 := Vector2D{X: 30, Y: 10}
	p3 := Vector2D{X: 40, Y: 40}

	assert.Equal(t, p0, bezierPoint(p0, p1, p2, p3, 0))
	assert.Equal(t, p3, bezierPoint(p0, p1, p2, p3, 1))

	// Midpoint of the blend: (p0 + 3p1 + 3p2 + p3) / 8.
	mid := bezierPoint(p0, p1, p2, p3, 0.5)
	assert.InDelta(t, 20.0, mid.X, 1e-9)
	assert.InDelta(t, 16.25, mid.Y, 1e-9)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
