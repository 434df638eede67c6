package humanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

func TestVector2D_Arithmetic(t *testing.T) {
	a := Vector2D{X: 3, Y: 4}
	b := Vector2D{X: 1, Y: -2}

	assert.Equal(t, Vector2D{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, Vector2D{X: 2, Y: 6}, a.Sub(b))
	assert.Equal(t, Vector2D{X: 6, Y: 8}, a.Mul(2))
	assert.InDelta(t, 5.0, a.Dist(Vector2D{}), 1e-9)
}

func TestVector2D_PointTruncation(t *testing.T) {
	// Truncation is toward zero on both axes.
	assert.Equal(t, schemas.Point{X: 3, Y: 4}, Vector2D{X: 3.9, Y: 4.2}.Point())
	assert.Equal(t, schemas.Point{X: -3, Y: -4}, Vector2D{X: -3.9, Y: -4.2}.Point())
	assert.Equal(t, schemas.Point{X: 0, Y: 0}, Vector2D{X: 0.99, Y: -0.99}.Point())
}

func TestVecFromPoint_RoundTrip(t *testing.T) {
	p := schemas.Point{X: -17, Y: 390}
	assert.Equal(t, p, vecFromPoint(p).Point())
}
