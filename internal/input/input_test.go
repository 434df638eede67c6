package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.NotNil(t, New())
}

func TestSleep_ElapsesNormally(t *testing.T) {
	s := New()
	start := time.Now()
	err := s.Sleep(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSleep_HonorsCancellation(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := s.Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleep_ZeroDuration(t *testing.T) {
	s := New()
	assert.NoError(t, s.Sleep(context.Background(), 0))
}
