package loop

import (
	"context"
	"testing"
	"time"
	"trading_game/internal/game/bias"
	"trading_game/internal/game/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimator(t *testing.T) {
	s, err := session.New(session.Settings{
		DurationSeconds:    10,
		MaxDurationSeconds: 60,
		Speed:              1,
		Function:           bias.ShiftedSine,
	})
	require.NoError(t, err)

	a := NewAnimator()
	assert.False(t, a.Running())
	assert.Equal(t, s, a.Step(s))

	a.Start()
	for i := 0; i < 5; i++ {
		s = a.Step(s)
	}
	assert.InDelta(t, 0.04, s.AnimationTime(), 1e-12)
	assert.Equal(t, uint64(5), a.Frames())

	a.Stop()
	assert.Equal(t, s, a.Step(s))
	assert.Equal(t, uint64(5), a.Frames())
}

func TestCountdown_Ticks(t *testing.T) {
	c := NewCountdown(5 * time.Millisecond)
	c.Start(context.Background())
	defer c.Stop()
	assert.True(t, c.Running())

	for i := 0; i < 3; i++ {
		select {
		case <-c.C():
		case <-time.After(time.Second):
			t.Fatalf("tick %d not delivered", i)
		}
	}
}

func TestCountdown_StopHaltsTicks(t *testing.T) {
	c := NewCountdown(5 * time.Millisecond)
	c.Start(context.Background())
	<-c.C()

	c.Stop()
	assert.False(t, c.Running())

	select {
	case <-c.C():
		t.Fatal("tick after stop")
	case <-time.After(30 * time.Millisecond):
	}

	c.Stop()
}

func TestCountdown_Restart(t *testing.T) {
	c := NewCountdown(5 * time.Millisecond)
	c.Start(context.Background())
	c.Start(context.Background())
	c.Stop()

	c.Start(context.Background())
	defer c.Stop()
	select {
	case <-c.C():
	case <-time.After(time.Second):
		t.Fatal("no tick after restart")
	}
}

func TestCountdown_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCountdown(5 * time.Millisecond)
	c.Start(ctx)
	cancel()

	// the goroutine exits on its own; Stop still returns
	c.Stop()
	assert.False(t, c.Running())
}

func TestNewCountdown_DefaultInterval(t *testing.T) {
	assert.Equal(t, TickInterval, NewCountdown(0).interval)
}
