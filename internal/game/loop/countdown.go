package loop

import (
	"context"
	"sync"
	"time"
)

// TickInterval is one countdown step.
const TickInterval = 100 * time.Millisecond

// Countdown emits a tick on C every interval while started. Ticks are
// consumed by the frame loop so the session is only touched there.
type Countdown struct {
	interval time.Duration
	ticks    chan struct{}

	mutex   sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewCountdown creates a stopped countdown
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Countdown{
		interval: interval,
		ticks:    make(chan struct{}, 1),
	}
}

// C delivers ticks.
func (c *Countdown) C() <-chan struct{} {
	return c.ticks
}

// Start Запускает отсчет, повторный вызов ничего не делает
func (c *Countdown) Start(ctx context.Context) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.running = true

	go c.run(ctx, c.done)
}

// Stop stops the countdown and waits for the goroutine to exit. Ticks not
// yet consumed are dropped.
func (c *Countdown) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.running {
		return
	}

	c.cancel()
	<-c.done
	c.running = false

	for {
		select {
		case <-c.ticks:
		default:
			return
		}
	}
}

func (c *Countdown) Running() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.running
}

func (c *Countdown) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case c.ticks <- struct{}{}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
