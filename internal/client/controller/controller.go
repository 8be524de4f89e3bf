// Package controller drives a game session from the frame loop: it owns the
// periodic tasks and the traffic with the stats server.
package controller

import (
	"context"
	"math"
	"sync"
	"time"
	"trading_game/internal/game/bias"
	"trading_game/internal/game/loop"
	"trading_game/internal/game/session"
	"trading_game/internal/model"

	"go.uber.org/zap"
)

// StatsAPI is the remote aggregate store.
type StatsAPI interface {
	Fetch(ctx context.Context) (model.GameStats, error)
	Save(ctx context.Context, stats model.GameStats) (model.GameStats, error)
}

type Deps struct {
	API      StatsAPI
	Logger   *zap.Logger
	RNG      bias.RandomSource
	Settings session.Settings

	// Colors overrides function colors by key.
	Colors       map[string]string
	TickInterval time.Duration
}

type statsResult struct {
	op    string
	stats model.GameStats
	err   error
}

type Controller struct {
	api    StatsAPI
	log    *zap.Logger
	rng    bias.RandomSource
	colors map[string]string

	sess        session.Session
	stats       model.GameStats
	statsErr    error
	lastOutcome *session.Outcome

	anim      *loop.Animator
	countdown *loop.Countdown

	ctx     context.Context
	cancel  context.CancelFunc
	results chan statsResult
	wg      sync.WaitGroup
}

// New builds a controller with freshly drawn random coefficients.
func New(deps Deps) (*Controller, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rng := deps.RNG
	if rng == nil {
		rng = bias.DefaultRNG()
	}

	set := deps.Settings
	if set.Coefficients == nil {
		c := bias.DrawCoefficients(rng)
		set.Coefficients = &c
	}
	sess, err := session.New(set)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		api:       deps.API,
		log:       log,
		rng:       rng,
		colors:    deps.Colors,
		sess:      sess,
		anim:      loop.NewAnimator(),
		countdown: loop.NewCountdown(deps.TickInterval),
		ctx:       ctx,
		cancel:    cancel,
		results:   make(chan statsResult, 8),
	}, nil
}

// Mount Загружает общую статистику и запускает анимацию
func (c *Controller) Mount() {
	c.log.Info("game mounted",
		zap.String("function", string(c.sess.FunctionKey())),
		zap.Int("duration", c.sess.DurationSeconds()),
	)
	c.request("fetch", func(ctx context.Context) (model.GameStats, error) {
		return c.api.Fetch(ctx)
	})
	c.syncTasks()
}

// Update Вызывается каждый кадр из игрового цикла
func (c *Controller) Update() {
	c.drainResults()
	c.drainTicks()

	c.sess = c.anim.Step(c.sess)
	c.syncTasks()
}

func (c *Controller) drainTicks() {
	for {
		select {
		case <-c.countdown.C():
			c.tick()
		default:
			return
		}
	}
}

func (c *Controller) tick() {
	next, out := c.sess.Tick()
	c.sess = next
	if out != nil {
		c.resolve(out)
	}
}

func (c *Controller) resolve(out *session.Outcome) {
	c.lastOutcome = out
	c.log.Info("round resolved",
		zap.String("round_id", out.RoundID.String()),
		zap.String("function", string(out.Function)),
		zap.Float64("entry_point", out.EntryPoint),
		zap.Float64("final_value", out.FinalValue),
		zap.Bool("won", out.Won),
	)

	next := c.stats.Record(out.Won)
	c.request("save", func(ctx context.Context) (model.GameStats, error) {
		return c.api.Save(ctx, next)
	})
}

// request runs fn off the loop goroutine and hands its result back via
// the results channel.
func (c *Controller) request(op string, fn func(ctx context.Context) (model.GameStats, error)) {
	if c.api == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		stats, err := fn(c.ctx)
		select {
		case c.results <- statsResult{op: op, stats: stats, err: err}:
		case <-c.ctx.Done():
		}
	}()
}

func (c *Controller) drainResults() {
	for {
		select {
		case r := <-c.results:
			c.apply(r)
		default:
			return
		}
	}
}

func (c *Controller) apply(r statsResult) {
	if r.err != nil {
		c.statsErr = r.err
		c.log.Error("stats request failed", zap.String("op", r.op), zap.Error(r.err))
		return
	}
	c.statsErr = nil
	c.stats = r.stats
	c.log.Debug("stats updated",
		zap.String("op", r.op),
		zap.Int("wins", r.stats.Wins),
		zap.Int("losses", r.stats.Losses),
		zap.Int("total", r.stats.Total),
	)
}

// Settle Дожидается запросов в полете и применяет их результат
func (c *Controller) Settle() {
	c.wg.Wait()
	c.drainResults()
}

// syncTasks ties the periodic tasks to playback and round state.
func (c *Controller) syncTasks() {
	if c.sess.Playing() {
		c.anim.Start()
	} else {
		c.anim.Stop()
	}

	if c.sess.Playing() && c.sess.State() == session.Active {
		c.countdown.Start(c.ctx)
	} else {
		c.countdown.Stop()
	}
}

// Click enters a trade; ignored unless waiting.
func (c *Controller) Click() error {
	next, err := c.sess.Click()
	if err != nil {
		return err
	}
	c.sess = next
	c.lastOutcome = nil
	c.log.Info("round entered",
		zap.String("round_id", next.RoundID().String()),
		zap.Float64("entry_point", c.sess.RightEdgeX()),
	)
	c.syncTasks()
	return nil
}

// Reset goes back to waiting. An active round is abandoned unreported.
func (c *Controller) Reset() {
	if c.sess.State() == session.Active {
		c.log.Info("round abandoned", zap.String("round_id", c.sess.RoundID().String()))
	}
	c.sess = c.sess.Reset()
	c.lastOutcome = nil
	c.syncTasks()
}

func (c *Controller) TogglePlayback() {
	c.sess = c.sess.TogglePlayback()
	c.syncTasks()
}

func (c *Controller) StepDuration(delta int) error {
	next, err := c.sess.SetDuration(c.sess.DurationSeconds() + delta)
	if err != nil {
		return err
	}
	c.sess = next
	return nil
}

func (c *Controller) StepSpeed(delta float64) error {
	next, err := c.sess.SetSpeed(math.Round((c.sess.Speed()+delta)*10) / 10)
	if err != nil {
		return err
	}
	c.sess = next
	return nil
}

func (c *Controller) SelectFunction(key bias.Key) error {
	next, err := c.sess.SelectFunction(key)
	if err != nil {
		return err
	}
	c.sess = next
	return nil
}

// NewRandom redraws the random combination coefficients.
func (c *Controller) NewRandom() error {
	next, err := c.sess.Redraw(bias.DrawCoefficients(c.rng))
	if err != nil {
		return err
	}
	c.sess = next
	return nil
}

// ResetStats zeroes the displayed totals. The server keeps its row until the
// next round posts.
func (c *Controller) ResetStats() {
	c.stats = model.GameStats{}
}

func (c *Controller) Session() session.Session {
	return c.sess
}

func (c *Controller) Stats() model.GameStats {
	return c.stats
}

// StatsErr is the last failed stats request, nil after a success.
func (c *Controller) StatsErr() error {
	return c.statsErr
}

func (c *Controller) LastOutcome() *session.Outcome {
	return c.lastOutcome
}

// Function is the selected function with configured color overrides.
func (c *Controller) Function() bias.Function {
	f := c.sess.Function()
	return f.WithColor(c.colors[string(f.Key)])
}

// Tasks reports which periodic tasks are running.
func (c *Controller) Tasks() (animating, counting bool) {
	return c.anim.Running(), c.countdown.Running()
}

// Close Останавливает обе задачи и отменяет запросы
func (c *Controller) Close() {
	c.anim.Stop()
	c.countdown.Stop()
	c.cancel()
	c.wg.Wait()
}
