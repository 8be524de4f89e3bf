// Package session holds the game state machine as an immutable value.
// Each event is a method returning the next Session, so the machine can be
// driven and inspected without any rendering.
package session

import (
	"errors"
	"fmt"
	"math"
	"trading_game/internal/game/bias"

	"github.com/google/uuid"
)

// State of the current round.
type State int

const (
	Waiting State = iota
	Active
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Resolved reports whether the round has an outcome.
func (s State) Resolved() bool {
	return s == Won || s == Lost
}

const (
	// Span is the width of the visible window in function units.
	Span = 4 * math.Pi
	// FrameStep is the animation advance per frame at speed 1.
	FrameStep = 0.008

	MinSpeed = 0.1
	MaxSpeed = 2.0

	// one countdown tick is 0.1s
	tenthsPerSecond = 10
)

var (
	ErrRoundActive = errors.New("round is active")
	ErrNotWaiting  = errors.New("no round can be entered now")
	ErrSetting     = errors.New("invalid setting")
)

// Settings are the initial player options.
type Settings struct {
	DurationSeconds    int
	MaxDurationSeconds int
	Speed              float64
	Function           bias.Key
	Coefficients       *bias.Coefficients
}

// Outcome describes a resolved round.
type Outcome struct {
	RoundID    uuid.UUID
	Function   bias.Key
	EntryPoint float64
	FinalX     float64
	FinalValue float64
	Won        bool
}

// Session is one player's view of the game. The zero value is not usable;
// build it with New.
type Session struct {
	state           State
	roundID         uuid.UUID
	entryPoint      float64
	remainingTenths int
	animationTime   float64
	playing         bool

	duration    int
	maxDuration int
	speed       float64
	function    bias.Key
	coeffs      bias.Coefficients
	hasCoeffs   bool
}

// New validates settings and returns a waiting, playing session.
func New(s Settings) (Session, error) {
	if s.MaxDurationSeconds < 1 {
		return Session{}, fmt.Errorf("%w: max duration %d", ErrSetting, s.MaxDurationSeconds)
	}
	if s.DurationSeconds < 1 || s.DurationSeconds > s.MaxDurationSeconds {
		return Session{}, fmt.Errorf("%w: duration %d", ErrSetting, s.DurationSeconds)
	}
	speed, err := normalizeSpeed(s.Speed)
	if err != nil {
		return Session{}, err
	}
	if _, err = bias.Lookup(s.Function, nil); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrSetting, err)
	}

	sess := Session{
		state:           Waiting,
		remainingTenths: s.DurationSeconds * tenthsPerSecond,
		playing:         true,
		duration:        s.DurationSeconds,
		maxDuration:     s.MaxDurationSeconds,
		speed:           speed,
		function:        s.Function,
	}
	if s.Coefficients != nil {
		sess.coeffs = *s.Coefficients
		sess.hasCoeffs = true
	}
	return sess, nil
}

func normalizeSpeed(v float64) (float64, error) {
	v = math.Round(v*10) / 10
	if v < MinSpeed || v > MaxSpeed {
		return 0, fmt.Errorf("%w: speed %.1f", ErrSetting, v)
	}
	return v, nil
}

func (s Session) State() State { return s.state }
func (s Session) RoundID() uuid.UUID { return s.roundID }
func (s Session) AnimationTime() float64 { return s.animationTime }
func (s Session) Playing() bool { return s.playing }
func (s Session) DurationSeconds() int { return s.duration }
func (s Session) MaxDurationSeconds() int { return s.maxDuration }
func (s Session) Speed() float64 { return s.speed }
func (s Session) FunctionKey() bias.Key { return s.function }

// TimeRemaining in seconds.
func (s Session) TimeRemaining() float64 {
	return float64(s.remainingTenths) / tenthsPerSecond
}

// EntryPoint is set only while a round is active or resolved.
func (s Session) EntryPoint() (float64, bool) {
	if s.state == Waiting {
		return 0, false
	}
	return s.entryPoint, true
}

// Coefficients of the random combination, if drawn.
func (s Session) Coefficients() (bias.Coefficients, bool) {
	return s.coeffs, s.hasCoeffs
}

// Function is the currently selected bias function.
func (s Session) Function() bias.Function {
	var c *bias.Coefficients
	if s.hasCoeffs {
		c = &s.coeffs
	}
	return bias.MustLookup(s.function, c)
}

// RightEdgeX is the function coordinate at the right edge of the canvas.
func (s Session) RightEdgeX() float64 {
	return Span + s.animationTime
}

// EntryValue is f(entryPoint) for the active round.
func (s Session) EntryValue() (float64, bool) {
	if s.state != Active {
		return 0, false
	}
	return s.Function().Evaluate(s.entryPoint), true
}

// IndicatorX tracks the entry point plus the elapsed share of the resolve
// offset. Only defined while active.
func (s Session) IndicatorX() (float64, bool) {
	if s.state != Active {
		return 0, false
	}
	total := float64(s.duration * tenthsPerSecond)
	elapsed := total - float64(s.remainingTenths)
	return s.entryPoint + elapsed/total*bias.ResolveOffset, true
}

// Click Вход в сделку в текущей правой точке графика
func (s Session) Click() (Session, error) {
	if s.state != Waiting {
		return s, ErrNotWaiting
	}
	s.state = Active
	s.roundID = uuid.New()
	s.entryPoint = s.RightEdgeX()
	s.remainingTenths = s.duration * tenthsPerSecond
	return s, nil
}

// Tick counts down 0.1s. The round resolves when the countdown reaches zero,
// in which case the outcome is returned.
func (s Session) Tick() (Session, *Outcome) {
	if s.state != Active {
		return s, nil
	}
	if s.remainingTenths > 0 {
		s.remainingTenths--
	}
	if s.remainingTenths <= 0 {
		return s.Timeout()
	}
	return s, nil
}

// Timeout resolves the active round at entryPoint + ResolveOffset.
func (s Session) Timeout() (Session, *Outcome) {
	if s.state != Active {
		return s, nil
	}
	f := s.Function()
	x := s.entryPoint + bias.ResolveOffset
	v := f.Evaluate(x)

	s.remainingTenths = 0
	s.state = Lost
	if v > 0 {
		s.state = Won
	}
	return s, &Outcome{
		RoundID:    s.roundID,
		Function:   f.Key,
		EntryPoint: s.entryPoint,
		FinalX:     x,
		FinalValue: v,
		Won:        s.state == Won,
	}
}

// Reset Возврат в ожидание. Активный раунд бросается без результата
func (s Session) Reset() Session {
	s.state = Waiting
	s.roundID = uuid.Nil
	s.entryPoint = 0
	s.remainingTenths = s.duration * tenthsPerSecond
	return s
}

// Advance moves the animation by one frame if playing.
func (s Session) Advance() Session {
	if s.playing {
		s.animationTime += s.speed * FrameStep
	}
	return s
}

// SetPlaying pauses or resumes both animation and countdown.
func (s Session) SetPlaying(playing bool) Session {
	s.playing = playing
	return s
}

// TogglePlayback flips SetPlaying.
func (s Session) TogglePlayback() Session {
	return s.SetPlaying(!s.playing)
}

// SetDuration changes the round length. Locked while active.
func (s Session) SetDuration(seconds int) (Session, error) {
	if s.state == Active {
		return s, ErrRoundActive
	}
	if seconds < 1 || seconds > s.maxDuration {
		return s, fmt.Errorf("%w: duration %d", ErrSetting, seconds)
	}
	s.duration = seconds
	if s.state == Waiting {
		s.remainingTenths = seconds * tenthsPerSecond
	}
	return s, nil
}

// SetSpeed changes the animation speed; allowed at any time.
func (s Session) SetSpeed(v float64) (Session, error) {
	speed, err := normalizeSpeed(v)
	if err != nil {
		return s, err
	}
	s.speed = speed
	return s, nil
}

// SelectFunction switches the bias function. Locked while active.
func (s Session) SelectFunction(key bias.Key) (Session, error) {
	if s.state == Active {
		return s, ErrRoundActive
	}
	if _, err := bias.Lookup(key, nil); err != nil {
		return s, fmt.Errorf("%w: %v", ErrSetting, err)
	}
	s.function = key
	return s, nil
}

// Redraw replaces the random coefficients. Locked while active.
func (s Session) Redraw(c bias.Coefficients) (Session, error) {
	if s.state == Active {
		return s, ErrRoundActive
	}
	s.coeffs = c
	s.hasCoeffs = true
	return s, nil
}
