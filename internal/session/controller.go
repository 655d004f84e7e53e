package session

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/jokenpo/internal/game"
)

// DefaultDelay is the pause between a move and its outcome being shown.
const DefaultDelay = 600 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used to schedule resolutions.
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithDelay sets the suspense delay. A delay <= 0 resolves turns inside Play.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithNotify registers a hook called after every resolution, outside the
// controller lock. The game view uses it to schedule a redraw.
func WithNotify(fn func()) Option {
	return func(c *Controller) { c.notify = fn }
}

// WithRecorder registers a hook receiving each resolved turn.
func WithRecorder(fn func(game.Turn)) Option {
	return func(c *Controller) { c.record = fn }
}

// Controller owns a Session and drives it through play, resolve and reset.
//
// Key presses and timer callbacks arrive on different goroutines; both go
// through mu, so the session only ever sees one transition at a time.
type Controller struct {
	mu    sync.Mutex
	state Session

	chooser game.Chooser
	clock   quartz.Clock
	delay   time.Duration
	logger  *log.Logger
	notify  func()
	record  func(game.Turn)

	pending *quartz.Timer
	token   uint64 // bumped whenever a pending resolution must be ignored
	closed  bool
}

// New creates a controller whose opponent plays the moves returned by chooser.
func New(chooser game.Chooser, opts ...Option) *Controller {
	c := &Controller{
		chooser: chooser,
		clock:   quartz.NewReal(),
		delay:   DefaultDelay,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithPrefix("session")
	return c
}

// Play starts a turn with the player's move. It returns false and changes
// nothing if a turn is already resolving, the controller is closed, or move
// is not a playable move.
func (c *Controller) Play(move game.Move) bool {
	c.mu.Lock()

	if c.closed || c.state.Busy || !move.Valid() {
		c.logger.Debug("Ignoring play request", "move", move, "busy", c.state.Busy, "closed", c.closed)
		c.mu.Unlock()
		return false
	}

	opponent := c.chooser.ChooseMove()
	c.state.Turn = game.Turn{PlayerMove: move, OpponentMove: opponent}
	c.state.Busy = true
	c.token++
	token := c.token

	c.logger.Debug("Turn started", "player", move, "opponent", opponent, "token", token)

	if c.delay <= 0 {
		turn := c.resolveLocked()
		c.mu.Unlock()
		c.resolved(turn)
		return true
	}

	c.pending = c.clock.AfterFunc(c.delay, func() { c.resolve(token) }, "session", "resolve")
	c.mu.Unlock()
	return true
}

// resolve is the timer callback for the turn started with token.
func (c *Controller) resolve(token uint64) {
	c.mu.Lock()
	if c.closed || !c.state.Busy || token != c.token {
		c.logger.Debug("Discarding stale resolution", "token", token, "current", c.token)
		c.mu.Unlock()
		return
	}
	c.pending = nil
	turn := c.resolveLocked()
	c.mu.Unlock()
	c.resolved(turn)
}

func (c *Controller) resolveLocked() game.Turn {
	t := &c.state.Turn
	t.Outcome = game.Resolve(t.PlayerMove, t.OpponentMove)
	c.state.Score.Record(t.Outcome)
	c.state.Busy = false

	c.logger.Info("Turn resolved",
		"player", t.PlayerMove,
		"opponent", t.OpponentMove,
		"outcome", t.Outcome,
		"score", c.state.Score.Player,
		"opponentScore", c.state.Score.Opponent)
	return *t
}

func (c *Controller) resolved(turn game.Turn) {
	if c.record != nil {
		c.record(turn)
	}
	if c.notify != nil {
		c.notify()
	}
}

// Reset zeroes the score and clears the last turn. A turn still resolving is
// cancelled and its outcome is never applied.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.state.Busy {
		c.logger.Debug("Reset cancels pending turn", "token", c.token)
	}
	c.cancelLocked()
	c.state = Session{}
	c.logger.Info("Scores reset")
}

// Close tears the controller down. A pending resolution is discarded and
// every later call is a no-op. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.cancelLocked()
	c.closed = true
	c.logger.Debug("Controller closed")
}

func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.token++
}

// Snapshot returns a copy of the session for rendering.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a turn is waiting for its outcome.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Busy
}

// Delay returns the configured suspense delay.
func (c *Controller) Delay() time.Duration {
	return c.delay
}
