// SPDX-License-Identifier: MIT
// Package: bfsviz/driver
//
// driver.go - timer-driven stepping with Play/Stop/Run.

package driver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/bfsviz/bfs"
	"go.uber.org/zap"
)

// DefaultInterval is the default step period.
const DefaultInterval = 100 * time.Millisecond

// ErrAlreadyRunning indicates Play on an Animator that is still playing.
var ErrAlreadyRunning = errors.New("driver: already running")

// Stepper is the part of *bfs.Stepper an Animator drives.
type Stepper interface {
	Step() bfs.StepResult
	Reached() bool
	Exhausted() bool
}

// StopReason tells why a run ended.
type StopReason int

const (
	// StopGoal means a step reported OutcomeGoal.
	StopGoal StopReason = iota
	// StopExhausted means a step left the queue empty.
	StopExhausted
	// StopLimit means the configured step limit was reached.
	StopLimit
	// StopCancelled means Stop was called or the context ended.
	StopCancelled
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopGoal:
		return "goal"
	case StopExhausted:
		return "exhausted"
	case StopLimit:
		return "limit"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result summarizes one Play or Run.
type Result struct {
	Steps  int
	Reason StopReason
	Last   bfs.StepResult
}

// Option configures an Animator.
type Option func(*Animator)

// WithInterval sets the step period. Panics on d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("driver: WithInterval(d<=0)")
	}
	return func(a *Animator) { a.interval = d }
}

// WithMaxSteps caps the number of steps per run; 0 means unbounded.
// Panics on n < 0.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("driver: WithMaxSteps(n<0)")
	}
	return func(a *Animator) { a.maxSteps = n }
}

// WithOnStep registers a callback run after every step, on the driver goroutine.
func WithOnStep(fn func(bfs.StepResult)) Option {
	return func(a *Animator) {
		if fn != nil {
			a.onStep = fn
		}
	}
}

// WithLogger sets the run logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.log = l
		}
	}
}

// Animator steps a Stepper on a fixed interval.
type Animator struct {
	stepper  Stepper
	interval time.Duration
	maxSteps int
	onStep   func(bfs.StepResult)
	log      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	last   Result
	err    error
}

// New returns an idle Animator over s.
func New(s Stepper, opts ...Option) *Animator {
	a := &Animator{
		stepper:  s,
		interval: DefaultInterval,
		onStep:   func(bfs.StepResult) {},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Interval returns the step period.
func (a *Animator) Interval() time.Duration { return a.interval }

// Play starts stepping in a new goroutine and returns immediately.
// It returns ErrAlreadyRunning while a previous Play is still active.
func (a *Animator) Play(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runningLocked() {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel, a.done = cancel, done

	go func() {
		defer close(done)
		defer cancel()
		res, err := a.loop(ctx)
		a.mu.Lock()
		a.last, a.err = res, err
		a.mu.Unlock()
	}()

	return nil
}

// Stop cancels a running Play and waits for its goroutine to exit.
// A step already in progress completes; no further steps are taken.
func (a *Animator) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a Play is active.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runningLocked()
}

func (a *Animator) runningLocked() bool {
	if a.done == nil {
		return false
	}
	select {
	case <-a.done:
		return false
	default:
		return true
	}
}

// Wait blocks until the current Play ends and returns its result.
// The error is the context's error for cancelled runs, nil otherwise.
func (a *Animator) Wait() (Result, error) {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done != nil {
		<-done
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last, a.err
}

// Run is Play followed by Wait.
func (a *Animator) Run(ctx context.Context) (Result, error) {
	if err := a.Play(ctx); err != nil {
		return Result{}, err
	}
	return a.Wait()
}

// loop is the ticker body shared by Play and Run.
func (a *Animator) loop(ctx context.Context) (Result, error) {
	var res Result
	if a.stepper.Reached() {
		res.Reason = StopGoal
		return res, nil
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			res.Reason = StopCancelled
			a.log.Debug("run cancelled", zap.Int("steps", res.Steps))
			return res, ctx.Err()
		case <-ticker.C:
		}

		r := a.stepper.Step()
		res.Steps++
		res.Last = r
		a.onStep(r)

		switch {
		case r.Outcome == bfs.OutcomeGoal:
			res.Reason = StopGoal
		case a.stepper.Exhausted():
			res.Reason = StopExhausted
		case a.maxSteps > 0 && res.Steps >= a.maxSteps:
			res.Reason = StopLimit
		default:
			continue
		}
		a.log.Info("run finished",
			zap.Stringer("reason", res.Reason),
			zap.Int("steps", res.Steps),
		)
		return res, nil
	}
}
