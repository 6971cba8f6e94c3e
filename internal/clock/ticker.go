// Package clock delivers periodic wall-clock ticks on a cron schedule.
package clock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSpec refreshes once a minute.
const DefaultSpec = "@every 1m"

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("ticker already started")

// Ticker calls a function on a cron schedule until stopped.
type Ticker struct {
	spec string
	now  func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	stopped bool
}

// Validate reports whether spec is a schedule Ticker accepts.
func Validate(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid clock spec %q: %w", spec, err)
	}
	return nil
}

// NewTicker creates a stopped ticker. An empty spec uses DefaultSpec.
func NewTicker(spec string) (*Ticker, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	if err := Validate(spec); err != nil {
		return nil, err
	}
	return &Ticker{spec: spec, now: time.Now}, nil
}

// Spec returns the schedule.
func (t *Ticker) Spec() string {
	return t.spec
}

// Start schedules fn. fn runs on the cron goroutine and receives the tick time.
func (t *Ticker) Start(fn func(time.Time)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cron != nil || t.stopped {
		return ErrAlreadyStarted
	}

	c := cron.New(cron.WithLocation(time.Local))
	if _, err := c.AddFunc(t.spec, func() { fn(t.now()) }); err != nil {
		return fmt.Errorf("schedule tick: %w", err)
	}
	c.Start()
	t.cron = c
	return nil
}

// Stop halts the schedule and waits for a running tick to finish.
// It is safe to call more than once and on a ticker that never started.
func (t *Ticker) Stop() {
	t.mu.Lock()
	c := t.cron
	t.cron = nil
	t.stopped = true
	t.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
}
