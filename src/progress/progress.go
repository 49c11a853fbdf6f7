// Package progress implements the bounded once-a-tick counter behind the
// overlay's progress bar.
package progress

import (
	"errors"
	"fmt"
)

// State is the indicator's lifecycle position. It only moves forward.
type State int

const (
	Running State = iota
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var ErrInvalidBounds = errors.New("progress: min must not exceed max")

// Indicator is not safe for concurrent use; the event loop owns it.
type Indicator struct {
	value, min, max int
	onComplete      func()
	fired           bool
}

type Option func(*Indicator)

// WithCompletion registers fn to run the first time Tick reports Completed.
func WithCompletion(fn func()) Option {
	return func(i *Indicator) { i.onComplete = fn }
}

func New(min, max int, opts ...Option) (*Indicator, error) {
	if min > max {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, min, max)
	}
	i := &Indicator{value: min, min: min, max: max}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

func (i *Indicator) Value() int { return i.value }

func (i *Indicator) Bounds() (min, max int) { return i.min, i.max }

func (i *Indicator) State() State {
	if i.value >= i.max {
		return Completed
	}
	return Running
}

// Fraction reports progress in [0, 1]. An empty range counts as complete.
func (i *Indicator) Fraction() float64 {
	if i.max == i.min {
		return 1
	}
	return float64(i.value-i.min) / float64(i.max-i.min)
}

// Tick advances the counter by one while below max. The tick that reaches
// max, and every tick after it, reports Completed. The completion hook runs
// exactly once, on the tick that reaches max rather than one interval later.
func (i *Indicator) Tick() State {
	if i.value < i.max {
		i.value++
	}
	state := i.State()
	if state == Completed && !i.fired {
		i.fired = true
		if i.onComplete != nil {
			i.onComplete()
		}
	}
	return state
}
