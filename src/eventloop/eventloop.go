package eventloop

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"oneday-overlay/src/messages"
	"oneday-overlay/src/overlay"
	"oneday-overlay/src/progress"
)

// Ticker is the subset of *time.Ticker the loop needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }

type Options struct {
	Window    *overlay.Window
	Indicator *progress.Indicator
	Interval  time.Duration
	Label     string

	// NewTicker defaults to NewTimeTicker.
	NewTicker func(time.Duration) Ticker
	// CopyText receives the status line for CopyStatus requests.
	CopyText func(string) error
}

// Loop is the single-threaded coordinator. It alone touches the indicator and
// the window model; everything else reaches it through Post.
type Loop struct {
	opts  Options
	inbox chan messages.Message
}

var (
	ErrNoWindow    = errors.New("eventloop: window is required")
	ErrNoIndicator = errors.New("eventloop: indicator is required")
)

// New validates opts and fills in defaults.
// If opts.Interval <= 0, one second is used.
func New(opts Options) (*Loop, error) {
	if opts.Window == nil {
		return nil, ErrNoWindow
	}
	if opts.Indicator == nil {
		return nil, ErrNoIndicator
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewTimeTicker
	}
	return &Loop{
		opts:  opts,
		inbox: make(chan messages.Message, 16),
	}, nil
}

// Post queues msg without blocking. It reports false when the inbox is full
// and the message was dropped.
func (l *Loop) Post(msg messages.Message) bool {
	select {
	case l.inbox <- msg:
		return true
	default:
		log.Printf("eventloop: inbox full, dropping %s", msg.Type())
		return false
	}
}

// Run ticks the indicator until it completes and serves posted messages. It
// blocks until a Quit message arrives (returning nil) or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ind := l.opts.Indicator
	l.mirror()

	var ticks <-chan time.Time
	var ticker Ticker
	if ind.State() == progress.Running {
		ticker = l.opts.NewTicker(l.opts.Interval)
		ticks = ticker.C()
	}
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
		ticks = nil
	}
	defer stopTicker()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			if ind.Tick() == progress.Completed {
				log.Printf("eventloop: countdown finished at %d", ind.Value())
				stopTicker()
			}
			l.mirror()
		case msg := <-l.inbox:
			if l.handle(msg) {
				log.Printf("eventloop: quit requested")
				return nil
			}
		}
	}
}

// handle applies msg and reports whether the loop should stop.
func (l *Loop) handle(msg messages.Message) bool {
	switch m := msg.(type) {
	case messages.ToggleVisibility:
		visible := l.opts.Window.ToggleVisible()
		log.Printf("eventloop: window visible=%v", visible)
	case messages.SetVisibility:
		l.opts.Window.SetVisible(m.Visible)
	case messages.CopyStatus:
		l.copyStatus()
	case messages.Quit:
		return true
	default:
		log.Printf("eventloop: ignoring unknown message %s", msg.Type())
	}
	return false
}

func (l *Loop) copyStatus() {
	if l.opts.CopyText == nil {
		return
	}
	status := l.Status()
	if err := l.opts.CopyText(status); err != nil {
		log.Printf("eventloop: copy status failed: %v", err)
		return
	}
	log.Printf("eventloop: copied %q", status)
}

func (l *Loop) mirror() {
	ind := l.opts.Indicator
	lo, hi := ind.Bounds()
	l.opts.Window.SetProgress(ind.Value(), lo, hi)
}

// Status formats the current progress as "<label>: <value>/<max>". It reads
// loop-owned state, so call it from the loop or after Run has returned.
func (l *Loop) Status() string {
	_, hi := l.opts.Indicator.Bounds()
	return fmt.Sprintf("%s: %d/%d", l.opts.Label, l.opts.Indicator.Value(), hi)
}
