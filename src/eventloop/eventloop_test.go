package eventloop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"oneday-overlay/src/messages"
	"oneday-overlay/src/notification"
	"oneday-overlay/src/overlay"
	"oneday-overlay/src/progress"
	"oneday-overlay/src/screen"
)

type fakeView struct {
	visible  []bool
	progress [][3]int
}

func (f *fakeView) SetVisible(v bool)             { f.visible = append(f.visible, v) }
func (f *fakeView) SetProgress(value, lo, hi int) { f.progress = append(f.progress, [3]int{value, lo, hi}) }
func (f *fakeView) Close()                        {}

type fakeTicker struct {
	ch       chan time.Time
	interval time.Duration
	stopped  atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

type harness struct {
	loop     *Loop
	view     *fakeView
	ticker   *fakeTicker
	recorder *notification.Recorder
	copied   []string
	done     chan error
}

func newHarness(t *testing.T, lo, hi int) *harness {
	t.Helper()
	h := &harness{
		view:     &fakeView{},
		ticker:   &fakeTicker{ch: make(chan time.Time)},
		recorder: &notification.Recorder{},
		done:     make(chan error, 1),
	}
	ind, err := progress.New(lo, hi, progress.WithCompletion(func() {
		h.recorder.Notify(notification.Notification{
			Title:    "Finished",
			Body:     "Countdown finished!",
			Duration: 3000 * time.Millisecond,
			Severity: notification.Info,
		})
	}))
	if err != nil {
		t.Fatal(err)
	}
	win := overlay.New(screen.Placement{X: 384, Y: 5, Width: 1152, Height: 65}, h.view)
	h.loop, err = New(Options{
		Window:    win,
		Indicator: ind,
		Label:     "One Day",
		NewTicker: func(d time.Duration) Ticker {
			h.ticker.interval = d
			return h.ticker
		},
		CopyText: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func (h *harness) start() {
	go func() { h.done <- h.loop.Run(context.Background()) }()
}

func (h *harness) tick(n int) {
	for i := 0; i < n; i++ {
		h.ticker.ch <- time.Time{}
	}
}

func (h *harness) quit(t *testing.T) {
	t.Helper()
	if !h.loop.Post(messages.Quit{}) {
		t.Fatal("Post(Quit) dropped")
	}
	select {
	case err := <-h.done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestCountdownCompletesOnce(t *testing.T) {
	h := newHarness(t, 0, 500)
	h.start()
	h.tick(500)
	h.quit(t)

	if h.ticker.interval != time.Second {
		t.Errorf("ticker interval = %v, want 1s", h.ticker.interval)
	}
	if !h.ticker.stopped.Load() {
		t.Error("ticker not stopped after completion")
	}
	if got := h.loop.opts.Indicator.State(); got != progress.Completed {
		t.Errorf("state = %v, want completed", got)
	}

	sent := h.recorder.Sent()
	if len(sent) != 1 {
		t.Fatalf("got %d notifications, want 1", len(sent))
	}
	if sent[0].Title != "Finished" || sent[0].Body != "Countdown finished!" || sent[0].Duration != 3000*time.Millisecond {
		t.Errorf("notification = %+v", sent[0])
	}

	// initial mirror plus one per tick
	if len(h.view.progress) != 501 {
		t.Fatalf("view saw %d progress updates, want 501", len(h.view.progress))
	}
	if first := h.view.progress[0]; first != [3]int{0, 0, 500} {
		t.Errorf("first update = %v", first)
	}
	if last := h.view.progress[500]; last != [3]int{500, 0, 500} {
		t.Errorf("last update = %v", last)
	}
}

func TestTicksAdvanceByOne(t *testing.T) {
	h := newHarness(t, 0, 500)
	h.start()
	h.tick(3)
	h.quit(t)

	if got := h.loop.opts.Indicator.Value(); got != 3 {
		t.Errorf("value = %d, want 3", got)
	}
	if h.ticker.stopped.Load() != true {
		t.Error("ticker should be stopped once Run returns")
	}
	if len(h.recorder.Sent()) != 0 {
		t.Error("notification fired before completion")
	}
}

func TestAlreadyCompleteStartsNoTicker(t *testing.T) {
	h := newHarness(t, 5, 5)
	var created bool
	h.loop.opts.NewTicker = func(time.Duration) Ticker {
		created = true
		return h.ticker
	}
	h.start()
	h.quit(t)

	if created {
		t.Error("ticker created for an empty range")
	}
}

func TestVisibilityMessages(t *testing.T) {
	h := newHarness(t, 0, 500)
	h.start()
	h.loop.Post(messages.ToggleVisibility{})
	h.loop.Post(messages.ToggleVisibility{})
	h.loop.Post(messages.SetVisibility{Visible: false})
	h.quit(t)

	want := []bool{true, false, true, false}
	if len(h.view.visible) != len(want) {
		t.Fatalf("visibility calls = %v, want %v", h.view.visible, want)
	}
	for i := range want {
		if h.view.visible[i] != want[i] {
			t.Errorf("visibility calls = %v, want %v", h.view.visible, want)
			break
		}
	}
	if h.loop.opts.Window.Visible() {
		t.Error("window should end hidden")
	}
}

func TestHiddenWindowKeepsCounting(t *testing.T) {
	h := newHarness(t, 0, 500)
	h.start()
	h.loop.Post(messages.SetVisibility{Visible: false})
	h.tick(10)
	h.quit(t)

	if got := h.loop.opts.Indicator.Value(); got != 10 {
		t.Errorf("value = %d, want 10", got)
	}
}

func TestCopyStatus(t *testing.T) {
	h := newHarness(t, 0, 500)
	h.start()
	h.tick(42)
	h.loop.Post(messages.CopyStatus{})
	h.quit(t)

	if len(h.copied) != 1 || h.copied[0] != "One Day: 42/500" {
		t.Errorf("copied = %q", h.copied)
	}
	if got := h.loop.Status(); got != "One Day: 42/500" {
		t.Errorf("Status() = %q", got)
	}
}

func TestCopyFailureIsNotFatal(t *testing.T) {
	h := newHarness(t, 0, 500)
	h.loop.opts.CopyText = func(string) error { return errors.New("no clipboard") }
	h.start()
	h.loop.Post(messages.CopyStatus{})
	h.tick(1)
	h.quit(t)
}

func TestContextCancelStopsLoop(t *testing.T) {
	h := newHarness(t, 0, 500)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { h.done <- h.loop.Run(ctx) }()
	cancel()

	select {
	case err := <-h.done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}

func TestPostDropsWhenFull(t *testing.T) {
	h := newHarness(t, 0, 500)
	for i := 0; i < cap(h.loop.inbox); i++ {
		if !h.loop.Post(messages.CopyStatus{}) {
			t.Fatalf("Post %d dropped early", i)
		}
	}
	if h.loop.Post(messages.CopyStatus{}) {
		t.Error("Post on a full inbox should report false")
	}
}

func TestNewRequiresWindowAndIndicator(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoWindow) {
		t.Errorf("New without window = %v", err)
	}
	win := overlay.New(screen.Placement{}, &fakeView{})
	if _, err := New(Options{Window: win}); !errors.Is(err, ErrNoIndicator) {
		t.Errorf("New without indicator = %v", err)
	}
}
