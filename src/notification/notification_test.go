package notification

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestMultiFansOut(t *testing.T) {
	var a, b Recorder
	var seen []string
	m := Multi{&a, nil, NotifierFunc(func(n Notification) { seen = append(seen, n.Title) }), &b}

	m.Notify(Notification{Title: "Finished", Body: "Countdown finished!", Duration: 3 * time.Second})

	if len(a.Sent()) != 1 || len(b.Sent()) != 1 {
		t.Fatalf("recorders got %d and %d", len(a.Sent()), len(b.Sent()))
	}
	if len(seen) != 1 || seen[0] != "Finished" {
		t.Errorf("func sink saw %v", seen)
	}
}

func TestRecorderSentIsACopy(t *testing.T) {
	var r Recorder
	r.Notify(Notification{Title: "a"})
	got := r.Sent()
	got[0].Title = "changed"
	if r.Sent()[0].Title != "a" {
		t.Error("Sent() exposed internal slice")
	}
}

func TestDesktopSendsThroughApp(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	var dispatched int
	d := Desktop{App: a, Dispatch: func(fn func()) { dispatched++; fn() }}
	d.Notify(Notification{Title: "Finished", Body: "Countdown finished!", Duration: 3 * time.Second, Severity: Info})

	if dispatched != 1 {
		t.Errorf("dispatched %d times, want 1", dispatched)
	}
}

type sentApp struct {
	fyne.App
	sent []*fyne.Notification
}

func (a *sentApp) SendNotification(n *fyne.Notification) { a.sent = append(a.sent, n) }

func TestDesktopForwardsTitleAndBodyOnly(t *testing.T) {
	a := &sentApp{App: test.NewApp()}
	defer a.Quit()

	d := Desktop{App: a, Dispatch: func(fn func()) { fn() }}
	d.Notify(Notification{Title: "Finished", Body: "Countdown finished!", Duration: 3 * time.Second, Severity: Info})
	d.Notify(Notification{Title: "Finished", Body: "Countdown finished!", Duration: time.Hour, Severity: Info})

	if len(a.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(a.sent))
	}
	for i, n := range a.sent {
		if n.Title != "Finished" || n.Content != "Countdown finished!" {
			t.Errorf("notification %d = %q/%q", i, n.Title, n.Content)
		}
	}
	if *a.sent[0] != *a.sent[1] {
		t.Error("Duration changed the OS notification, fyne has no field for it")
	}
}

func TestDesktopWithoutAppIsNoop(t *testing.T) {
	Desktop{}.Notify(Notification{Title: "x"})
}

func TestSeverityString(t *testing.T) {
	if Info.String() != "info" || Critical.String() != "critical" || Severity(9).String() != "Severity(9)" {
		t.Error("unexpected severity names")
	}
}
