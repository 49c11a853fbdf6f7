package notification

import (
	"fmt"
	"log"
	"sync"
	"time"
)

type Severity int

const (
	Info Severity = iota
	Warning
	Critical
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Notification is a one-shot user-visible banner.
type Notification struct {
	Title    string
	Body     string
	Duration time.Duration
	Severity Severity
}

// Notifier delivers notifications. Implementations must not block the caller.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) Notify(n Notification) {
	log.Printf("Notification [%s] %s: %s (%v)", n.Severity, n.Title, n.Body, n.Duration)
}

// Multi fans a notification out to every sink in order.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(n)
		}
	}
}

// Recorder keeps every notification it receives. Safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}
