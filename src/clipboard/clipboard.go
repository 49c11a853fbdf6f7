package clipboard

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

// ErrUnavailable is returned by Write when Init failed or was never called.
var ErrUnavailable = errors.New("clipboard unavailable")

var (
	writeMu sync.Mutex
	ready   bool
)

// Init prepares the system clipboard. Calling it again after a success is a
// no-op.
func Init() error {
	writeMu.Lock()
	defer writeMu.Unlock()
	if ready {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		return err
	}
	ready = true
	return nil
}

// Write performs a mutex-guarded clipboard write to prevent corruption under parallel writes.
func Write(text string) error {
	writeMu.Lock()
	defer writeMu.Unlock()
	if !ready {
		return ErrUnavailable
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
