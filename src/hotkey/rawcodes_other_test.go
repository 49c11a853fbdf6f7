//go:build !windows && !linux

package hotkey

import (
	"errors"
	"testing"
)

func TestListenUnsupported(t *testing.T) {
	stop, err := Listen("Ctrl+Alt+O", func() {})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Listen error = %v, want ErrUnsupported", err)
	}
	if stop != nil {
		t.Error("stop should be nil when unsupported")
	}
}
