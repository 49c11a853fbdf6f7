//go:build !linux && !windows

package overlay

// The panel keeps its own alpha where no window opacity can be set.
const nativeOpacity = false

func ApplyHints(Hints) error {
	return ErrHintsUnsupported
}
