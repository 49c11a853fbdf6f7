//go:build !windows && !linux

package hotkey

// No table: gohook reports native keycodes here and Listen returns
// ErrUnsupported.
var rawcodes = map[string][]uint16{}
