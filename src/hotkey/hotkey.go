package hotkey

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	gohook "github.com/robotn/gohook"
)

// ErrUnsupported is returned by Listen on platforms without a rawcode table.
var ErrUnsupported = errors.New("global hotkey not supported on this platform")

// Listen starts a global keyboard hook and calls callback from the hook's
// goroutine each time every key of combo is held. The returned function stops
// the hook.
func Listen(combo string, callback func()) (stop func(), err error) {
	if len(rawcodes) == 0 {
		return nil, ErrUnsupported
	}
	c, err := parseCombo(combo)
	if err != nil {
		return nil, err
	}
	log.Printf("Hotkey listener configured for: %s", combo)

	evChan := gohook.Start()
	if evChan == nil {
		return nil, fmt.Errorf("keyboard hook unavailable")
	}

	var once sync.Once
	stop = func() { once.Do(gohook.End) }

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		for ev := range evChan {
			switch ev.Kind {
			case gohook.KeyDown:
				if c.press(ev.Rawcode) && callback != nil {
					log.Printf("Hotkey activated: %s", combo)
					callback()
				}
			case gohook.KeyUp:
				c.release(ev.Rawcode)
			}
		}
		log.Printf("Hotkey event channel closed")
	}()

	return stop, nil
}

// combo tracks which keys of a hotkey are currently held.
type combo struct {
	mu   sync.Mutex
	keys []keyState
}

type keyState struct {
	name     string
	rawcodes []uint16
	pressed  bool
}

func parseCombo(s string) (*combo, error) {
	c := &combo{}
	for _, name := range parseHotkey(s) {
		rawcodes := keyNameToRawcodes(name)
		if len(rawcodes) == 0 {
			return nil, fmt.Errorf("hotkey %q: unknown key %q", s, name)
		}
		c.keys = append(c.keys, keyState{name: name, rawcodes: rawcodes})
	}
	if len(c.keys) == 0 {
		return nil, fmt.Errorf("hotkey %q: no keys", s)
	}
	return c, nil
}

// press marks rawcode held and reports whether the whole combination is now
// down. A completed combination resets so holding it fires once.
func (c *combo) press(rawcode uint16) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.keys {
		if c.keys[i].matches(rawcode) {
			c.keys[i].pressed = true
		}
	}
	for i := range c.keys {
		if !c.keys[i].pressed {
			return false
		}
	}
	for i := range c.keys {
		c.keys[i].pressed = false
	}
	return true
}

func (c *combo) release(rawcode uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.keys {
		if c.keys[i].matches(rawcode) {
			c.keys[i].pressed = false
		}
	}
}

func (k keyState) matches(rawcode uint16) bool {
	for _, rc := range k.rawcodes {
		if rc == rawcode {
			return true
		}
	}
	return false
}

// parseHotkey converts a hotkey string like "Ctrl+Alt+o" to normalized key names
func parseHotkey(hotkeyConfig string) []string {
	var keys []string
	for _, part := range strings.Split(strings.ToLower(hotkeyConfig), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "control":
			keys = append(keys, "ctrl")
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}
	return keys
}

// keyNameToRawcodes maps a key name to the rawcodes gohook reports for it on
// this platform.
func keyNameToRawcodes(keyName string) []uint16 {
	keyName = strings.ToLower(strings.TrimSpace(keyName))
	if keyName == "win" || keyName == "super" {
		keyName = "cmd"
	}
	codes, ok := rawcodes[keyName]
	if !ok {
		log.Printf("WARNING: Unknown key name '%s', cannot map to rawcode", keyName)
		return nil
	}
	return codes
}
