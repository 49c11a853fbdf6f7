package hotkey

import "fmt"

// Windows virtual-key codes; modifiers list both left and right variants.
var rawcodes = map[string][]uint16{
	"ctrl":  {162, 163}, // VK_LCONTROL, VK_RCONTROL
	"alt":   {164, 165}, // VK_LMENU, VK_RMENU
	"shift": {160, 161}, // VK_LSHIFT, VK_RSHIFT
	"cmd":   {91, 92},   // VK_LWIN, VK_RWIN

	"space":     {32},
	"enter":     {13},
	"return":    {13},
	"esc":       {27},
	"escape":    {27},
	"tab":       {9},
	"backspace": {8},
	"delete":    {46},
	"del":       {46},
	"insert":    {45},
	"ins":       {45},
	"home":      {36},
	"end":       {35},
	"pageup":    {33},
	"pgup":      {33},
	"pagedown":  {34},
	"pgdn":      {34},
	"left":      {37},
	"up":        {38},
	"right":     {39},
	"down":      {40},
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		rawcodes[string(c)] = []uint16{uint16(c - 'a' + 65)}
	}
	for d := '0'; d <= '9'; d++ {
		rawcodes[string(d)] = []uint16{uint16(d - '0' + 48)}
	}
	for n := 1; n <= 24; n++ {
		rawcodes[fmt.Sprintf("f%d", n)] = []uint16{uint16(111 + n)} // VK_F1 = 112
	}
}
