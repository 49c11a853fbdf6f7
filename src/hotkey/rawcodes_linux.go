package hotkey

import "fmt"

// X11 keysyms, which is what the X hook reports as the rawcode. Alt also
// lists Meta because some layouts map the left Alt key to Meta_L.
var rawcodes = map[string][]uint16{
	"ctrl":  {0xffe3, 0xffe4},                 // Control_L, Control_R
	"alt":   {0xffe9, 0xffea, 0xffe7, 0xffe8}, // Alt_L, Alt_R, Meta_L, Meta_R
	"shift": {0xffe1, 0xffe2},                 // Shift_L, Shift_R
	"cmd":   {0xffeb, 0xffec},                 // Super_L, Super_R

	"space":     {0x0020},
	"enter":     {0xff0d},
	"return":    {0xff0d},
	"esc":       {0xff1b},
	"escape":    {0xff1b},
	"tab":       {0xff09},
	"backspace": {0xff08},
	"delete":    {0xffff},
	"del":       {0xffff},
	"insert":    {0xff63},
	"ins":       {0xff63},
	"home":      {0xff50},
	"end":       {0xff57},
	"pageup":    {0xff55},
	"pgup":      {0xff55},
	"pagedown":  {0xff56},
	"pgdn":      {0xff56},
	"left":      {0xff51},
	"up":        {0xff52},
	"right":     {0xff53},
	"down":      {0xff54},
}

func init() {
	// With Shift held the keysym is the upper case letter.
	for c := 'a'; c <= 'z'; c++ {
		rawcodes[string(c)] = []uint16{uint16(c), uint16(c - 'a' + 'A')}
	}
	for d := '0'; d <= '9'; d++ {
		rawcodes[string(d)] = []uint16{uint16(d)}
	}
	for n := 1; n <= 24; n++ {
		rawcodes[fmt.Sprintf("f%d", n)] = []uint16{uint16(0xffbd + n)} // XK_F1 = 0xffbe
	}
}
