// Package messages defines the requests other threads post to the event loop.
package messages

// Message is the base interface for everything posted to the event loop.
type Message interface {
	Type() string
}

// MessageType constants for type identification
const (
	TypeToggleVisibility = "ToggleVisibility"
	TypeSetVisibility    = "SetVisibility"
	TypeCopyStatus       = "CopyStatus"
	TypeQuit             = "Quit"
)

// ToggleVisibility - sent by the tray menu or hotkey to flip the window
type ToggleVisibility struct{}

func (m ToggleVisibility) Type() string { return TypeToggleVisibility }

// SetVisibility - forces the window shown or hidden
type SetVisibility struct {
	Visible bool
}

func (m SetVisibility) Type() string { return TypeSetVisibility }

// CopyStatus - asks the loop to put "<label>: <value>/<max>" on the clipboard
type CopyStatus struct{}

func (m CopyStatus) Type() string { return TypeCopyStatus }

// Quit - stops the loop and the application
type Quit struct{}

func (m Quit) Type() string { return TypeQuit }
