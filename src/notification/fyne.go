package notification

import (
	"log"

	"fyne.io/fyne/v2"
)

// Desktop sends notifications through the fyne app's OS notification
// service. fyne.Notification carries only a title and content, with no
// timeout or urgency, so Duration and Severity are logged and the OS decides
// how long the banner stays and how it is styled.
type Desktop struct {
	App      fyne.App
	Dispatch func(func())
}

func (d Desktop) Notify(n Notification) {
	if d.App == nil {
		return
	}
	dispatch := d.Dispatch
	if dispatch == nil {
		dispatch = fyne.Do
	}
	log.Printf("Desktop notification %q (%s, %v)", n.Title, n.Severity, n.Duration)
	dispatch(func() {
		d.App.SendNotification(fyne.NewNotification(n.Title, n.Body))
	})
}
