// Package runtimeinit builds the Application: the one object that carries
// configuration, the UI toolkit handle and the placement through startup.
package runtimeinit

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"oneday-overlay/src/clipboard"
	"oneday-overlay/src/config"
	"oneday-overlay/src/eventloop"
	"oneday-overlay/src/hotkey"
	"oneday-overlay/src/messages"
	"oneday-overlay/src/notification"
	"oneday-overlay/src/overlay"
	"oneday-overlay/src/progress"
	"oneday-overlay/src/screen"
	"oneday-overlay/src/tray"
)

const (
	AppID     = "io.oneday.overlay"
	WindowTag = "OneDayOverlay"
)

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)

	// Display returns the usable area of the primary screen. Defaults to
	// screen.PrimaryAvailable.
	Display func() (image.Rectangle, error)
	// NewUI defaults to a fyne app with AppID.
	NewUI func() fyne.App
	// Dispatch runs fn on the UI thread. Defaults to fyne.Do.
	Dispatch func(fn func())
	// Hints defaults to overlay.ApplyHints.
	Hints overlay.Hinter
	// Hotkey defaults to hotkey.Listen.
	Hotkey func(combo string, callback func()) (stop func(), err error)
	// NewTicker defaults to eventloop.NewTimeTicker.
	NewTicker func(time.Duration) eventloop.Ticker
}

// Application is the explicit runtime context: everything the process needs
// after startup, with no package-level state behind it.
type Application struct {
	Config    *config.Config
	UI        fyne.App
	Placement screen.Placement
	Notifier  notification.Notifier

	opts Options
	loop *eventloop.Loop
}

// Bootstrap loads configuration, sets up logging, measures the display and
// creates the UI app. Nothing is shown yet.
func Bootstrap(opts Options) (*Application, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}
	log.Printf("Config: label=%q range=%d..%d interval=%v hotkey=%q style=%s",
		cfg.Label, cfg.Min, cfg.Max, cfg.Style.TickInterval, cfg.Hotkey, cfg.StylePath)

	display := opts.Display
	if display == nil {
		display = screen.PrimaryAvailable
	}
	area, err := display()
	if err != nil {
		return nil, fmt.Errorf("failed to query display: %w", err)
	}
	placement, err := screen.Place(area, cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to place window: %w", err)
	}
	log.Printf("Display %v, overlay at %+v", area, placement)

	newUI := opts.NewUI
	if newUI == nil {
		newUI = func() fyne.App { return app.NewWithID(AppID) }
	}
	ui := newUI()

	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}

	return &Application{
		Config:    cfg,
		UI:        ui,
		Placement: placement,
		Notifier: notification.Multi{
			notification.Log{},
			notification.Desktop{App: ui, Dispatch: opts.Dispatch},
		},
		opts: opts,
	}, nil
}

// Run shows the overlay and blocks in the UI event loop. It must be called
// from the main goroutine. It returns once the user quits or ctx is
// cancelled.
func (a *Application) Run(ctx context.Context) error {
	cfg := a.Config

	indicator, err := a.newIndicator()
	if err != nil {
		return err
	}

	view := overlay.NewFyneView(a.UI, overlay.ViewOptions{
		Title:     WindowTag,
		Label:     cfg.Label,
		Style:     cfg.Style,
		Placement: a.Placement,
		Dispatch:  a.opts.Dispatch,
		Hints:     a.opts.Hints,
	})
	window := overlay.New(a.Placement, view)
	defer window.Close()

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable, copy disabled: %v", err)
	}

	loopOpts := eventloop.Options{
		Window:    window,
		Indicator: indicator,
		Interval:  cfg.Style.TickInterval,
		Label:     cfg.Label,
		NewTicker: a.opts.NewTicker,
		CopyText:  clipboard.Write,
	}
	a.loop, err = eventloop.New(loopOpts)
	if err != nil {
		return err
	}

	tray.Install(a.UI, tray.Config{
		Title:    cfg.Label,
		Icon:     tray.LoadIcon(cfg.IconPath),
		OnToggle: func() { a.Post(messages.ToggleVisibility{}) },
		OnCopy:   func() { a.Post(messages.CopyStatus{}) },
		OnQuit:   func() { a.Post(messages.Quit{}) },
	})

	if stop := a.startHotkey(); stop != nil {
		defer stop()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		loopErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				loopErr = fmt.Errorf("event loop panic: %v", r)
			}
			a.opts.Dispatch(a.UI.Quit)
		}()
		loopErr = a.loop.Run(loopCtx)
	}()

	a.UI.Run()

	cancel()
	wg.Wait()

	if errors.Is(loopErr, context.Canceled) {
		return nil
	}
	return loopErr
}

// newIndicator builds the countdown with its one-shot completion notice.
func (a *Application) newIndicator() (*progress.Indicator, error) {
	cfg := a.Config
	return progress.New(cfg.Min, cfg.Max, progress.WithCompletion(func() {
		a.Notifier.Notify(notification.Notification{
			Title:    cfg.DoneTitle,
			Body:     cfg.DoneBody,
			Duration: cfg.DoneTimeout,
			Severity: notification.Info,
		})
	}))
}

// Post forwards msg to the event loop. It reports false before Run or when
// the loop's inbox is full.
func (a *Application) Post(msg messages.Message) bool {
	if a.loop == nil {
		return false
	}
	return a.loop.Post(msg)
}

func (a *Application) startHotkey() func() {
	combo := a.Config.Hotkey
	if combo == "" {
		log.Printf("Hotkey disabled")
		return nil
	}
	listen := a.opts.Hotkey
	if listen == nil {
		listen = hotkey.Listen
	}
	stop, err := listen(combo, func() { a.Post(messages.ToggleVisibility{}) })
	if err != nil {
		log.Printf("Hotkey %q unavailable: %v", combo, err)
		return nil
	}
	return stop
}
