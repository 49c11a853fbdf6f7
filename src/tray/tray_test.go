package tray

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestMenuItemsAndActions(t *testing.T) {
	var toggled, copied, quit int
	m := Menu(Config{
		Title:    "One Day",
		OnToggle: func() { toggled++ },
		OnCopy:   func() { copied++ },
		OnQuit:   func() { quit++ },
	})

	if m.Label != "One Day" {
		t.Errorf("menu label = %q", m.Label)
	}
	if len(m.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(m.Items))
	}

	labels := []string{LabelToggle, LabelCopy, "", LabelQuit}
	for i, want := range labels {
		if m.Items[i].Label != want {
			t.Errorf("item %d label = %q, want %q", i, m.Items[i].Label, want)
		}
	}
	if !m.Items[2].IsSeparator {
		t.Error("item 2 should be a separator")
	}
	if !m.Items[3].IsQuit {
		t.Error("quit item not flagged IsQuit")
	}

	m.Items[0].Action()
	m.Items[0].Action()
	m.Items[1].Action()
	m.Items[3].Action()
	if toggled != 2 || copied != 1 || quit != 1 {
		t.Errorf("toggled=%d copied=%d quit=%d", toggled, copied, quit)
	}
}

func TestMenuToleratesMissingActions(t *testing.T) {
	m := Menu(Config{Title: "x"})
	for _, item := range m.Items {
		if item.Action != nil {
			item.Action()
		}
	}
}

func TestLoadIconFallsBack(t *testing.T) {
	if LoadIcon("") != DefaultIcon {
		t.Error("empty path should use the embedded icon")
	}
	if LoadIcon(filepath.Join(t.TempDir(), "app icon.png")) != DefaultIcon {
		t.Error("missing file should use the embedded icon")
	}
	if len(DefaultIcon.Content()) == 0 {
		t.Error("embedded icon is empty")
	}
}

func TestLoadIconReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app icon.png")
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	res := LoadIcon(path)
	if res.Name() != "app icon.png" || string(res.Content()) != "\x89PNG fake" {
		t.Errorf("resource = %q %q", res.Name(), res.Content())
	}
}

func TestInstallOnTestApp(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	// Whether or not the driver has a tray, Install must not panic.
	_ = Install(a, Config{Title: "One Day"})
}
