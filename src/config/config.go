package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultLabel       = "One Day"
	DefaultMax         = 500
	DefaultIconPath    = "res/app icon.png"
	DefaultStylePath   = "res/style.yaml"
	DefaultHotkey      = "Ctrl+Alt+O"
	DefaultDoneTitle   = "Finished"
	DefaultDoneBody    = "Countdown finished!"
	DefaultDoneTimeout = 3000 * time.Millisecond

	EnvPathEnvVar   = "ONEDAY_ENV"
	StyleFileEnvVar = "ONEDAY_STYLE_FILE"

	// HotkeyDisabled turns the global toggle hotkey off.
	HotkeyDisabled = "none"
)

// LoadOptions carries command-line overrides. Zero values mean "not set".
type LoadOptions struct {
	Label          string
	Max            int
	IntervalMS     int
	IconPath       string
	StylePath      string
	Hotkey         string
	EnableFileLogs bool
}

type Config struct {
	Label             string
	Min               int
	Max               int
	IconPath          string
	StylePath         string
	Hotkey            string
	EnableFileLogging bool
	DoneTitle         string
	DoneBody          string
	DoneTimeout       time.Duration
	Style             Style
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Sources in priority order:
	// 1) .env next to the executable
	// 2) file named by ONEDAY_ENV
	envPath := resolveEnvPath()
	dotenvValues := readDotenvValues(envPath)
	processStyle := os.Getenv(StyleFileEnvVar)
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	stylePath := firstNonEmpty(opts.StylePath, processStyle)
	if stylePath == "" {
		if v := strings.TrimSpace(dotenvValues[StyleFileEnvVar]); v != "" {
			stylePath = relativeTo(envPath, v)
		}
	}
	if stylePath == "" {
		stylePath = DefaultStylePath
	}
	style, err := LoadStyle(stylePath)
	if err != nil {
		return nil, fmt.Errorf("load style %s: %w", stylePath, err)
	}

	if ms := positiveInt(os.Getenv("ONEDAY_INTERVAL_MS")); ms > 0 {
		style.TickInterval = time.Duration(ms) * time.Millisecond
	}
	if opts.IntervalMS > 0 {
		style.TickInterval = time.Duration(opts.IntervalMS) * time.Millisecond
	}

	maxValue := DefaultMax
	if n := positiveInt(os.Getenv("ONEDAY_MAX")); n > 0 {
		maxValue = n
	}
	if opts.Max > 0 {
		maxValue = opts.Max
	}

	cfg := &Config{
		Label:             firstNonEmpty(opts.Label, os.Getenv("ONEDAY_LABEL"), DefaultLabel),
		Min:               0,
		Max:               maxValue,
		IconPath:          firstNonEmpty(opts.IconPath, os.Getenv("ONEDAY_ICON"), DefaultIconPath),
		StylePath:         stylePath,
		Hotkey:            resolveHotkey(firstNonEmpty(opts.Hotkey, os.Getenv("HOTKEY"), DefaultHotkey)),
		EnableFileLogging: opts.EnableFileLogs || strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		DoneTitle:         getEnvWithDefault("ONEDAY_DONE_TITLE", DefaultDoneTitle),
		DoneBody:          getEnvWithDefault("ONEDAY_DONE_BODY", DefaultDoneBody),
		DoneTimeout:       DefaultDoneTimeout,
		Style:             style,
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func readDotenvValues(envPath string) map[string]string {
	if envPath == "" {
		return map[string]string{}
	}

	values, err := godotenv.Read(envPath)
	if err != nil {
		return map[string]string{}
	}

	return values
}

// relativeTo resolves a path read from the .env file against that file's
// directory.
func relativeTo(envPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(envPath), path)
}

// resolveHotkey maps the disabling spellings to "".
func resolveHotkey(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case HotkeyDisabled, "off", "disabled":
		return ""
	default:
		return strings.TrimSpace(value)
	}
}

func positiveInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
