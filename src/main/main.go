package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"oneday-overlay/src/config"
	"oneday-overlay/src/logutil"
	"oneday-overlay/src/notification"
	"oneday-overlay/src/runtimeinit"
)

type mainOptions struct {
	label      string
	max        int
	intervalMS int
	iconPath   string
	stylePath  string
	hotkey     string
	logFile    bool
}

func main() {
	// Ensure DPI awareness before creating any windows or querying metrics
	enableDPIAwareness()

	if err := runWithArgs(normalizeLegacyArgs(os.Args)); err != nil {
		notification.ShowBlockingError("One Day", err.Error())
		os.Exit(1)
	}
}

func runWithArgs(args []string) error {
	if len(args) == 0 {
		args = []string{"oneday"}
	}

	opts := &mainOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *mainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "oneday",
		Short:         "Show a translucent always-on-top countdown bar",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*opts)
		},
	}

	cmd.Flags().StringVar(&opts.label, "label", "", "Text shown in the overlay (default \""+config.DefaultLabel+"\")")
	cmd.Flags().IntVar(&opts.max, "max", 0, fmt.Sprintf("Number of ticks until completion (default %d)", config.DefaultMax))
	cmd.Flags().IntVar(&opts.intervalMS, "interval", 0, "Tick interval in milliseconds (default 1000)")
	cmd.Flags().StringVar(&opts.iconPath, "icon", "", "Tray icon path (default \""+config.DefaultIconPath+"\")")
	cmd.Flags().StringVar(&opts.stylePath, "style", "", "Style YAML path (default \""+config.DefaultStylePath+"\")")
	cmd.Flags().StringVar(&opts.hotkey, "hotkey", "", "Global show/hide hotkey, or \"none\" (default \""+config.DefaultHotkey+"\")")
	cmd.Flags().BoolVar(&opts.logFile, "log-file", false, "Write logs to "+logutil.LogFileName+" next to the executable")

	return cmd
}

func run(opts mainOptions) error {
	app, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions: config.LoadOptions{
			Label:          opts.label,
			Max:            opts.max,
			IntervalMS:     opts.intervalMS,
			IconPath:       opts.iconPath,
			StylePath:      opts.stylePath,
			Hotkey:         opts.hotkey,
			EnableFileLogs: opts.logFile,
		},
		SetupLogging: setupLogging,
	})
	if err != nil {
		return err
	}
	logMonitorConfiguration()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("event loop stopped: %w", err)
	}
	log.Printf("Exiting")
	return nil
}

func setupLogging(enableFileLogging bool) {
	logutil.Setup(enableFileLogging, executableDir())
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// normalizeLegacyArgs maps single-dash long flags (-label, -max=3) to the
// double-dash form cobra expects.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			continue
		}
		name := strings.TrimPrefix(arg, "-")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name = name[:eq]
		}
		if legacyFlags[name] {
			normalized[i] = "-" + arg
		}
	}

	return normalized
}

var legacyFlags = map[string]bool{
	"label":    true,
	"max":      true,
	"interval": true,
	"icon":     true,
	"style":    true,
	"hotkey":   true,
	"log-file": true,
}
