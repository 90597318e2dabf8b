package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"paymaker/internal/config"
	"paymaker/internal/counter"
	"paymaker/internal/logging"
	"paymaker/internal/trace"
	"paymaker/internal/ui"
)

// applyFlags overrides environment settings with any flags given on the
// command line.
func applyFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("paymaker", flag.ContinueOnError)
	preset := fs.String("preset", cfg.PresetPath, "YAML preset overriding the default widget")
	fps := fs.Int("fps", cfg.FPS, "counter animation frame rate")
	level := fs.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: paymaker [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Paymaker edits a mock payment widget and previews it live.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.PresetPath = *preset
	cfg.FPS = *fps
	cfg.LogLevel = *level
	return nil
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()
	provider, err := trace.NewProvider(ctx, cfg.OtelEndpoint, cfg.OtelServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("trace: shutdown")
		}
	}()

	initial, err := config.LoadInitialState(cfg.PresetPath)
	if err != nil {
		return err
	}

	observers := []counter.Observer{counter.NewLogObserver(nil)}
	if o := trace.NewRunObserver(provider.Tracer()); o != nil {
		observers = append(observers, o)
	}

	model := ui.NewAppModel(ui.Options{
		Initial:  initial,
		FPS:      cfg.FPS,
		Observer: counter.NewMultiObserver(observers...),
	})
	defer model.Dispose()

	logrus.WithFields(logrus.Fields{
		"preset": cfg.PresetPath,
		"fps":    cfg.FPS,
		"otel":   cfg.OtelEndpoint != "",
	}).Info("paymaker: starting")

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "paymaker: %v\n", err)
		os.Exit(1)
	}
}
