// main.go - Entry point and dependency injection
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sstent/workoutstats/internal/config"
	"github.com/sstent/workoutstats/internal/parser"
	"github.com/sstent/workoutstats/internal/training"
	"github.com/sstent/workoutstats/internal/workout"
)

// stdinPath as WORKOUT_INPUT reads packages from standard input.
const stdinPath = "-"

type App struct {
	cfg       config.Config
	stdin     io.Reader
	processor *workout.Processor
}

func main() {
	cfg, envLoaded := config.Load()
	loggingSetup(cfg.LogLevel)
	if !envLoaded {
		log.Debug("No .env file found, using system environment variables")
	}

	app := &App{cfg: cfg, stdin: os.Stdin}
	app.init()

	if err := app.run(); err != nil {
		log.Errorf("Workout processing failed: %v", err)
		os.Exit(1)
	}
}

func (app *App) init() {
	app.processor = workout.NewProcessor(training.DefaultDispatcher(), os.Stdout)
}

func (app *App) run() error {
	packages, err := app.loadPackages()
	if err != nil {
		return err
	}

	summary, err := app.processor.Run(packages)
	if err != nil {
		return err
	}

	entry := log.WithFields(log.Fields{
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
	})
	if summary.SkipErrors != nil {
		entry = entry.WithField("errors", summary.SkipErrors)
	}
	entry.Info("Workout processing complete")
	return nil
}

// loadPackages reads the configured input file, falling back to the samples.
func (app *App) loadPackages() ([]parser.Package, error) {
	if app.cfg.InputPath == "" {
		log.Debug("No input file configured, using sample packages")
		return parser.SamplePackages(), nil
	}

	athlete := parser.Athlete{
		WeightKg: app.cfg.AthleteWeightKg,
		HeightCm: app.cfg.AthleteHeightCm,
	}
	if app.cfg.InputPath == stdinPath {
		return app.readStdin(athlete)
	}

	p, err := parser.NewParser(app.cfg.InputPath, athlete)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	packages, err := p.ParseFile(app.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d packages from %s", len(packages), app.cfg.InputPath)
	return packages, nil
}

// readStdin detects the input format from the piped content.
func (app *App) readStdin(athlete parser.Athlete) ([]parser.Package, error) {
	data, err := io.ReadAll(app.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	p, err := parser.NewParserFromData(data, athlete)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return p.ParseData(data)
}

func loggingSetup(logLevel string) {
	log.SetOutput(os.Stderr)
	switch strings.ToLower(logLevel) {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
