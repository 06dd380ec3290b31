// Package main is the entry point for the Glyphpaint terminal paint tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/glyphpaint/internal/app"
	"github.com/dshills/glyphpaint/internal/config"
	"github.com/dshills/glyphpaint/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// flags holds command-line settings. Only flags given explicitly
// override the config file and environment.
type flags struct {
	configPath string
	openPath   string
	overrides  map[string]string
}

func run() int {
	fl := parseFlags()

	cfg, err := loadConfig(fl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	settings, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration:\n%v\n", err)
		return 1
	}
	fitToTerminal(settings, int(os.Stdout.Fd()))

	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := app.OpenLogFile(settings.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewSessionLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(settings.LogLevel),
		Output: logOut,
		Prefix: "glyphpaint",
	})

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Settings:   settings,
		Backend:    term,
		ConfigPath: cfg.Path(),
		OpenPath:   fl.openPath,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers defaults, the config file, the environment and the
// explicit flags.
func loadConfig(fl flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if fl.configPath != "" {
		cfg, err = config.Load(fl.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	for path, value := range fl.overrides {
		if err := cfg.Set(path, value); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// flagPaths maps flag names to the settings they override.
var flagPaths = map[string]string{
	"width":     "canvas.width",
	"height":    "canvas.height",
	"log-level": "log.level",
	"log-file":  "log.file",
	"save-dir":  "save.dir",
	"format":    "save.format",
	"tick":      "tick",
}

func parseFlags() flags {
	var (
		fl          flags
		showVersion bool
		showHelp    bool
	)

	flag.StringVar(&fl.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&fl.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.Int("width", config.DefaultWidth, "Canvas width in cells (0 fits the terminal)")
	flag.Int("height", config.DefaultHeight, "Canvas height in cells (0 fits the terminal)")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("log-file", "", "Write the session log to this file")
	flag.String("save-dir", ".", "Directory for saved paintings")
	flag.String("format", "text", "Save format (text, ansi)")
	flag.String("tick", config.DefaultTick, "Input poll interval")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Glyphpaint - paint with characters in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: glyphpaint [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glyphpaint                      Start with an empty 60x20 canvas\n")
		fmt.Fprintf(os.Stderr, "  glyphpaint -width 0 -height 0   Fill the terminal\n")
		fmt.Fprintf(os.Stderr, "  glyphpaint painting_1700000000.txt\n")
		fmt.Fprintf(os.Stderr, "  glyphpaint -format ansi cat.png Import an image, save with colors\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Glyphpaint %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	fl.overrides = make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		if path, ok := flagPaths[f.Name]; ok {
			fl.overrides[path] = f.Value.String()
		}
	})

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file may be opened\n")
		os.Exit(1)
	}
	fl.openPath = flag.Arg(0)

	return fl
}
