// Package config loads Maze'Lott settings from defaults, an optional .env
// file, MAZE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Modes the binary can run in
const (
	ModeTUI   = "tui"
	ModeGUI   = "gui"
	ModeServe = "serve"
)

// ErrInvalidMode is returned for a mode other than tui, gui or serve
var ErrInvalidMode = errors.New("invalid mode")

// Config holds the application's configuration values.
type Config struct {
	Width  int   // Maze width in cells, bumped to odd
	Height int   // Maze height in cells, bumped to odd
	Seed   int64 // RNG seed, 0 for time based

	Mode      string // tui, gui or serve
	Locale    string // Translation language
	LocaleDir string // Directory holding <lang>/LC_MESSAGES/default.po

	Addr    string // Listen address in serve mode
	GinMode string // Mode for the Gin framework (release, debug, test)

	ReofferDeclinedTreasure bool
	AdvisoryDuration        time.Duration

	SkipOverworld bool // Go straight to the maze in tui/gui mode
	DevMode       bool // Verbose logging
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:            21,
		Height:           21,
		Mode:             ModeTUI,
		Locale:           "fr",
		LocaleDir:        "locales",
		Addr:             ":8080",
		GinMode:          "release",
		AdvisoryDuration: 4000 * time.Millisecond,
	}
}

// LookupFunc reads one environment variable
type LookupFunc func(key string) (string, bool)

// Load builds the configuration for the process: .env (if present), then the
// environment, then args parsed as flags.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	cfg, err := FromEnv(Default(), os.LookupEnv)
	if err != nil {
		return cfg, err
	}
	return ParseFlags(cfg, args, os.Stderr)
}

// FromEnv overlays MAZE_* variables (and GIN_MODE) found through lookup on cfg
func FromEnv(cfg Config, lookup LookupFunc) (Config, error) {
	var errs []error
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be an integer: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be a boolean: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setInt("MAZE_WIDTH", &cfg.Width)
	setInt("MAZE_HEIGHT", &cfg.Height)
	if v, ok := lookup("MAZE_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_SEED must be an integer: %w", err))
		} else {
			cfg.Seed = n
		}
	}
	setString("MAZE_MODE", &cfg.Mode)
	setString("MAZE_LOCALE", &cfg.Locale)
	setString("MAZE_LOCALE_DIR", &cfg.LocaleDir)
	setString("MAZE_ADDR", &cfg.Addr)
	setString("GIN_MODE", &cfg.GinMode)
	setBool("MAZE_REOFFER_TREASURE", &cfg.ReofferDeclinedTreasure)
	setBool("MAZE_SKIP_OVERWORLD", &cfg.SkipOverworld)
	setBool("MAZE_DEV", &cfg.DevMode)

	ms := int(cfg.AdvisoryDuration / time.Millisecond)
	setInt("MAZE_ADVISORY_MS", &ms)
	cfg.AdvisoryDuration = time.Duration(ms) * time.Millisecond

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ParseFlags overlays command-line flags on cfg. Usage and parse errors are
// written to output.
func ParseFlags(cfg Config, args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("mazelott", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Width, "width", cfg.Width, "maze width in cells (even values are bumped to odd)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "maze height in cells (even values are bumped to odd)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time-based seed")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "run mode: tui, gui or serve")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "language for hints and messages")
	fs.StringVar(&cfg.LocaleDir, "locale-dir", cfg.LocaleDir, "directory holding translations")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address in serve mode")
	fs.BoolVar(&cfg.ReofferDeclinedTreasure, "reoffer-treasure", cfg.ReofferDeclinedTreasure, "offer a declined treasure again when stepping back on it")
	fs.DurationVar(&cfg.AdvisoryDuration, "advisory", cfg.AdvisoryDuration, "how long advisory messages stay visible")
	fs.BoolVar(&cfg.SkipOverworld, "skip-map", cfg.SkipOverworld, "skip the kingdom map and start in the maze")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values no layer can fix up on its own
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTUI, ModeGUI, ModeServe:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("maze size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.AdvisoryDuration < 0 {
		return fmt.Errorf("advisory duration must not be negative, got %s", c.AdvisoryDuration)
	}
	return nil
}
