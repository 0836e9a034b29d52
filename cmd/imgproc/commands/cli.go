// Package commands implements the imgproc subcommands on top of kong.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CLI definition & global flags.
type CLI struct {
	Config      kong.ConfigFlag  `short:"c" help:"Configuration file path (YAML)."`
	LogLevel    string           `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log level (${enum})."`
	LogFormat   string           `name:"log-format" enum:"console,json" default:"console" help:"Log output format (${enum})."`
	Workers     int              `short:"w" default:"0" help:"Workers for row-parallel stages (0 = GOMAXPROCS, 1 = sequential)."`
	OutputDir   string           `name:"output-dir" default:"output" help:"Directory for results when --output is not given."`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in text format to this file on exit."`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit."`

	Edge    EdgeCmd    `cmd:"" help:"Canny edge detection."`
	Sharpen SharpenCmd `cmd:"" help:"Image sharpening."`
	Filter  FilterCmd  `cmd:"" help:"Apply stock filters (all of them when no name is given)."`
	Demo    DemoCmd    `cmd:"" help:"Run every routine over the sample images."`
	Menu    MenuCmd    `cmd:"" default:"withargs" help:"Interactive menu (default when no command is given)."`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	if c.Workers < 0 {
		return fmt.Errorf("--workers must be ≥ 0, got %d", c.Workers)
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	if c.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}
