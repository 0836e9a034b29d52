// Command imgproc runs Canny edge detection, sharpening and stock filters
// over image files. Without a command it starts an interactive menu.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/lvimg/cmd/imgproc/commands"
	"github.com/katalvlaran/lvimg/internal/config"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("imgproc"),
		kong.Description("Edge detection, sharpening and filters for image files."),
		kong.UsageOnError(),
		kong.Configuration(config.Loader, config.DefaultFile),
		kong.Vars{"version": version},
	)

	sigCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	rt := commands.NewRuntime(sigCtx, &cli, os.Stdin, os.Stdout)

	err := ctx.Run(rt)
	if cerr := rt.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("Failed to write metrics")
	}
	cancel()
	ctx.FatalIfErrorf(err)
}
