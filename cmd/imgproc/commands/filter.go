package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvimg/filters"
	"github.com/katalvlaran/lvimg/imageio"
	"github.com/rs/zerolog/log"
)

// FilterCmd implements the 'filter' command.
type FilterCmd struct {
	Input      string `short:"i" type:"existingfile" help:"Input image."`
	Output     string `short:"o" help:"Output image for a single filter (default <output-dir>/<name>_<filter><ext>)."`
	Compare    bool   `help:"Also write side-by-side comparison images."`
	FilterName string `name:"filter-name" help:"Filter to apply; all filters when empty."`
	List       bool   `help:"List the available filters and exit."`
}

func (f *FilterCmd) Run(rt *Runtime) error {
	if f.List {
		fmt.Fprintln(rt.Out, strings.Join(filters.Names(), "\n"))
		return nil
	}
	if f.Input == "" {
		return fmt.Errorf("--input is required unless --list is given")
	}
	return rt.track("filter", func() error { return f.run(rt) })
}

func (f *FilterCmd) run(rt *Runtime) error {
	img, _, err := imageio.Load(f.Input)
	if err != nil {
		return err
	}

	if f.FilterName != "" {
		flt, err := filters.Lookup(f.FilterName)
		if err != nil {
			return err
		}
		out := rt.outputPath(f.Output, f.Input, flt.Name)
		if err := rt.save(out, img, flt.Apply(img), f.Compare); err != nil {
			return err
		}
		log.Info().Str("filter", flt.Name).Str("output", out).Msg("Filter applied")
		return nil
	}

	outs, err := filters.ApplyAll(rt.Ctx, img, rt.workers)
	if err != nil {
		return err
	}
	for _, o := range outs {
		out := rt.outputPath("", f.Input, o.Name)
		if err := rt.save(out, img, o.Image, f.Compare); err != nil {
			return err
		}
		log.Info().Str("filter", o.Name).Str("output", out).Msg("Filter applied")
	}
	log.Info().Int("filters", len(outs)).Msg("All filters applied")
	return nil
}
