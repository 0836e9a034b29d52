package imageio

import (
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where results go when no output path is given.
const DefaultOutputDir = "output"

// DefaultOutputPath returns output when set, otherwise
// <dir>/<name>_<command><ext> built from input. An empty dir means
// DefaultOutputDir.
func DefaultOutputPath(output, input, command, dir string) string {
	if output != "" {
		return output
	}
	if dir == "" {
		dir = DefaultOutputDir
	}
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"_"+command+ext)
}

// ComparePath derives the side-by-side image path for a result path:
// out.jpg → out_compare.png.
func ComparePath(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + "_compare.png"
}
