package commands

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/lvimg/canny"
	"github.com/katalvlaran/lvimg/filters"
	"github.com/katalvlaran/lvimg/imageio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSquare saves a 40×40 dark image with a bright 20×20 square.
func writeSquare(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			img.SetGray(x, y, color.Gray{Y: 220})
		}
	}
	require.NoError(t, imageio.Save(path, img))
}

type harness struct {
	dir    string // output directory
	images string // input directory
	input  string // images/square.png
	out    bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{dir: t.TempDir(), images: t.TempDir()}
	h.input = filepath.Join(h.images, "square.png")
	writeSquare(t, h.input)
	return h
}

// run parses args (after the global test flags), runs the selected command
// and closes the runtime.
func (h *harness) run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Exit(func(int) {}), kong.Vars{"version": "test"})
	require.NoError(t, err)

	full := append([]string{"--log-level=error", "--output-dir", h.dir}, args...)
	kctx, err := parser.Parse(full)
	if err != nil {
		return err
	}
	rt := NewRuntime(context.Background(), &cli, strings.NewReader(stdin), &h.out)
	runErr := kctx.Run(rt)
	require.NoError(t, rt.Close())
	return runErr
}

func (h *harness) path(name string) string { return filepath.Join(h.dir, name) }

func countWhite(t *testing.T, path string) int {
	t.Helper()
	img, _, err := imageio.Load(path)
	require.NoError(t, err)
	p, err := imageio.ToPlane(img)
	require.NoError(t, err)
	n := 0
	for _, v := range p.Pix() {
		if v > 127 {
			n++
		}
	}
	return n
}

func TestEdge(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "", "edge", "-i", h.input, "--compare", "--blur", "1.4"))

	edges := countWhite(t, h.path("square_edge.png"))
	assert.Greater(t, edges, 40, "the square outline should be traced")
	assert.Less(t, edges, 400, "the interior must stay empty")
	assert.FileExists(t, h.path("square_edge_compare.png"))
}

func TestEdge_Sequential(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "", "--workers", "1", "edge", "-i", h.input, "-o", h.path("seq.bmp")))
	require.NoError(t, h.run(t, "", "--workers", "3", "edge", "-i", h.input, "-o", h.path("par.bmp")))
	assert.Equal(t, countWhite(t, h.path("seq.bmp")), countWhite(t, h.path("par.bmp")))
}

func TestEdge_Errors(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "", "edge", "-i", filepath.Join(h.images, "missing.png"))
	assert.Error(t, err)

	err = h.run(t, "", "edge", "-i", h.input, "--low-threshold", "100", "--high-threshold", "50")
	assert.ErrorIs(t, err, canny.ErrInvalidParameter)

	err = h.run(t, "", "--workers=-2", "edge", "-i", h.input)
	assert.Error(t, err)
}

func TestSharpen(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "", "sharpen", "-i", h.input))
	assert.FileExists(t, h.path("square_sharp.png"))

	// The stock "sharpen" filter writes next to it without overwriting.
	require.NoError(t, h.run(t, "", "filter", "-i", h.input, "--filter-name", "sharpen"))
	assert.FileExists(t, h.path("square_sharpen.png"))
	assert.FileExists(t, h.path("square_sharp.png"))

	require.NoError(t, h.run(t, "", "sharpen", "-i", h.input, "--method", "cv2", "-o", h.path("k.tiff")))
	assert.FileExists(t, h.path("k.tiff"))

	err := h.run(t, "", "sharpen", "-i", h.input, "--blur-kernel-size", "4")
	assert.ErrorIs(t, err, filters.ErrInvalidParameter)
}

func TestFilter_List(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "", "filter", "--list"))
	for _, name := range filters.Names() {
		assert.Contains(t, h.out.String(), name)
	}
}

func TestFilter_Single(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "", "filter", "-i", h.input, "--filter-name", "FIND_EDGES"))
	assert.FileExists(t, h.path("square_find_edges.png"))

	err := h.run(t, "", "filter", "-i", h.input, "--filter-name", "sepia")
	assert.ErrorIs(t, err, filters.ErrUnknownFilter)

	err = h.run(t, "", "filter")
	assert.Error(t, err)
}

func TestFilter_All(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "", "filter", "-i", h.input))
	for _, name := range filters.Names() {
		assert.FileExists(t, h.path("square_"+name+".png"))
	}
}

func TestMetricsFile(t *testing.T) {
	h := newHarness(t)
	metricsPath := h.path("lvimg.prom")
	require.NoError(t, h.run(t, "", "--metrics-file", metricsPath, "edge", "-i", h.input))

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `lvimg_results_total{command="edge",result="success"} 1`)
	assert.Contains(t, text, `lvimg_stage_duration_seconds_count{stage="trace"} 1`)
	assert.Contains(t, text, "lvimg_edge_pixels_total")
}

func TestMenu_EdgeThenExit(t *testing.T) {
	h := newHarness(t)
	script := strings.Join([]string{
		"1", // process an image
		"1", // square.png
		"n", // no comparison
		"1", // edge detection
		"",  // sigma
		"",  // high
		"",  // low
		"3", // exit
	}, "\n") + "\n"

	require.NoError(t, h.run(t, script, "menu", "--images-dir", h.images))
	assert.FileExists(t, h.path("square_edge.png"))
	assert.Contains(t, h.out.String(), "1. square.png")
	assert.Contains(t, h.out.String(), "Exiting program.")
}

func TestMenu_FilterAndBadChoices(t *testing.T) {
	h := newHarness(t)
	// An invalid choice, an out-of-range image, then one filter with a
	// comparison. The menu returns when input runs out.
	script := strings.Join([]string{
		"9",
		"1", "7",
		"1", "1", "y", "3", "1", "emboss",
	}, "\n") + "\n"

	require.NoError(t, h.run(t, script, "--images-dir", h.images))
	assert.Contains(t, h.out.String(), "Invalid choice. Please try again.")
	assert.Contains(t, h.out.String(), `invalid selection "7"`)
	assert.FileExists(t, h.path("square_emboss.png"))
	assert.FileExists(t, h.path("square_emboss_compare.png"))
}

func TestDefaultCommandIsMenu(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, ""))
	assert.Contains(t, h.out.String(), "Interactive Menu")
}

func TestDemo(t *testing.T) {
	h := newHarness(t)
	writeSquare(t, filepath.Join(h.images, "image.jpg"))
	writeSquare(t, filepath.Join(h.images, "background_landscape.png"))

	require.NoError(t, h.run(t, "", "demo", "--images-dir", h.images))
	for _, name := range []string{
		"edges.jpg", "sharpened_unsharp_mask.jpg", "sharpened_cv2.jpg", "filter_find_edges.jpg",
		"image_blur.jpg", "image_smooth_more.jpg",
	} {
		assert.FileExists(t, h.path(name))
	}

	err := h.run(t, "", "demo", "--images-dir", h.dir)
	assert.Error(t, err)
}
