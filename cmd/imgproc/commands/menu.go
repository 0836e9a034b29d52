package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvimg/canny"
	"github.com/katalvlaran/lvimg/filters"
	"github.com/rs/zerolog/log"
)

// MenuCmd implements the interactive menu.
type MenuCmd struct {
	ImagesDir string `name:"images-dir" default:"images" help:"Directory listed for image selection."`
}

var menuExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".gif": true, ".tif": true, ".tiff": true, ".webp": true}

// errQuit ends the menu when input runs out.
var errQuit = errors.New("quit")

// prompter reads one answer per line.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

func (p *prompter) askFloat(prompt string, def float64) (float64, error) {
	s, err := p.ask(fmt.Sprintf("%s (default: %g): ", prompt, def))
	if err != nil || s == "" {
		return def, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func (p *prompter) askInt(prompt string, def int) (int, error) {
	s, err := p.ask(fmt.Sprintf("%s (default: %d): ", prompt, def))
	if err != nil || s == "" {
		return def, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func (m *MenuCmd) Run(rt *Runtime) error {
	p := &prompter{sc: bufio.NewScanner(rt.In), out: rt.Out}
	fmt.Fprintln(rt.Out, "Image Processing Tool - Interactive Menu")
	fmt.Fprintln(rt.Out, "=======================================")

	for {
		fmt.Fprint(rt.Out, "\nSelect an option:\n1. Process an image\n2. Run demo (uses sample images)\n3. Exit\n")
		choice, err := p.ask("\nEnter your choice (1-3): ")
		if err != nil {
			return quitOrErr(err)
		}

		switch choice {
		case "1":
			if err := m.process(rt, p); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				// a failed run returns to the menu
				log.Error().Err(err).Msg("Processing failed")
				fmt.Fprintf(rt.Out, "Error: %v\n", err)
			}
		case "2":
			if err := (&DemoCmd{ImagesDir: m.ImagesDir, Sample: "image.jpg", Landscape: "background_landscape.png"}).Run(rt); err != nil {
				fmt.Fprintf(rt.Out, "Error: %v\n", err)
			}
		case "3":
			fmt.Fprintln(rt.Out, "Exiting program.")
			return nil
		default:
			fmt.Fprintln(rt.Out, "Invalid choice. Please try again.")
		}
	}
}

func quitOrErr(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// listImages returns the image files of dir, sorted by name.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && menuExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MenuCmd) process(rt *Runtime, p *prompter) error {
	images, err := listImages(m.ImagesDir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("no image files found in %s", m.ImagesDir)
	}

	fmt.Fprintln(rt.Out, "\nAvailable images:")
	for i, name := range images {
		fmt.Fprintf(rt.Out, "%d. %s\n", i+1, name)
	}
	sel, err := p.ask("\nEnter the number of the image to process: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(sel)
	if err != nil || n < 1 || n > len(images) {
		return fmt.Errorf("invalid selection %q", sel)
	}
	input := filepath.Join(m.ImagesDir, images[n-1])

	yn, err := p.ask("\nWrite a side-by-side comparison image? (y/n): ")
	if err != nil {
		return err
	}
	compare := strings.EqualFold(yn, "y")

	fmt.Fprint(rt.Out, "\nSelect processing type:\n1. Edge Detection\n2. Image Sharpening\n3. Apply Filters\n4. Back to main menu\n")
	kind, err := p.ask("\nEnter your choice (1-4): ")
	if err != nil {
		return err
	}

	switch kind {
	case "1":
		return m.edge(rt, p, input, compare)
	case "2":
		return m.sharpen(rt, p, input, compare)
	case "3":
		return m.filter(rt, p, input, compare)
	case "4":
		return nil
	default:
		fmt.Fprintln(rt.Out, "Invalid choice. Returning to main menu.")
		return nil
	}
}

func (m *MenuCmd) edge(rt *Runtime, p *prompter, input string, compare bool) error {
	fmt.Fprintln(rt.Out, "\nEdge Detection Options:")
	cmd := &EdgeCmd{Input: input, Compare: compare, Method: "canny"}
	var err error
	if cmd.Blur, err = p.askFloat("Enter Gaussian blur sigma value", canny.DefaultSigma); err != nil {
		return err
	}
	if cmd.HighThreshold, err = p.askFloat("Enter high threshold for edge detection", canny.DefaultHigh); err != nil {
		return err
	}
	if cmd.LowThreshold, err = p.askFloat("Enter low threshold for edge detection", canny.DefaultLow); err != nil {
		return err
	}
	if err := cmd.Run(rt); err != nil {
		return err
	}
	fmt.Fprintf(rt.Out, "Edge detection completed. Output saved to %s\n", rt.outputPath("", input, "edge"))
	return nil
}

func (m *MenuCmd) sharpen(rt *Runtime, p *prompter, input string, compare bool) error {
	fmt.Fprint(rt.Out, "\nSharpening Methods:\n1. Unsharp Mask\n2. Kernel (cv2)\n")
	method, err := p.ask("Select method (1-2): ")
	if err != nil {
		return err
	}
	cmd := &SharpenCmd{Input: input, Compare: compare, Method: filters.MethodUnsharpMask}
	if method == "2" {
		cmd.Method = filters.MethodCV2
	}
	if cmd.BlurKernelSize, err = p.askInt("Enter blur kernel size", filters.DefaultKernelSize); err != nil {
		return err
	}
	if cmd.SharpeningAmount, err = p.askFloat("Enter sharpening amount", filters.DefaultAmount); err != nil {
		return err
	}
	if cmd.Threshold, err = p.askFloat("Enter threshold", filters.DefaultThreshold); err != nil {
		return err
	}
	if err := cmd.Run(rt); err != nil {
		return err
	}
	fmt.Fprintf(rt.Out, "Image sharpening completed. Output saved to %s\n", rt.outputPath("", input, sharpSuffix))
	return nil
}

func (m *MenuCmd) filter(rt *Runtime, p *prompter, input string, compare bool) error {
	fmt.Fprint(rt.Out, "\nFilter Options:\n1. Apply a specific filter\n2. Apply all filters\n3. Back to processing type selection\n")
	choice, err := p.ask("Select option (1-3): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		fmt.Fprintf(rt.Out, "\nAvailable filters: %s\n", strings.ToUpper(strings.Join(filters.Names(), ", ")))
		name, err := p.ask("Enter filter name: ")
		if err != nil {
			return err
		}
		flt, err := filters.Lookup(name)
		if err != nil {
			return err
		}
		if err := (&FilterCmd{Input: input, FilterName: flt.Name, Compare: compare}).Run(rt); err != nil {
			return err
		}
		fmt.Fprintf(rt.Out, "Filter '%s' applied. Output saved to %s\n", flt.Name, rt.outputPath("", input, flt.Name))
	case "2":
		if err := (&FilterCmd{Input: input, Compare: compare}).Run(rt); err != nil {
			return err
		}
		fmt.Fprintln(rt.Out, "All filters applied.")
	case "3":
	default:
		fmt.Fprintln(rt.Out, "Invalid choice. Returning to main menu.")
	}
	return nil
}
