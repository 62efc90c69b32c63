package cmd

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/go-drift/inputrange/cmd/inputrange/internal/config"
	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render the sliders to an image",
		Long: `Render every configured slider into one stacked image.

Flags:
  --config DIR      Directory holding inputrange.yaml (default: current directory)
  --width PX        Image width in pixels (default: 480)
  --format FORMAT   png or bmp (default: from the --out extension, else png)
  --out FILE        Output file, "-" for stdout (default: inputrange.png)`,
		Usage: "inputrange preview [--config DIR] [--width PX] [--format png|bmp] [--out FILE]",
		Run:   runPreview,
	})
}

const (
	defaultPreviewWidth   = 480
	defaultPreviewPadding = 16
	minPreviewWidth       = 120
)

type previewOptions struct {
	dir    string
	width  int
	format rendering.Format
	out    string
}

func parsePreviewArgs(args []string) (previewOptions, error) {
	opts := previewOptions{dir: ".", width: defaultPreviewWidth, out: "inputrange.png"}
	for i := 0; i < len(args); i++ {
		if v, ok, err := flagValue(args, &i, "--config"); ok {
			if err != nil {
				return opts, err
			}
			opts.dir = v
			continue
		}
		if v, ok, err := flagValue(args, &i, "--width"); ok {
			if err != nil {
				return opts, err
			}
			w, err := strconv.Atoi(v)
			if err != nil || w < minPreviewWidth {
				return opts, fmt.Errorf("--width must be an integer of at least %d (got %q)", minPreviewWidth, v)
			}
			opts.width = w
			continue
		}
		if v, ok, err := flagValue(args, &i, "--format"); ok {
			if err != nil {
				return opts, err
			}
			f, err := rendering.ParseFormat(v)
			if err != nil {
				return opts, err
			}
			opts.format = f
			continue
		}
		if v, ok, err := flagValue(args, &i, "--out"); ok {
			if err != nil {
				return opts, err
			}
			opts.out = v
			continue
		}
		return opts, fmt.Errorf("unknown argument %q", args[i])
	}
	if opts.format == "" {
		opts.format = rendering.FormatForPath(opts.out)
	}
	return opts, nil
}

func runPreview(args []string) error {
	opts, err := parsePreviewArgs(args)
	if err != nil {
		return err
	}

	res, err := config.Resolve(opts.dir)
	if err != nil {
		return err
	}

	sliders := make([]rendering.Slider, 0, len(res.Sliders))
	for _, s := range res.Sliders {
		r, err := rangeinput.New(s.Config)
		if err != nil {
			return fmt.Errorf("slider %q: %w", s.Title, err)
		}
		sliders = append(sliders, rendering.Slider{Title: s.Title, Snapshot: r.Snapshot()})
	}

	img := rendering.Render(sliders, rendering.Options{
		Width:   opts.width,
		Padding: defaultPreviewPadding,
		Theme:   res.Theme.SliderThemeOf(),
	})

	if opts.out == "-" {
		return rendering.Encode(os.Stdout, img, opts.format)
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	if err := writeImage(f, img, opts.format); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	bounds := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d, %d sliders)\n", opts.out, bounds.Dx(), bounds.Dy(), len(sliders))
	return nil
}

func writeImage(f *os.File, img image.Image, format rendering.Format) error {
	err := rendering.Encode(f, img, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
