// Command vecplot-render draws the vector addition plots for one pair, a
// random pair or a worksheet of pairs and writes them as PNG images.
//
// Usage:
//
//	vecplot-render --ax 3 --ay 4 --bx 1 --by -2 --out plots
//	vecplot-render --random --min -9 --max 9 --seed 42
//	vecplot-render --worksheet week3.json --layout tip-to-tail
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/bendazz/vector-practice/config"
	"github.com/bendazz/vector-practice/generator"
	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/logger"
	"github.com/bendazz/vector-practice/plot"
	"github.com/bendazz/vector-practice/render"
	"github.com/bendazz/vector-practice/worksheet"
)

const defaultName = "vectors"

type options struct {
	pair          geometry.VectorPair
	random        bool
	min, max      int
	seed          uint64
	width, height int
	dpr           float64
	out           string
	worksheet     string
	layout        string
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.GetLogLevel())

	opts, err := parseFlags(cfg, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts, cfg, log); err != nil {
		log.Error("render failed", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. Flag defaults come from cfg, so an
// explicit flag overrides the environment and the config file.
func parseFlags(cfg *config.Config, args []string) (options, error) {
	fs := pflag.NewFlagSet("vecplot-render", pflag.ContinueOnError)

	initial := cfg.GetInitialPair()
	ax := fs.Int("ax", initial.AX, "x component of a")
	ay := fs.Int("ay", initial.AY, "y component of a")
	bx := fs.Int("bx", initial.BX, "x component of b")
	by := fs.Int("by", initial.BY, "y component of b")
	random := fs.BoolP("random", "r", false, "draw a random non-degenerate pair instead")
	lo := fs.Int("min", cfg.GetRangeMin(), "smallest random component")
	hi := fs.Int("max", cfg.GetRangeMax(), "largest random component")
	seed := fs.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	width := fs.Int("width", cfg.GetPlotWidth(), "plot width in display units")
	height := fs.Int("height", cfg.GetPlotHeight(), "plot height in display units")
	dpr := fs.Float64("dpr", cfg.GetDevicePixelRatio(), "device pixel ratio (0 means 1)")
	out := fs.StringP("out", "o", "plots", "output directory")
	sheet := fs.StringP("worksheet", "w", "", "JSON worksheet of problems to render")
	layout := fs.StringP("layout", "l", "both", "standard, tip-to-tail or both")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	pair := geometry.NewVectorPair(*ax, *ay, *bx, *by)
	if !pair.Bounded() {
		return options{}, fmt.Errorf("vector components must lie in [%d, %d], got %s",
			-geometry.MaxComponent, geometry.MaxComponent, pair)
	}
	if !geometry.ComponentInRange(*lo) || !geometry.ComponentInRange(*hi) {
		return options{}, fmt.Errorf("random range must lie in [%d, %d], got [%d, %d]",
			-geometry.MaxComponent, geometry.MaxComponent, *lo, *hi)
	}
	if *width <= 0 || *height <= 0 {
		return options{}, fmt.Errorf("plot size must be positive, got %dx%d", *width, *height)
	}

	return options{
		pair:      pair,
		random:    *random,
		min:       *lo,
		max:       *hi,
		seed:      *seed,
		width:     *width,
		height:    *height,
		dpr:       *dpr,
		out:       *out,
		worksheet: *sheet,
		layout:    *layout,
	}, nil
}

func run(opts options, cfg *config.Config, log logger.Logger) error {
	layouts, err := parseLayouts(opts.layout)
	if err != nil {
		return err
	}

	problems, err := collectProblems(opts, cfg, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	r := render.NewRaster(float64(opts.width), float64(opts.height), opts.dpr)
	r.Background = render.DefaultPalette.Background

	for _, p := range problems {
		files, err := renderProblem(r, opts.out, p.Name, p.Pair(), layouts)
		if err != nil {
			return err
		}
		for _, f := range files {
			log.Info("plot written", "problem", p.Name, "file", f)
		}
		fmt.Printf("%s: %s  a + b = %s\n", p.Name, p.Pair(), p.Pair().SumText())
	}
	return nil
}

func parseLayouts(name string) ([]plot.Layout, error) {
	if name == "both" || name == "" {
		return plot.Layouts, nil
	}
	l, err := plot.ParseLayout(name)
	if err != nil {
		return nil, err
	}
	return []plot.Layout{l}, nil
}

// collectProblems returns the worksheet problems, or a single problem built
// from the flags.
func collectProblems(opts options, cfg *config.Config, log logger.Logger) ([]worksheet.Problem, error) {
	if opts.worksheet != "" {
		ws, err := worksheet.Load(opts.worksheet)
		if err != nil {
			return nil, err
		}
		log.Info("worksheet loaded", "title", ws.Title, "problems", len(ws.Problems))
		return ws.Problems, nil
	}

	pair := opts.pair
	if opts.random {
		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		pair = generator.New(seed, cfg.GetGeneratorMaxAttempts(), log).Generate(opts.min, opts.max)
	}
	return []worksheet.Problem{problemFor(defaultName, pair)}, nil
}

func problemFor(name string, pair geometry.VectorPair) worksheet.Problem {
	return worksheet.Problem{
		Name: name,
		A:    [2]int{pair.AX, pair.AY},
		B:    [2]int{pair.BX, pair.BY},
	}
}

// renderProblem draws pair once per layout and writes <name>-<layout>.png
// files into dir. It returns the written paths.
func renderProblem(r *render.Raster, dir, name string, pair geometry.VectorPair, layouts []plot.Layout) ([]string, error) {
	var files []string
	for _, layout := range layouts {
		plot.Render(layout, r, pair)

		path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", name, layout))
		if err := writePNG(r, path); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

func writePNG(r *render.Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
