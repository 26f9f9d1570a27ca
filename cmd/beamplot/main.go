// Command beamplot renders a beam description (YAML) into an SVG diagram.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beamz/beamplot/assets"
	"github.com/beamz/beamplot/beam"
	"github.com/beamz/beamplot/diagram"
	"github.com/beamz/beamplot/paths"
	"github.com/beamz/beamplot/render"
)

// flags
var (
	flagIn      string
	flagOut     string
	flagSymbols string
	flagScale   float64
	flagMargin  float64
)

func init() {
	flag.StringVar(&flagIn, "in", "", "beam description file (yaml)")
	flag.StringVar(&flagOut, "out", "out.svg", "svg output file")
	flag.StringVar(&flagSymbols, "symbols", "", "directory of symbol svg files (default: embedded set)")
	flag.Float64Var(&flagScale, "scale", 0, "uniform support symbol scale (0: fit to beam depth)")
	flag.Float64Var(&flagMargin, "margin", 0, "margin around the diagram in beam units")
}

// dirSource resolves symbol names against svg files in a directory,
// mirroring the embedded set's layout.
type dirSource struct {
	dir string
}

func (s *dirSource) Outline(name string) (*paths.Outline, error) {
	f, err := os.Open(filepath.Join(s.dir, name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("no symbol %q in %s", name, s.dir)
	}
	defer f.Close()
	o, err := paths.FromSVG(f)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	return o, nil
}

func main() {
	fail := func(s string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(2)
	}

	flag.Parse()
	if flagIn == "" {
		fail("must specify -in <beam yaml file>")
	}

	bf, err := loadBeamFile(flagIn)
	if err != nil {
		fail("failed to load beam description: %v", err)
	}
	b, err := beam.New(bf.spec())
	if err != nil {
		fail("invalid beam: %v", err)
	}

	var src diagram.SymbolSource = assets.Default()
	if flagSymbols != "" {
		src = &dirSource{dir: flagSymbols}
	}

	canvas := render.NewSVG()
	canvas.Margin = flagMargin
	if canvas.Margin == 0 {
		canvas.Margin = bf.Style.Margin
	}

	opts := diagram.Options{
		SymbolScale:     bf.Style.SymbolScale,
		DimensionOffset: bf.Style.DimensionOffset,
	}
	if flagScale != 0 {
		opts.SymbolScale = flagScale
	}

	if err := diagram.New(b, src, canvas, opts).Draw(); err != nil {
		// Failures are local to one load or symbol; the rest of the
		// diagram is still written.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	out, err := os.Create(flagOut)
	if err != nil {
		fail("failed to open output file: %v", err)
	}
	if err := canvas.Write(out); err != nil {
		fail("failed to write svg: %v", err)
	}
	if err := out.Close(); err != nil {
		fail("failed to write svg: %v", err)
	}
}
