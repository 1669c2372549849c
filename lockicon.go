// Package lockicon generates the placeholder lock icons of the MyPassword
// browser extension: icon16, icon48 and icon128, either as PNG or as SVG with
// a plain-text note on how to draw the PNG by hand.
package lockicon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxhully/lockicon/lockgen"
)

// Sizes are the icon sizes a Chrome extension manifest asks for.
var Sizes = []int{16, 48, 128}

var ErrInvalidSize = lockgen.ErrInvalidSize

// IconSpec is one render call: draw a size x size icon to OutputPath.
type IconSpec struct {
	Size       int
	OutputPath string
}

func (s IconSpec) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, s.Size)
	}
	return nil
}

// Artifact is a file written by the generator.
type Artifact struct {
	Path string
	Size int
	Kind string // "png", "svg" or "txt"
}

type renderFunc func(w io.Writer, size int) error

// Generator writes every icon size for one variant into OutDir.
type Generator struct {
	OutDir  string
	Variant Variant
	Logger  *log.Logger

	out       io.Writer
	renderer  *Renderer
	rasterize renderFunc
}

func NewGenerator(cfg Config, out io.Writer) (*Generator, error) {
	if err := cfg.Variant.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		OutDir:    cfg.OutDir,
		Variant:   cfg.Variant,
		Logger:    log.Default(),
		out:       out,
		renderer:  NewRenderer(cfg.MinifySVG),
		rasterize: lockgen.WritePNG,
	}, nil
}

func (g *Generator) spec(size int, ext string) IconSpec {
	return IconSpec{
		Size:       size,
		OutputPath: filepath.Join(g.OutDir, fmt.Sprintf("icon%d.%s", size, ext)),
	}
}

// Generate renders every size in Sizes, in order, overwriting files that are
// already there. It stops at the first write error; files written before that
// stay on disk and are returned with the error.
func (g *Generator) Generate(ctx context.Context) ([]Artifact, error) {
	if g.OutDir != "" {
		if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if g.Variant == VariantVector {
		fmt.Fprintf(g.out, "Creating icons for %s...\n", lockgen.ProductName)
		fmt.Fprintln(g.out, strings.Repeat("=", 40))
	}
	var artifacts []Artifact
	for _, size := range Sizes {
		if err := ctx.Err(); err != nil {
			return artifacts, err
		}
		var written []Artifact
		var err error
		switch g.Variant {
		case VariantRaster:
			written, err = g.generateRaster(size)
		case VariantVector:
			written, err = g.generateVector(size)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownVariant, g.Variant)
		}
		artifacts = append(artifacts, written...)
		if err != nil {
			return artifacts, err
		}
	}
	return artifacts, nil
}

// generateRaster tries the PNG twice before settling for the vector output
// for this size.
func (g *Generator) generateRaster(size int) ([]Artifact, error) {
	spec := g.spec(size, "png")
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	render := func(w io.Writer) error {
		return g.rasterize(w, spec.Size)
	}
	err := g.renderer.RenderFile(spec.OutputPath, pngMediaType, render)
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		g.Logger.Printf("rendering %s failed, retrying: %v", spec.OutputPath, renderErr.Err)
		err = g.renderer.RenderFile(spec.OutputPath, pngMediaType, render)
	}
	if errors.As(err, &renderErr) {
		g.Logger.Printf("rendering %s failed again, falling back to SVG: %v", spec.OutputPath, renderErr.Err)
		return g.generateVector(size)
	}
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(g.out, "Created icon: %s\n", spec.OutputPath)
	return []Artifact{{Path: spec.OutputPath, Size: size, Kind: "png"}}, nil
}

func (g *Generator) generateVector(size int) ([]Artifact, error) {
	svgSpec := g.spec(size, "svg")
	if err := svgSpec.Validate(); err != nil {
		return nil, err
	}
	err := g.renderer.RenderFile(svgSpec.OutputPath, svgMediaType, func(w io.Writer) error {
		return lockgen.WriteSVG(w, size)
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(g.out, "Created SVG icon: %s\n", svgSpec.OutputPath)
	artifacts := []Artifact{{Path: svgSpec.OutputPath, Size: size, Kind: "svg"}}

	txtSpec := g.spec(size, "txt")
	err = g.renderer.RenderFile(txtSpec.OutputPath, textMediaType, func(w io.Writer) error {
		return lockgen.WriteInstructions(w, size)
	})
	if err != nil {
		return artifacts, err
	}
	fmt.Fprintf(g.out, "Created icon instructions: %s\n", txtSpec.OutputPath)
	return append(artifacts, Artifact{Path: txtSpec.OutputPath, Size: size, Kind: "txt"}), nil
}

// PrintSummary lists what Generate wrote. When any SVG was produced it also
// explains how to get the PNGs a browser store expects.
func PrintSummary(w io.Writer, artifacts []Artifact) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "All icons were created successfully!")
	fmt.Fprintln(w, "Files created:")
	sawSVG := false
	for _, a := range artifacts {
		switch a.Kind {
		case "txt":
			fmt.Fprintf(w, "   - %s (instructions)\n", a.Path)
		default:
			fmt.Fprintf(w, "   - %s (%dx%dpx)\n", a.Path, a.Size, a.Size)
		}
		if a.Kind == "svg" {
			sawSVG = true
		}
	}
	if !sawSVG {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use these with Chrome:")
	fmt.Fprintln(w, "1. Convert the SVGs to PNG with any converter")
	fmt.Fprintln(w, "2. Or draw the PNG icons by hand following the instructions")
	fmt.Fprintln(w, "3. Replace the .txt files with the matching .png files")
}
