package lockicon

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/oxtoacart/bpool"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
)

const (
	pngMediaType  = "image/png"
	svgMediaType  = "image/svg+xml"
	textMediaType = "text/plain"
)

// RenderError means drawing the icon failed before anything was written to
// disk. Write failures are returned as plain wrapped errors instead.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer writes generated files through a pooled buffer, so a render that
// fails halfway never leaves a truncated file behind.
type Renderer struct {
	bufpool  *bpool.BufferPool
	minifier *minify.M
}

// NewRenderer returns a Renderer. When minifySVG is set, SVG output is
// minified before it is written.
func NewRenderer(minifySVG bool) *Renderer {
	renderer := Renderer{
		bufpool: bpool.NewBufferPool(8),
	}
	if minifySVG {
		m := minify.New()
		m.AddFunc("text/css", css.Minify)
		m.AddFunc(svgMediaType, svg.Minify)
		renderer.minifier = m
	}
	return &renderer
}

// RenderFile runs render into a buffer and then writes the buffer to path,
// replacing any existing file.
func (r *Renderer) RenderFile(path string, mediaType string, render func(w io.Writer) error) error {
	buf := r.bufpool.Get()
	defer r.bufpool.Put(buf)
	if err := render(buf); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	data := buf.Bytes()
	if r.minifier != nil && mediaType == svgMediaType {
		minified := new(bytes.Buffer)
		if err := r.minifier.Minify(mediaType, minified, buf); err != nil {
			return &RenderError{Path: path, Err: fmt.Errorf("minify: %w", err)}
		}
		data = minified.Bytes()
	}
	if len(data) == 0 {
		return &RenderError{Path: path, Err: fmt.Errorf("empty %s output", mediaType)}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
