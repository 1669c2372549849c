package lockicon

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrUnknownVariant = errors.New("unknown icon variant")

// Variant picks which files are generated for each size.
type Variant string

const (
	// VariantRaster writes icon<size>.png.
	VariantRaster Variant = "raster"
	// VariantVector writes icon<size>.svg and icon<size>.txt.
	VariantVector Variant = "vector"
)

func (v Variant) Validate() error {
	switch v {
	case VariantRaster, VariantVector:
		return nil
	}
	return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownVariant, string(v), VariantRaster, VariantVector)
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	variant := Variant(text)
	if err := variant.Validate(); err != nil {
		return err
	}
	*v = variant
	return nil
}

// Config holds the lockicon command configuration. The defaults write PNGs
// into the working directory.
type Config struct {
	OutDir    string  `env:"LOCKICON_OUT_DIR" envDefault:"."`
	Variant   Variant `env:"LOCKICON_VARIANT" envDefault:"raster"`
	MinifySVG bool    `env:"LOCKICON_MINIFY_SVG" envDefault:"false"`
}

// ParseConfig reads the environment first, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory to write icons into (default: LOCKICON_OUT_DIR or .)")
	fs.TextVar(&cfg.Variant, "variant", cfg.Variant, "icon variant: raster (PNG) or vector (SVG plus instructions)")
	fs.BoolVar(&cfg.MinifySVG, "minify-svg", cfg.MinifySVG, "minify SVG output (vector variant and fallbacks)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}
