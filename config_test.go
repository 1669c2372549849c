package lockicon

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("lockicon", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Config{OutDir: ".", Variant: VariantRaster, MinifySVG: false}, cfg)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("LOCKICON_OUT_DIR", "icons")
	t.Setenv("LOCKICON_VARIANT", "vector")
	t.Setenv("LOCKICON_MINIFY_SVG", "true")

	cfg, err := ParseConfig(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Config{OutDir: "icons", Variant: VariantVector, MinifySVG: true}, cfg)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LOCKICON_OUT_DIR", "icons")
	t.Setenv("LOCKICON_VARIANT", "vector")

	cfg, err := ParseConfig(newTestFlagSet(), []string{"-out", "build/icons", "-variant", "raster"})
	require.NoError(t, err)
	assert.Equal(t, "build/icons", cfg.OutDir)
	assert.Equal(t, VariantRaster, cfg.Variant)
}

func TestParseConfigBadVariant(t *testing.T) {
	_, err := ParseConfig(newTestFlagSet(), []string{"-variant", "bitmap"})
	assert.Error(t, err)

	t.Setenv("LOCKICON_VARIANT", "bitmap")
	_, err = ParseConfig(newTestFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseConfigRejectsArguments(t *testing.T) {
	_, err := ParseConfig(newTestFlagSet(), []string{"icon.png"})
	assert.Error(t, err)
}

func TestVariantUnmarshalText(t *testing.T) {
	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("vector")))
	assert.Equal(t, VariantVector, v)
	assert.ErrorIs(t, v.UnmarshalText([]byte("gif")), ErrUnknownVariant)
	assert.Equal(t, VariantVector, v)
}
