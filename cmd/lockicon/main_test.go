package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesIcons(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-out", dir}, &out))

	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), name)
	}
	assert.Contains(t, out.String(), "All icons were created successfully!")
}

func TestRunVector(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-out", dir, "-variant", "vector"}, &out))

	for _, name := range []string{"icon16.svg", "icon16.txt", "icon48.svg", "icon48.txt", "icon128.svg", "icon128.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, out.String(), "To use these with Chrome:")
}

func TestRunBadFlag(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-variant", "gif"}, &out))
}
