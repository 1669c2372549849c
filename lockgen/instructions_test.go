package lockgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteInstructions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInstructions(&buf, 48))
	text := buf.String()

	assert.Contains(t, text, "48x48")
	assert.Contains(t, text, "#667eea")
	assert.Contains(t, text, "#764ba2")
	assert.Contains(t, text, "#ffffff")
	assert.Contains(t, text, ProductName)
}

func TestWriteInstructionsInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteInstructions(&buf, 0), ErrInvalidSize)
}
