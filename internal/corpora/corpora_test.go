package corpora

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCompare(t *testing.T) {
	assert.Empty(t, defaultCompare("a\nb\n", "a\nb\n"))

	diff := defaultCompare("a\nc\n", "a\nb\n")
	assert.Contains(t, diff, "--- want")
	assert.Contains(t, diff, "+++ got")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.kt.err")

	require.NoError(t, write(path, "boom\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "boom\n", string(data))

	require.NoError(t, write(path, ""))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing an output that was never written is fine.
	require.NoError(t, write(path, ""))
}
