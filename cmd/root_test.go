package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("prints to console", func(t *testing.T) {
		stdout, _, err := execute("3", "3", "-w", "#", "-p", " ")
		require.NoError(t, err)
		assert.Equal(t, "###\n# #\n###\n\n", stdout)
	})

	t.Run("custom characters", func(t *testing.T) {
		stdout, _, err := execute("3", "5", "--pass-char", ".", "--wall-char", "X")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "XXXXX\nX."))
	})

	t.Run("seed is reproducible", func(t *testing.T) {
		first, _, err := execute("21", "21", "--seed", "11", "-p", " ", "-w", "#")
		require.NoError(t, err)
		second, _, err := execute("21", "21", "--seed", "11", "-p", " ", "-w", "#")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		expected, err := maze.New(maze.Config{Rows: 21, Columns: 21, Seed: 11}).Generate()
		require.NoError(t, err)
		assert.Equal(t, expected+"\n", first)
	})

	t.Run("writes output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "maze.txt")
		stdout, _, err := execute("3", "3", "-o", path, "-p", " ", "-w", "#")
		require.NoError(t, err)
		assert.Empty(t, stdout)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "###\n# #\n###\n", string(data))
	})

	t.Run("invalid size", func(t *testing.T) {
		stdout, stderr, err := execute("4", "5")
		require.ErrorIs(t, err, maze.ErrInvalidSize)
		assert.Contains(t, stderr, "maze sides must be odd numbers")
		assert.NotContains(t, stdout+stderr, "Usage:")
	})

	t.Run("missing argument prints usage", func(t *testing.T) {
		stdout, stderr, err := execute("5")
		require.Error(t, err)
		assert.Contains(t, stderr, "accepts 2 arg(s)")
		assert.Contains(t, stdout+stderr, "Usage:")
	})

	t.Run("non-integer argument", func(t *testing.T) {
		_, stderr, err := execute("five", "5")
		require.Error(t, err)
		assert.Contains(t, stderr, "ROWS")
	})

	t.Run("bad character flag", func(t *testing.T) {
		_, _, err := execute("5", "5", "-w", "ab")
		assert.Error(t, err)
	})

	t.Run("version", func(t *testing.T) {
		stdout, _, err := execute("--version")
		require.NoError(t, err)
		assert.Contains(t, stdout, version)
	})
}
