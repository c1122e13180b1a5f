package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes prefixed levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", config.ColorGreen, &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("cache disabled")
		l.Error("boom")

		out := buf.String()
		assert.Contains(t, out, config.ColorGreen+"[APP]"+config.ColorReset)
		assert.Contains(t, out, "[INFO] started")
		assert.Contains(t, out, "[WARNING] cache disabled")
		assert.Contains(t, out, "[ERROR]"+config.ColorReset+" boom")
	})

	t.Run("rejects empty prefix", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("rejects nil writer", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.Error(t, err)
	})
}
