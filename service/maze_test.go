package service

import (
	"context"
	"errors"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct {
	warnings []string
}

func (l *nopLogger) Info(string)        {}
func (l *nopLogger) Warning(msg string) { l.warnings = append(l.warnings, msg) }
func (l *nopLogger) Error(string)       {}

type memoryCache struct {
	values map[string]string
	calls  int
	err    error
}

func (c *memoryCache) Remember(_ context.Context, key string, gen func() (string, error)) (string, bool, error) {
	c.calls++
	if c.err != nil {
		return "", false, c.err
	}
	if v, ok := c.values[key]; ok {
		return v, true, nil
	}
	v, err := gen()
	if err != nil {
		return "", false, err
	}
	c.values[key] = v
	return v, false, nil
}

func TestNewMazeService(t *testing.T) {
	t.Run("requires logger", func(t *testing.T) {
		_, err := NewMazeService(nil, nil, nil)
		assert.ErrorIs(t, err, ErrNilLogger)
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc, err := NewMazeService(nil, &nopLogger{}, nil)
		require.NoError(t, err)
		gen := svc.(*MazeGen)
		assert.Equal(t, defaultPrefix, gen.opts.Prefix)
		assert.Equal(t, maze.DefaultPassChar, gen.opts.PassChar)
		assert.Equal(t, maze.DefaultWallChar, gen.opts.WallChar)
	})
}

func TestMazeGenGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("unseeded request reports its seed", func(t *testing.T) {
		svc, err := NewMazeService(nil, &nopLogger{}, nil)
		require.NoError(t, err)

		res, err := svc.Generate(ctx, i.MazeRequest{Rows: 9, Columns: 11})
		require.NoError(t, err)
		assert.NotZero(t, res.Seed)
		assert.False(t, res.Cached)

		again, err := svc.Generate(ctx, i.MazeRequest{Rows: 9, Columns: 11, Seed: res.Seed})
		require.NoError(t, err)
		assert.Equal(t, res.Maze, again.Maze)
		assert.NotEqual(t, res.ID, again.ID)
	})

	t.Run("uses configured characters", func(t *testing.T) {
		svc, err := NewMazeService(nil, &nopLogger{}, &Options{PassChar: '.', WallChar: 'X'})
		require.NoError(t, err)

		res, err := svc.Generate(ctx, i.MazeRequest{Rows: 3, Columns: 3})
		require.NoError(t, err)
		assert.Equal(t, "XXX\nX.X\nXXX\n", res.Maze)

		res, err = svc.Generate(ctx, i.MazeRequest{Rows: 3, Columns: 3, WallChar: '@'})
		require.NoError(t, err)
		assert.Equal(t, "@@@\n@.@\n@@@\n", res.Maze)
	})

	t.Run("seeded requests hit the cache", func(t *testing.T) {
		cache := &memoryCache{values: map[string]string{}}
		svc, err := NewMazeService(cache, &nopLogger{}, nil)
		require.NoError(t, err)

		req := i.MazeRequest{Rows: 15, Columns: 15, Seed: 5}
		first, err := svc.Generate(ctx, req)
		require.NoError(t, err)
		assert.False(t, first.Cached)

		second, err := svc.Generate(ctx, req)
		require.NoError(t, err)
		assert.True(t, second.Cached)
		assert.Equal(t, first.Maze, second.Maze)
		assert.Len(t, cache.values, 1)
		assert.Contains(t, cache.values, "maze:15x15:32:35:5")
	})

	t.Run("unseeded requests skip the cache", func(t *testing.T) {
		cache := &memoryCache{values: map[string]string{}}
		svc, err := NewMazeService(cache, &nopLogger{}, nil)
		require.NoError(t, err)

		_, err = svc.Generate(ctx, i.MazeRequest{Rows: 5, Columns: 5})
		require.NoError(t, err)
		assert.Zero(t, cache.calls)
	})

	t.Run("falls back when the cache fails", func(t *testing.T) {
		log := &nopLogger{}
		cache := &memoryCache{err: errors.New("connection refused")}
		svc, err := NewMazeService(cache, log, nil)
		require.NoError(t, err)

		res, err := svc.Generate(ctx, i.MazeRequest{Rows: 5, Columns: 5, Seed: 1})
		require.NoError(t, err)
		assert.Len(t, res.Maze, 30)
		assert.Len(t, log.warnings, 1)
	})

	t.Run("surfaces generation errors", func(t *testing.T) {
		cache := &memoryCache{values: map[string]string{}}
		svc, err := NewMazeService(cache, &nopLogger{}, &Options{MaxBytes: 16})
		require.NoError(t, err)

		_, err = svc.Generate(ctx, i.MazeRequest{Rows: 4, Columns: 5, Seed: 1})
		assert.ErrorIs(t, err, maze.ErrInvalidSize)

		_, err = svc.Generate(ctx, i.MazeRequest{Rows: 5, Columns: 5, Seed: 1})
		assert.ErrorIs(t, err, maze.ErrResourceExhausted)

		_, err = svc.Generate(ctx, i.MazeRequest{Rows: 5, Columns: 5})
		assert.ErrorIs(t, err, maze.ErrResourceExhausted)
		assert.Empty(t, cache.values)
	})
}
