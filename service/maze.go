package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix = "maze"
	mazeKeyFmt    = "%s:%dx%d:%d:%d:%d"
)

var (
	ErrNilLogger = errors.New("maze service requires a logger")
)

// Options configures the maze service.
type Options struct {
	Prefix   string // Cache key prefix
	PassChar rune   // Pass character used when a request leaves it unset
	WallChar rune   // Wall character used when a request leaves it unset
	MaxBytes int64  // Grid allocation ceiling per maze
}

// MazeGen builds a fresh generator for every request and caches seeded renders.
type MazeGen struct {
	cache  i.MazeCache
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a maze service. A nil cache disables caching.
func NewMazeService(cache i.MazeCache, logger i.Logger, opts *Options) (i.MazeService, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.PassChar == 0 {
		opts.PassChar = maze.DefaultPassChar
	}

	if opts.WallChar == 0 {
		opts.WallChar = maze.DefaultWallChar
	}

	return &MazeGen{
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate renders the requested maze. Unseeded requests get a random seed,
// reported in the result, and are never served from the cache.
func (s *MazeGen) Generate(ctx context.Context, req i.MazeRequest) (*i.MazeResult, error) {
	cfg := maze.Config{
		Rows:     req.Rows,
		Columns:  req.Columns,
		PassChar: req.PassChar,
		WallChar: req.WallChar,
		Seed:     req.Seed,
		MaxBytes: s.opts.MaxBytes,
	}
	if cfg.PassChar == 0 {
		cfg.PassChar = s.opts.PassChar
	}
	if cfg.WallChar == 0 {
		cfg.WallChar = s.opts.WallChar
	}

	seeded := cfg.Seed != 0
	if !seeded {
		cfg.Seed = randomSeed()
	}

	var genErr error
	gen := func() (string, error) {
		out, err := maze.New(cfg).Generate()
		genErr = err
		return out, err
	}

	var (
		rendered string
		cached   bool
		err      error
	)
	if seeded && s.cache != nil {
		rendered, cached, err = s.cache.Remember(ctx, s.key(cfg), gen)
		if err != nil && genErr == nil {
			s.logger.Warning(fmt.Sprintf("Maze cache unavailable, generating directly: %v", err))
			rendered, err = gen()
		}
	} else {
		rendered, err = gen()
	}
	if err != nil {
		return nil, err
	}

	result := &i.MazeResult{
		ID:      uuid.New(),
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		Seed:    cfg.Seed,
		Cached:  cached,
		Maze:    rendered,
	}
	s.logger.Info(fmt.Sprintf("Maze %s generated (%dx%d, seed %d, cached %t)", result.ID, result.Rows, result.Columns, result.Seed, result.Cached))

	return result, nil
}

// key builds the cache key of a seeded maze configuration.
func (s *MazeGen) key(cfg maze.Config) string {
	return fmt.Sprintf(mazeKeyFmt, s.opts.Prefix, cfg.Rows, cfg.Columns, cfg.PassChar, cfg.WallChar, cfg.Seed)
}

// randomSeed returns a non-zero seed.
func randomSeed() int64 {
	for {
		if seed := rand.Int63(); seed != 0 {
			return seed
		}
	}
}
