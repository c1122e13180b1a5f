package i

import "context"

// MazeCache stores rendered mazes by key.
type MazeCache interface {
	// Remember returns the value stored under key, calling gen and storing its result on a miss.
	// The boolean reports whether the value came from the cache.
	Remember(ctx context.Context, key string, gen func() (string, error)) (string, bool, error)
}
