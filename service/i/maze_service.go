package i

import (
	"context"

	"github.com/google/uuid"
)

// MazeRequest describes a maze to generate. Zero characters fall back to the configured defaults.
type MazeRequest struct {
	Rows     int
	Columns  int
	PassChar rune
	WallChar rune
	Seed     int64 // 0 means a fresh random maze
}

// MazeResult is a rendered maze and the parameters that produced it.
type MazeResult struct {
	ID      uuid.UUID
	Rows    int
	Columns int
	Seed    int64
	Cached  bool
	Maze    string
}

// MazeService generates rendered mazes.
type MazeService interface {
	Generate(ctx context.Context, req MazeRequest) (*MazeResult, error)
}
