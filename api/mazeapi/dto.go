// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import "github.com/google/uuid"

// MazeQuery holds the query parameters of a maze request.
type MazeQuery struct {
	Rows     int    `form:"rows" binding:"required"`
	Columns  int    `form:"columns" binding:"required"`
	PassChar string `form:"pass"`
	WallChar string `form:"wall"`
	Seed     int64  `form:"seed"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID      uuid.UUID `json:"id"`
	Rows    int       `json:"rows"`
	Columns int       `json:"columns"`
	Seed    int64     `json:"seed"`
	Cached  bool      `json:"cached"`
	Maze    string    `json:"maze"`
}
