package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
)

const mazeIDHeader = "X-Maze-ID"

// MazeController serves generated mazes.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller requires a maze service")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.generate)
		mazes.GET("/text", mc.generateText)
	}
}

// generate responds with the maze and its parameters as JSON.
func (mc *MazeController) generate(ctx *gin.Context) {
	res, ok := mc.run(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:      res.ID,
		Rows:    res.Rows,
		Columns: res.Columns,
		Seed:    res.Seed,
		Cached:  res.Cached,
		Maze:    res.Maze,
	})
}

// generateText responds with the bare maze text.
func (mc *MazeController) generateText(ctx *gin.Context) {
	res, ok := mc.run(ctx)
	if !ok {
		return
	}

	ctx.Header(mazeIDHeader, res.ID.String())
	ctx.String(http.StatusOK, "%s", res.Maze)
}

// run binds the query and generates the maze, writing an error response on failure.
func (mc *MazeController) run(ctx *gin.Context) (*i.MazeResult, bool) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	req, err := query.toRequest()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	res, err := mc.mazeService.Generate(ctx.Request.Context(), req)
	switch {
	case errors.Is(err, maze.ErrInvalidSize):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	case errors.Is(err, maze.ErrResourceExhausted):
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return nil, false
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, false
	}

	return res, true
}

// toRequest converts the query into a service request.
func (q MazeQuery) toRequest() (i.MazeRequest, error) {
	req := i.MazeRequest{
		Rows:    q.Rows,
		Columns: q.Columns,
		Seed:    q.Seed,
	}

	var err error
	if q.PassChar != "" {
		if req.PassChar, err = config.ParseChar(q.PassChar); err != nil {
			return req, fmt.Errorf("pass: %w", err)
		}
	}
	if q.WallChar != "" {
		if req.WallChar, err = config.ParseChar(q.WallChar); err != nil {
			return req, fmt.Errorf("wall: %w", err)
		}
	}

	return req, nil
}
