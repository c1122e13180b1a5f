/*
Package maze generates perfect mazes as flat character grids.

A maze is carved with a randomized depth-first backtracker starting at cell (1, 1).
Cell-centers sit at odd rows and columns; the cells between two adjacent
cell-centers are connectors. Every carved cell bears the pass character, every
other cell the wall character, and the carved cells form a spanning tree.

The package performs no I/O. Generate returns the rendered text block and the
caller decides where it goes.
*/
package maze

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unsafe"
)

const (
	DefaultPassChar = ' '
	DefaultWallChar = '#'

	// DefaultMaxBytes caps the grid allocation when Config.MaxBytes is zero.
	DefaultMaxBytes int64 = 256 << 20

	minSide      = 3
	bytesPerCell = int64(unsafe.Sizeof(rune(0)))
)

var (
	ErrInvalidSize       = errors.New("invalid maze size")
	ErrResourceExhausted = errors.New("the size of the maze is too big")
)

// Config holds the parameters of a single generation run.
type Config struct {
	Rows     int          // Number of rows, odd and at least 3
	Columns  int          // Number of columns, odd and at least 3
	PassChar rune         // Character for passes, 0 means DefaultPassChar
	WallChar rune         // Character for walls, 0 means DefaultWallChar
	Seed     int64        // Seed for reproducible mazes (0 = random)
	Random   RandomSource // Random overrides Seed when set
	MaxBytes int64        // Grid allocation ceiling, 0 means DefaultMaxBytes
}

// Generator carves mazes with the recursive backtracker.
type Generator struct {
	rows     int
	columns  int
	passChar rune
	wallChar rune
	maxBytes int64
	rng      RandomSource
}

// New creates a generator from cfg, filling in defaults.
// Sizes are not checked until Generate is called.
func New(cfg Config) *Generator {
	g := &Generator{
		rows:     cfg.Rows,
		columns:  cfg.Columns,
		passChar: cfg.PassChar,
		wallChar: cfg.WallChar,
		maxBytes: cfg.MaxBytes,
		rng:      cfg.Random,
	}
	if g.passChar == 0 {
		g.passChar = DefaultPassChar
	}
	if g.wallChar == 0 {
		g.wallChar = DefaultWallChar
	}
	if g.maxBytes <= 0 {
		g.maxBytes = DefaultMaxBytes
	}
	if g.rng == nil {
		g.rng = NewRandomSource(cfg.Seed)
	}
	return g
}

// Generate carves a new maze and returns it as newline-terminated rows.
func (g *Generator) Generate() (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}

	grid, err := g.initGrid()
	if err != nil {
		return "", err
	}

	curr := Coordinates{Row: 1, Col: 1}
	grid[curr.Row][curr.Col] = g.passChar
	history := []Coordinates{curr}

	for len(history) > 0 {
		curr = history[len(history)-1]

		possible := g.possibleMovements(grid, curr)
		if len(possible) == 0 {
			history = history[:len(history)-1]
			continue
		}

		movement := possible[g.rng.Intn(len(possible))]
		next := movement.Apply(curr)
		g.carve(grid, curr, next)
		history = append(history, next)
	}

	return g.render(grid), nil
}

// validate checks the maze sides before anything is allocated.
func (g *Generator) validate() error {
	if g.rows < minSide || g.columns < minSide {
		return fmt.Errorf("%w: maze size cannot be less than %dx%d", ErrInvalidSize, minSide, minSide)
	}
	if isEven(g.rows) || isEven(g.columns) {
		return fmt.Errorf("%w: maze sides must be odd numbers", ErrInvalidSize)
	}
	return nil
}

// RequiredBytes returns the grid allocation size of a rows x columns maze.
func RequiredBytes(rows, columns int) *big.Int {
	n := new(big.Int).Mul(big.NewInt(int64(rows)), big.NewInt(int64(columns)))
	return n.Mul(n, big.NewInt(bytesPerCell))
}

// initGrid allocates the grid with every cell set to the wall character.
func (g *Generator) initGrid() ([][]rune, error) {
	required := RequiredBytes(g.rows, g.columns)
	if required.Cmp(big.NewInt(g.maxBytes)) > 0 {
		return nil, fmt.Errorf("%w: a %dx%d maze would require %s bytes",
			ErrResourceExhausted, g.rows, g.columns, required.String())
	}

	cells := make([]rune, g.rows*g.columns)
	for i := range cells {
		cells[i] = g.wallChar
	}

	grid := make([][]rune, g.rows)
	for r := range grid {
		grid[r] = cells[r*g.columns : (r+1)*g.columns : (r+1)*g.columns]
	}
	return grid, nil
}

// possibleMovements lists the movements from curr whose target is uncarved
// and lies at least one cell-width away from the border.
func (g *Generator) possibleMovements(grid [][]rune, curr Coordinates) []Movement {
	rowsLastIndex := len(grid) - 1
	columnsLastIndex := len(grid[curr.Row]) - 1

	possible := make([]Movement, 0, len(movementOrder))
	for _, m := range movementOrder {
		var inBounds bool
		switch m {
		case Up:
			inBounds = curr.Row >= 3
		case Down:
			inBounds = curr.Row <= rowsLastIndex-3
		case Right:
			inBounds = curr.Col <= columnsLastIndex-3
		case Left:
			inBounds = curr.Col >= 3
		}
		if !inBounds {
			continue
		}
		target := m.Apply(curr)
		if grid[target.Row][target.Col] != g.passChar {
			possible = append(possible, m)
		}
	}
	return possible
}

// carve sets every cell of the inclusive rectangle between from and to to the
// pass character.
func (g *Generator) carve(grid [][]rune, from, to Coordinates) {
	for r := min(from.Row, to.Row); r <= max(from.Row, to.Row); r++ {
		for c := min(from.Col, to.Col); c <= max(from.Col, to.Col); c++ {
			grid[r][c] = g.passChar
		}
	}
}

// render joins the grid rows with a trailing newline after each.
func (g *Generator) render(grid [][]rune) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func isEven(n int) bool {
	return n&1 == 0
}
