package maze

// Coordinates represents the position of a cell in the maze grid.
type Coordinates struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Movement is a two-step jump from one cell-center to an adjacent one.
type Movement int

const (
	Up Movement = iota
	Down
	Right
	Left
)

// movementOrder is the order in which possible movements are collected.
var movementOrder = [...]Movement{Up, Down, Right, Left}

// String returns the direction name of the movement.
func (m Movement) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Apply returns the cell-center reached from c by moving in direction m.
func (m Movement) Apply(c Coordinates) Coordinates {
	switch m {
	case Up:
		c.Row -= 2
	case Down:
		c.Row += 2
	case Right:
		c.Col += 2
	case Left:
		c.Col -= 2
	}
	return c
}
