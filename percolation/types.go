package percolation

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidArgument indicates a non-positive grid size.
	ErrInvalidArgument = errors.New("percolation: grid size must be positive")
	// ErrIndexOutOfBounds indicates row or col outside [1,N].
	ErrIndexOutOfBounds = errors.New("percolation: index out of bounds")
)

// siteState packs the three independent per-site facts.
// stateOpen is a true per-site fact; stateFull and stateBottom are only
// meaningful on the current union-find root of a component.
type siteState uint8

const (
	stateOpen siteState = 1 << iota
	stateFull
	stateBottom
)

// virtualTop is the linear index of the anchor above row 1.
const virtualTop = 0

// CellState is the externally visible state of a single cell.
type CellState int

const (
	// Closed cells have never been opened.
	Closed CellState = iota
	// Open cells are open but not connected to the top row.
	Open
	// Full cells are open and connected to the top row.
	Full
)

// String returns a short name for s.
func (s CellState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}
