package inventory

import (
	"errors"
	"fmt"

	"cursedwarden/internal/domain/shape"
)

// Validation errors are expected and recoverable: the grid is never
// mutated when one is returned. Each sentinel has a typed counterpart
// carrying the offending cell so the UI can highlight it.
var (
	ErrOutOfBounds        = errors.New("placement out of bounds")
	ErrLockedCell         = errors.New("placement over locked cell")
	ErrOverlap            = errors.New("placement overlaps existing item")
	ErrItemNotFound       = errors.New("placed item not found")
	ErrUnknownOrientation = errors.New("unknown shape orientation")
)

// ErrCorruptSave marks a save record whose placements cannot be replayed
// onto an empty grid. Loading it is fatal for the load operation: the
// caller keeps its previous inventory.
var ErrCorruptSave = errors.New("corrupt inventory save")

type OutOfBoundsError struct {
	Cell shape.Cell
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: (%d,%d)", ErrOutOfBounds.Error(), e.Cell.Row, e.Cell.Col)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

type LockedCellError struct {
	Cell shape.Cell
}

func (e *LockedCellError) Error() string {
	return fmt.Sprintf("%s: (%d,%d)", ErrLockedCell.Error(), e.Cell.Row, e.Cell.Col)
}

func (e *LockedCellError) Unwrap() error { return ErrLockedCell }

// OverlapError reports the first conflicting cell and its occupant.
type OverlapError struct {
	Cell     shape.Cell
	Occupant PlacedID
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: (%d,%d) held by item %d", ErrOverlap.Error(), e.Cell.Row, e.Cell.Col, e.Occupant)
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }

type NotFoundError struct {
	ID PlacedID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrItemNotFound.Error(), e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrItemNotFound }
