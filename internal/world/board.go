package world

import (
	"errors"
	"fmt"
)

// ErrCellOccupied is returned when placing onto a non-empty cell.
var ErrCellOccupied = errors.New("cell occupied")

// Board is a dense occupancy index over a toroidal grid.
// Each cell holds at most one entity reference. The board stores no entity
// payload; the owner keeps each entity's own position field in sync.
type Board struct {
	size  Size
	cells []Entity
}

// NewBoard creates an empty board of the given size.
func NewBoard(size Size) *Board {
	return &Board{
		size:  size,
		cells: make([]Entity, size.Cells()),
	}
}

// Size returns the board dimensions.
func (b *Board) Size() Size {
	return b.size
}

// At returns the entity at p, if any.
func (b *Board) At(p Position) (Entity, bool) {
	e := b.cells[b.size.Index(p)]
	return e, !e.IsEmpty()
}

// IsEmpty returns true if nothing occupies p.
func (b *Board) IsEmpty(p Position) bool {
	return b.cells[b.size.Index(p)].IsEmpty()
}

// Place puts e on p. The cell must be empty.
func (b *Board) Place(p Position, e Entity) error {
	i := b.size.Index(p)
	if !b.cells[i].IsEmpty() {
		return fmt.Errorf("place %s at %v: %w", e.Kind, p, ErrCellOccupied)
	}
	b.cells[i] = e
	return nil
}

// Remove clears p and returns what was there.
func (b *Board) Remove(p Position) Entity {
	i := b.size.Index(p)
	e := b.cells[i]
	b.cells[i] = Entity{}
	return e
}

// Swap exchanges the contents of two cells.
// Relocating an occupant onto an empty cell is a swap with that cell.
func (b *Board) Swap(a, c Position) {
	i, j := b.size.Index(a), b.size.Index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, e := range b.cells {
		if !e.IsEmpty() {
			n++
		}
	}
	return n
}
