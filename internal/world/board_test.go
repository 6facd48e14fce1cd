package world

import (
	"errors"
	"testing"
)

func TestBoardPlaceAndAt(t *testing.T) {
	b := NewBoard(Size{Width: 10, Height: 8})

	if _, ok := b.At(Position{3, 4}); ok {
		t.Fatal("new board should be empty")
	}

	if err := b.Place(Position{3, 4}, Wizard(1)); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	e, ok := b.At(Position{3, 4})
	if !ok || e != Wizard(1) {
		t.Errorf("At() = %+v, %v; want wizard 1", e, ok)
	}

	err := b.Place(Position{3, 4}, Projectile(0))
	if !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Place() on occupied cell error = %v, want ErrCellOccupied", err)
	}
	if e, _ := b.At(Position{3, 4}); e != Wizard(1) {
		t.Errorf("failed Place() overwrote cell: %+v", e)
	}
}

func TestBoardWrappedLookup(t *testing.T) {
	b := NewBoard(Size{Width: 10, Height: 8})
	if err := b.Place(Position{0, 0}, Projectile(2)); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	e, ok := b.At(Position{10, 8})
	if !ok || e != Projectile(2) {
		t.Errorf("At(10,8) = %+v, %v; want projectile 2 via wrap", e, ok)
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard(Size{Width: 10, Height: 8})
	_ = b.Place(Position{1, 1}, Projectile(0))

	removed := b.Remove(Position{1, 1})
	if removed != Projectile(0) {
		t.Errorf("Remove() = %+v, want projectile 0", removed)
	}
	if !b.IsEmpty(Position{1, 1}) {
		t.Error("cell should be empty after Remove()")
	}
	if removed := b.Remove(Position{1, 1}); !removed.IsEmpty() {
		t.Errorf("Remove() on empty cell = %+v", removed)
	}
}

func TestBoardSwapRelocates(t *testing.T) {
	b := NewBoard(Size{Width: 10, Height: 8})
	_ = b.Place(Position{1, 1}, Wizard(0))

	b.Swap(Position{1, 1}, Position{2, 1})

	if !b.IsEmpty(Position{1, 1}) {
		t.Error("source should be empty after swap with empty cell")
	}
	if e, _ := b.At(Position{2, 1}); e != Wizard(0) {
		t.Errorf("destination = %+v, want wizard 0", e)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
}

func TestEntityKindString(t *testing.T) {
	tests := []struct {
		kind     EntityKind
		expected string
	}{
		{EntityNone, "none"},
		{EntityWizard, "wizard"},
		{EntityProjectile, "projectile"},
		{EntityKind(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("EntityKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
