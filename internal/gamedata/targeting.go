package gamedata

import "errors"

// ErrUnknownSpell is returned for lookups outside the catalog.
var ErrUnknownSpell = errors.New("unknown spell")

// InputKind is the shape of input a spell needs before it can be confirmed.
type InputKind int

const (
	// InputNone needs no input; the shape only describes the area of effect.
	InputNone InputKind = iota
	// InputPosition needs Count picked tiles.
	InputPosition
	// InputDirection needs a direction and one tile on its trajectory.
	InputDirection
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "none"
	case InputPosition:
		return "position"
	case InputDirection:
		return "direction"
	default:
		return "unknown"
	}
}

// ShapeID names an exact targeting predicate.
// The predicate implementations live in the combat package.
type ShapeID int

const (
	// ShapeSelf: the caster's own tile.
	ShapeSelf ShapeID = iota
	// ShapeAura: Manhattan distance 1..2 from the caster.
	ShapeAura
	// ShapeBurst: the eight tiles around the caster.
	ShapeBurst
	// ShapeSpear: aligned with the caster, 1..6 tiles along the direction.
	ShapeSpear
	// ShapeFlame: aligned with the caster, 1..7 tiles along the direction.
	ShapeFlame
	// ShapeStep: exactly one step from the caster along the direction.
	ShapeStep
	// ShapeSnap: the later pick equals the first.
	ShapeSnap
	// ShapeSpread: picks within Manhattan distance 3 of each other.
	ShapeSpread
	// ShapeSquare: picks within Chebyshev distance 3 of each other.
	ShapeSquare
	// ShapeRing: picks on the same ring around the caster, close along it.
	ShapeRing
	// ShapeDisabled: never valid.
	ShapeDisabled
)

// String returns the shape name.
func (s ShapeID) String() string {
	switch s {
	case ShapeSelf:
		return "self"
	case ShapeAura:
		return "aura"
	case ShapeBurst:
		return "burst"
	case ShapeSpear:
		return "spear"
	case ShapeFlame:
		return "flame"
	case ShapeStep:
		return "step"
	case ShapeSnap:
		return "snap"
	case ShapeSpread:
		return "spread"
	case ShapeSquare:
		return "square"
	case ShapeRing:
		return "ring"
	case ShapeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Shape tuning shared by the predicates.
const (
	SpearRange   = 6
	FlameRange   = 7
	AuraRange    = 2
	SpreadRange  = 3
	SquareRadius = 3
	RingMaxSpan  = 2
	RingMaxRange = 3
)

// FilterID names a coarse reachability filter used for board highlighting.
// A filter answers "could this tile ever be a legal first pick" and is
// always a superset of the spell's exact predicate.
type FilterID int

const (
	// FilterSelf: only the caster's tile.
	FilterSelf FilterID = iota
	// FilterAdjacent: Chebyshev distance exactly 1.
	FilterAdjacent
	// FilterNear: Manhattan distance 1..2.
	FilterNear
	// FilterWithin5: Manhattan distance 1..5.
	FilterWithin5
	// FilterWithin7: Manhattan distance 1..7.
	FilterWithin7
	// FilterWithin10: Manhattan distance 1..10.
	FilterWithin10
	// FilterAligned: same row or column, 1..7 away.
	FilterAligned
	// FilterEnemyWithin7: Manhattan distance up to 7 and holding an enemy wizard.
	FilterEnemyWithin7
	// FilterRing: Chebyshev distance 1..3.
	FilterRing

	FilterCount = 9
)

// String returns the filter name.
func (f FilterID) String() string {
	switch f {
	case FilterSelf:
		return "self"
	case FilterAdjacent:
		return "adjacent"
	case FilterNear:
		return "near"
	case FilterWithin5:
		return "within_5"
	case FilterWithin7:
		return "within_7"
	case FilterWithin10:
		return "within_10"
	case FilterAligned:
		return "aligned"
	case FilterEnemyWithin7:
		return "enemy_within_7"
	case FilterRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Filters returns every filter id.
func Filters() []FilterID {
	out := make([]FilterID, FilterCount)
	for i := range out {
		out[i] = FilterID(i)
	}
	return out
}

// Targeting describes how a spell is aimed.
type Targeting struct {
	Kind   InputKind
	Count  int // Tiles to pick; only meaningful for InputPosition
	Shape  ShapeID
	Filter FilterID
}

// NeedsTiles returns the number of tiles a complete selection holds.
func (t Targeting) NeedsTiles() int {
	switch t.Kind {
	case InputPosition:
		return t.Count
	case InputDirection:
		return 1
	default:
		return 0
	}
}
