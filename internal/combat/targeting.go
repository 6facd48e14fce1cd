package combat

import (
	"fmt"

	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

// Target is the input gathered for a spell before it is confirmed.
type Target struct {
	Direction    world.Direction
	HasDirection bool
	Tiles        []world.Position
}

// NoTarget is the input of spells that need none.
func NoTarget() Target { return Target{} }

// DirectionTarget aims along d at tile.
func DirectionTarget(d world.Direction, tile world.Position) Target {
	return Target{Direction: d, HasDirection: true, Tiles: []world.Position{tile}}
}

// TilesTarget picks tiles in order.
func TilesTarget(tiles ...world.Position) Target {
	return Target{Tiles: tiles}
}

// caster returns the active wizard's tile.
func (b *Battle) caster() world.Position {
	return b.wizards[b.current].Position
}

// AreaContains reports whether tile lies in the area of a no-input shape,
// measured from the active wizard.
func (b *Battle) AreaContains(shape gamedata.ShapeID, tile world.Position) bool {
	c := b.caster()
	switch shape {
	case gamedata.ShapeSelf:
		return b.size.Index(tile) == b.size.Index(c)
	case gamedata.ShapeAura:
		d := b.size.Manhattan(c, tile)
		return d >= 1 && d <= gamedata.AuraRange
	case gamedata.ShapeBurst:
		return b.size.Chebyshev(c, tile) == 1
	default:
		return false
	}
}

// DirectionHits reports whether tile is a legal target along d for a
// direction shape, measured from the active wizard.
func (b *Battle) DirectionHits(shape gamedata.ShapeID, d world.Direction, tile world.Position) bool {
	if !d.Valid() {
		return false
	}
	c := b.caster()
	switch shape {
	case gamedata.ShapeSpear:
		return b.alongLine(c, d, tile, gamedata.SpearRange)
	case gamedata.ShapeFlame:
		return b.alongLine(c, d, tile, gamedata.FlameRange)
	case gamedata.ShapeStep:
		return b.size.Index(tile) == b.size.Index(b.size.Step(c, d))
	default:
		return false
	}
}

// alongLine: tile is aligned with from, 1..reach away, on d's side.
func (b *Battle) alongLine(from world.Position, d world.Direction, tile world.Position, reach int) bool {
	dx, dy := b.size.Offset(from, tile)
	if !d.Agrees(dx, dy) {
		return false
	}
	dist := b.size.Manhattan(from, tile)
	return dist >= 1 && dist <= reach
}

// PairHolds reports whether a later pick is compatible with the first pick
// for a position shape.
func (b *Battle) PairHolds(shape gamedata.ShapeID, first, later world.Position) bool {
	switch shape {
	case gamedata.ShapeSnap:
		return b.size.Index(first) == b.size.Index(later)
	case gamedata.ShapeSpread:
		return b.size.Manhattan(first, later) <= gamedata.SpreadRange
	case gamedata.ShapeSquare:
		return b.size.Chebyshev(first, later) <= gamedata.SquareRadius
	case gamedata.ShapeRing:
		return b.ringHolds(first, later)
	default:
		return false
	}
}

// ringHolds: both tiles sit on the same ring around the caster and are at
// most RingMaxSpan apart along it.
func (b *Battle) ringHolds(first, later world.Position) bool {
	c := b.caster()
	r := b.size.Chebyshev(c, first)
	if r < 1 || r > gamedata.RingMaxRange || b.size.Chebyshev(c, later) != r {
		return false
	}
	a := b.ringAngleOf(c, first, r)
	z := b.ringAngleOf(c, later, r)
	return ringDistance(a, z, r) <= gamedata.RingMaxSpan
}

func (b *Battle) ringAngleOf(center, tile world.Position, r int) int {
	dx, dy := b.size.Offset(center, tile)
	return ringAngle(dx, dy, r)
}

// ringAngle maps an offset on the square ring of radius r to 0..8r-1,
// walking clockwise from the top-left corner.
func ringAngle(dx, dy, r int) int {
	var a int
	switch {
	case dy == -r:
		a = dx + r
	case dx == r:
		a = 3*r + dy
	case dy == r:
		a = 5*r - dx
	default:
		a = 7*r - dy
	}
	return mod(a, 8*r)
}

// ringOffset is the inverse of ringAngle.
func ringOffset(a, r int) (dx, dy int) {
	a = mod(a, 8*r)
	switch {
	case a < 2*r:
		return a - r, -r
	case a < 4*r:
		return r, a - 3*r
	case a < 6*r:
		return 5*r - a, r
	default:
		return -r, 7*r - a
	}
}

// ringDistance is the shorter way round between two ring angles.
func ringDistance(a, z, r int) int {
	d := mod(z-a, 8*r)
	return min(d, 8*r-d)
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

// ValidateTarget checks that target is complete and legal for spell cast by
// the active wizard. Predicates run in pick order.
func (b *Battle) ValidateTarget(spell gamedata.Spell, target Target) error {
	if !spell.Valid() {
		return fmt.Errorf("spell %d: %w", spell, ErrOutOfRange)
	}
	tg := spell.Targeting()
	if tg.Shape == gamedata.ShapeDisabled {
		return fmt.Errorf("%s: %w", spell, ErrNotImplemented)
	}

	switch tg.Kind {
	case gamedata.InputNone:
		if target.HasDirection || len(target.Tiles) > 0 {
			return fmt.Errorf("%s takes no input: %w", spell, ErrWrongInputKind)
		}
		return nil

	case gamedata.InputDirection:
		if len(target.Tiles) > 1 {
			return fmt.Errorf("%s takes one tile, got %d: %w", spell, len(target.Tiles), ErrWrongInputKind)
		}
		if !target.HasDirection || len(target.Tiles) == 0 {
			return fmt.Errorf("%s needs a direction and a tile: %w", spell, ErrIncompleteSelection)
		}
		if !b.DirectionHits(tg.Shape, target.Direction, target.Tiles[0]) {
			return fmt.Errorf("%s %s at %s: %w", spell, target.Direction, target.Tiles[0], ErrPredicateFailed)
		}
		return nil

	case gamedata.InputPosition:
		if target.HasDirection {
			return fmt.Errorf("%s takes no direction: %w", spell, ErrWrongInputKind)
		}
		switch n := len(target.Tiles); {
		case n < tg.Count:
			return fmt.Errorf("%s needs %d tiles, got %d: %w", spell, tg.Count, n, ErrIncompleteSelection)
		case n > tg.Count:
			return fmt.Errorf("%s takes %d tiles, got %d: %w", spell, tg.Count, n, ErrWrongInputKind)
		}
		first := target.Tiles[0]
		if !b.FilterHolds(tg.Filter, first) {
			return fmt.Errorf("%s first pick %s: %w", spell, first, ErrPredicateFailed)
		}
		if tg.Count == 1 {
			if !b.PairHolds(tg.Shape, b.caster(), first) {
				return fmt.Errorf("%s pick %s: %w", spell, first, ErrPredicateFailed)
			}
			return nil
		}
		for _, later := range target.Tiles[1:] {
			if !b.PairHolds(tg.Shape, first, later) {
				return fmt.Errorf("%s pick %s against %s: %w", spell, later, first, ErrPredicateFailed)
			}
		}
		return nil

	default:
		return fmt.Errorf("%s input kind %d: %w", spell, tg.Kind, ErrWrongInputKind)
	}
}
