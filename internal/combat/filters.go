package combat

import (
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

// FilterHolds evaluates a coarse targeting filter for tile, relative to the
// active wizard. Filters are cheap enough to run over every tile each frame.
func (b *Battle) FilterHolds(f gamedata.FilterID, tile world.Position) bool {
	c := b.caster()
	manhattan := b.size.Manhattan(c, tile)

	switch f {
	case gamedata.FilterSelf:
		return manhattan == 0
	case gamedata.FilterAdjacent:
		return b.size.Chebyshev(c, tile) == 1
	case gamedata.FilterNear:
		return within(manhattan, 2)
	case gamedata.FilterWithin5:
		return within(manhattan, 5)
	case gamedata.FilterWithin7:
		return within(manhattan, 7)
	case gamedata.FilterWithin10:
		return within(manhattan, 10)
	case gamedata.FilterAligned:
		dist := b.size.Distance(c, tile)
		return (dist.X == 0 || dist.Y == 0) && within(manhattan, gamedata.FlameRange)
	case gamedata.FilterEnemyWithin7:
		return manhattan <= 7 && b.holdsEnemy(tile)
	case gamedata.FilterRing:
		r := b.size.Chebyshev(c, tile)
		return r >= 1 && r <= gamedata.RingMaxRange
	default:
		return false
	}
}

// within: 1..n, never the caster's own tile.
func within(d, n int) bool {
	return d >= 1 && d <= n
}

func (b *Battle) holdsEnemy(tile world.Position) bool {
	e, ok := b.board.At(tile)
	if !ok || !e.IsWizard() {
		return false
	}
	return b.wizards[e.Index].Team != b.wizards[b.current].Team
}
