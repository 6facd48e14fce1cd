package combat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/wizardfight/internal/world"
)

// frontier is a BFS queue entry: a tile and the steps left from it.
type frontier struct {
	pos  world.Position
	left int
}

// refreshReachable recomputes the active wizard's reachable set.
func (b *Battle) refreshReachable() {
	b.reachable = b.reachableFrom(b.current)
}

// reachableFrom floods out from wizard i's tile up to its movement depth.
// Tiles holding another wizard or an impassable projectile are not entered.
func (b *Battle) reachableFrom(i int) map[world.Position]struct{} {
	w := b.wizards[i]
	visited := map[world.Position]struct{}{w.Position: {}}
	queue := []frontier{{pos: w.Position, left: w.MovementDepth()}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.left == 0 {
			continue
		}
		for _, d := range world.Directions() {
			next := b.size.Step(n.pos, d)
			if _, seen := visited[next]; seen {
				continue
			}
			if b.blocked(i, next) != nil {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, frontier{pos: next, left: n.left - 1})
		}
	}
	return visited
}

// blocked reports why wizard i may not stand on p, or nil if it may.
func (b *Battle) blocked(i int, p world.Position) error {
	e, ok := b.board.At(p)
	if !ok {
		return nil
	}
	switch e.Kind {
	case world.EntityWizard:
		if e.Index != i {
			return ErrOccupiedByUnit
		}
	case world.EntityProjectile:
		if !b.projectiles[e.Index].Passable {
			return ErrBlockedByImpassableProjectile
		}
	}
	return nil
}

// MoveUnit moves wizard i onto dest.
// Entering a passable projectile consumes it and deals its collision damage.
// Returns the damage the wizard took. A rejected move changes nothing.
func (b *Battle) MoveUnit(i int, dest world.Position) (int, error) {
	if i < 0 || i >= len(b.wizards) {
		return 0, fmt.Errorf("wizard %d: %w", i, ErrOutOfRange)
	}
	dest = b.size.Wrap(dest.X, dest.Y)
	if err := b.blocked(i, dest); err != nil {
		return 0, fmt.Errorf("wizard %d to %s: %w", i, dest, err)
	}

	taken := 0
	if e, ok := b.board.At(dest); ok && e.IsProjectile() {
		taken = b.collide(i, e.Index)
	}
	b.relocate(i, dest)
	b.refreshReachable()
	return taken, nil
}

// MoveActive moves the active wizard onto dest, which must be reachable.
func (b *Battle) MoveActive(dest world.Position) (int, error) {
	if b.Over() {
		return 0, ErrBattleOver
	}
	dest = b.size.Wrap(dest.X, dest.Y)
	if err := b.blocked(b.current, dest); err != nil {
		b.rejected("move", err, dest)
		return 0, fmt.Errorf("wizard %d to %s: %w", b.current, dest, err)
	}
	if !b.CanMove(dest) {
		b.rejected("move", ErrNotReachable, dest)
		return 0, fmt.Errorf("wizard %d to %s: %w", b.current, dest, ErrNotReachable)
	}

	taken, err := b.MoveUnit(b.current, dest)
	if err != nil {
		return 0, err
	}
	b.log.WithFields(logrus.Fields{
		"wizard": b.current,
		"x":      dest.X,
		"y":      dest.Y,
		"damage": taken,
	}).Debug("wizard moved")
	return taken, nil
}

func (b *Battle) rejected(action string, err error, p world.Position) {
	b.log.WithFields(logrus.Fields{
		"wizard": b.current,
		"action": action,
		"x":      p.X,
		"y":      p.Y,
		"reason": err.Error(),
	}).Debug("intent rejected")
}
