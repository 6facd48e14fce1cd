// Package combat provides the turn-based battle engine: reachability,
// movement, spell targeting and spell resolution on a toroidal board.
package combat

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/wizardfight/internal/entity"
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/logger"
	"github.com/samdwyer/wizardfight/internal/world"
)

// StartPositions are the tiles wizards occupy when a battle begins, by player.
var StartPositions = [entity.PlayerCount]world.Position{{X: 0, Y: 0}, {X: 1, Y: 0}}

// Battle owns the board and everything on it.
// All mutation goes through Battle methods, which keep each entity's
// Position field and the board occupancy in step.
type Battle struct {
	size        world.Size
	board       *world.Board
	wizards     []*entity.Wizard
	projectiles []*entity.Projectile
	current     int
	turn        int
	reachable   map[world.Position]struct{}
	spells      *gamedata.SpellRegistry
	log         *logrus.Entry
}

// NewBattle creates a battle from a finished spell selection.
// Player i fights for team i from StartPositions[i].
func NewBattle(size world.Size, sel *entity.SpellSelect, spells *gamedata.SpellRegistry) (*Battle, error) {
	if len(sel.Players) != entity.PlayerCount {
		return nil, fmt.Errorf("battle needs %d players, got %d", entity.PlayerCount, len(sel.Players))
	}
	wizards := make([]*entity.Wizard, len(sel.Players))
	for i, choice := range sel.Players {
		start := size.Wrap(StartPositions[i].X, StartPositions[i].Y)
		wizards[i] = entity.NewWizard(entity.Team(i), start, choice)
	}
	return New(size, spells, wizards...)
}

// New creates a battle with the given wizards at their current positions.
// Wizard 0 acts first.
func New(size world.Size, spells *gamedata.SpellRegistry, wizards ...*entity.Wizard) (*Battle, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", size.Width, size.Height)
	}
	if len(wizards) == 0 {
		return nil, fmt.Errorf("battle needs at least one wizard")
	}
	if spells == nil {
		return nil, fmt.Errorf("battle needs a spell registry")
	}

	b := &Battle{
		size:    size,
		board:   world.NewBoard(size),
		wizards: wizards,
		spells:  spells,
		log:     logger.Component("combat"),
	}
	for i, w := range wizards {
		w.Position = size.Wrap(w.Position.X, w.Position.Y)
		if err := b.board.Place(w.Position, world.Wizard(i)); err != nil {
			return nil, fmt.Errorf("wizard %d: %w", i, err)
		}
	}
	b.refreshReachable()
	return b, nil
}

// =============================================================================
// Read-only queries
// =============================================================================

// Size returns the board dimensions.
func (b *Battle) Size() world.Size { return b.size }

// Turn returns the number of completed turns.
func (b *Battle) Turn() int { return b.turn }

// Spells returns the spell registry the battle resolves against.
func (b *Battle) Spells() *gamedata.SpellRegistry { return b.spells }

// EntityAt returns the occupant of p, if any.
func (b *Battle) EntityAt(p world.Position) (world.Entity, bool) {
	return b.board.At(p)
}

// WizardCount returns the number of wizards in the battle.
func (b *Battle) WizardCount() int { return len(b.wizards) }

// Wizard returns a copy of wizard i.
func (b *Battle) Wizard(i int) (entity.Wizard, error) {
	if i < 0 || i >= len(b.wizards) {
		return entity.Wizard{}, fmt.Errorf("wizard %d: %w", i, ErrOutOfRange)
	}
	return *b.wizards[i], nil
}

// ActiveIndex returns the index of the wizard whose turn it is.
func (b *Battle) ActiveIndex() int { return b.current }

// ActiveWizard returns a copy of the wizard whose turn it is.
func (b *Battle) ActiveWizard() entity.Wizard { return *b.wizards[b.current] }

// ProjectileCount returns the number of projectiles ever created, spent ones included.
func (b *Battle) ProjectileCount() int { return len(b.projectiles) }

// Projectile returns a copy of projectile i.
func (b *Battle) Projectile(i int) (entity.Projectile, error) {
	if i < 0 || i >= len(b.projectiles) {
		return entity.Projectile{}, fmt.Errorf("projectile %d: %w", i, ErrOutOfRange)
	}
	return *b.projectiles[i], nil
}

// CanMove returns true if the active wizard may move to p this turn.
func (b *Battle) CanMove(p world.Position) bool {
	_, ok := b.reachable[b.size.Wrap(p.X, p.Y)]
	return ok
}

// Reachable returns the active wizard's reachable tiles in row-major order.
func (b *Battle) Reachable() []world.Position {
	out := make([]world.Position, 0, len(b.reachable))
	for p := range b.reachable {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, c world.Position) int {
		return b.size.Index(a) - b.size.Index(c)
	})
	return out
}

// Over returns true once any wizard has died.
func (b *Battle) Over() bool {
	for _, w := range b.wizards {
		if w.IsDead() {
			return true
		}
	}
	return false
}

// Winner returns the only team with living wizards once the battle is over.
// A battle in which every wizard died has no winner.
func (b *Battle) Winner() (entity.Team, bool) {
	if !b.Over() {
		return 0, false
	}
	var alive [entity.TeamCount]bool
	for _, w := range b.wizards {
		if w.IsAlive() {
			alive[w.Team] = true
		}
	}
	switch {
	case alive[entity.TeamRed] && !alive[entity.TeamBlue]:
		return entity.TeamRed, true
	case alive[entity.TeamBlue] && !alive[entity.TeamRed]:
		return entity.TeamBlue, true
	default:
		return 0, false
	}
}

// =============================================================================
// Turn flow
// =============================================================================

// EndTurn finishes the active wizard's turn.
// The acting wizard's effects age, every live projectile flies and ages, and
// the next living wizard becomes active.
func (b *Battle) EndTurn() error {
	if b.Over() {
		return ErrBattleOver
	}
	b.wizards[b.current].DecrementEffects()
	b.advanceProjectiles()
	b.turn++

	for i := 1; i <= len(b.wizards); i++ {
		next := (b.current + i) % len(b.wizards)
		if b.wizards[next].IsAlive() {
			b.current = next
			break
		}
	}

	b.refreshReachable()
	b.log.WithFields(logrus.Fields{
		"turn":   b.turn,
		"wizard": b.current,
	}).Debug("turn ended")
	return nil
}

// AddProjectile places p on the board and returns its index.
func (b *Battle) AddProjectile(p *entity.Projectile) (int, error) {
	p.Position = b.size.Wrap(p.Position.X, p.Position.Y)
	index := len(b.projectiles)
	if err := b.board.Place(p.Position, world.Projectile(index)); err != nil {
		return 0, err
	}
	b.projectiles = append(b.projectiles, p)
	b.refreshReachable()
	return index, nil
}

// relocate moves wizard i to an empty dest and keeps the board in step.
func (b *Battle) relocate(i int, dest world.Position) {
	w := b.wizards[i]
	if w.Position == dest {
		return
	}
	b.board.Swap(w.Position, dest)
	w.Position = dest
}
