package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wizardfight/internal/gamedata"
)

const (
	// PointPool is the number of spell points each player distributes.
	PointPool = 6
	// MaxElementPoints is the most points one element can hold.
	MaxElementPoints = 4
	// PlayerCount is the number of players in a battle.
	PlayerCount = 2
)

// Allocation errors. Every specific error wraps ErrAllocationInvariant.
var (
	ErrAllocationInvariant = errors.New("allocation invariant violated")
	ErrExceedsElementCap   = fmt.Errorf("%w: element already holds %d points", ErrAllocationInvariant, MaxElementPoints)
	ErrPoolExhausted       = fmt.Errorf("%w: no unused points left", ErrAllocationInvariant)
	ErrNothingAllocated    = fmt.Errorf("%w: element holds no points", ErrAllocationInvariant)
	ErrUnknownPlayer       = errors.New("unknown player")
	ErrUnknownElement      = errors.New("unknown element")
)

// SpellChoice is one player's distribution of spell points.
// Water+Fire+Earth+Wind+Unused always equals PointPool.
type SpellChoice struct {
	Water  int
	Fire   int
	Earth  int
	Wind   int
	Unused int
}

// NewSpellChoice returns an empty allocation with the whole pool unused.
func NewSpellChoice() SpellChoice {
	return SpellChoice{Unused: PointPool}
}

// Points returns the points allocated to element e.
func (c *SpellChoice) Points(e gamedata.Element) int {
	if p := c.slot(e); p != nil {
		return *p
	}
	return 0
}

// Allocation returns the points per element in catalog order.
func (c *SpellChoice) Allocation() [gamedata.ElementCount]int {
	return [gamedata.ElementCount]int{c.Water, c.Fire, c.Earth, c.Wind}
}

// Increment moves one point from the pool into element e.
func (c *SpellChoice) Increment(e gamedata.Element) error {
	p := c.slot(e)
	if p == nil {
		return fmt.Errorf("element %d: %w", e, ErrUnknownElement)
	}
	if *p >= MaxElementPoints {
		return fmt.Errorf("%s: %w", e, ErrExceedsElementCap)
	}
	if c.Unused == 0 {
		return fmt.Errorf("%s: %w", e, ErrPoolExhausted)
	}
	*p++
	c.Unused--
	return nil
}

// Decrement moves one point from element e back into the pool.
func (c *SpellChoice) Decrement(e gamedata.Element) error {
	p := c.slot(e)
	if p == nil {
		return fmt.Errorf("element %d: %w", e, ErrUnknownElement)
	}
	if *p == 0 {
		return fmt.Errorf("%s: %w", e, ErrNothingAllocated)
	}
	*p--
	c.Unused++
	return nil
}

// Change increments or decrements element e.
func (c *SpellChoice) Change(e gamedata.Element, increment bool) error {
	if increment {
		return c.Increment(e)
	}
	return c.Decrement(e)
}

// Complete returns true once every point has been allocated.
func (c *SpellChoice) Complete() bool {
	return c.Unused == 0
}

// Spells returns the spells this allocation unlocks, in catalog order.
func (c *SpellChoice) Spells() []gamedata.Spell {
	return gamedata.SpellsFor(c.Allocation())
}

func (c *SpellChoice) slot(e gamedata.Element) *int {
	switch e {
	case gamedata.Water:
		return &c.Water
	case gamedata.Fire:
		return &c.Fire
	case gamedata.Earth:
		return &c.Earth
	case gamedata.Wind:
		return &c.Wind
	default:
		return nil
	}
}

// SpellSelect holds every player's allocation before a battle.
type SpellSelect struct {
	Players []SpellChoice
}

// NewSpellSelect returns a fresh selection for PlayerCount players.
func NewSpellSelect() *SpellSelect {
	players := make([]SpellChoice, PlayerCount)
	for i := range players {
		players[i] = NewSpellChoice()
	}
	return &SpellSelect{Players: players}
}

// Player returns the allocation of player i.
func (s *SpellSelect) Player(i int) (*SpellChoice, error) {
	if i < 0 || i >= len(s.Players) {
		return nil, fmt.Errorf("player %d: %w", i, ErrUnknownPlayer)
	}
	return &s.Players[i], nil
}

// Change increments or decrements element e for player.
func (s *SpellSelect) Change(player int, e gamedata.Element, increment bool) error {
	choice, err := s.Player(player)
	if err != nil {
		return err
	}
	return choice.Change(e, increment)
}

// Ready returns true once every player has allocated every point.
func (s *SpellSelect) Ready() bool {
	for i := range s.Players {
		if !s.Players[i].Complete() {
			return false
		}
	}
	return len(s.Players) > 0
}
