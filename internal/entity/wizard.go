package entity

import (
	"fmt"

	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

const (
	// StartingHealth is every wizard's health when a battle begins.
	StartingHealth = 100
	// StartingMana is every wizard's mana when a battle begins.
	StartingMana = 100
)

// Wizard is a combat unit.
// Wizards are never removed from a battle; a dead wizard has zero health.
type Wizard struct {
	Team       Team
	Health     int
	Mana       int
	Resistance int // Subtracted twice from colliding projectile damage
	Position   world.Position
	Effects    Effects
	Spells     []gamedata.Spell
}

// NewWizard creates a wizard for team at pos knowing the spells unlocked by choice.
func NewWizard(team Team, pos world.Position, choice SpellChoice) *Wizard {
	return &Wizard{
		Team:     team,
		Health:   StartingHealth,
		Mana:     StartingMana,
		Position: pos,
		Spells:   choice.Spells(),
	}
}

// IsDead returns true once health reaches zero.
func (w *Wizard) IsDead() bool { return w.Health == 0 }

// IsAlive returns true if the wizard has health remaining.
func (w *Wizard) IsAlive() bool { return w.Health > 0 }

// HasEffect returns true if e is active on the wizard.
func (w *Wizard) HasEffect(e Effect) bool { return w.Effects.Has(e) }

// ApplyEffect activates e for turns turns.
func (w *Wizard) ApplyEffect(e Effect, turns int) { w.Effects.Apply(e, turns) }

// DecrementEffects ages every active effect by one turn.
func (w *Wizard) DecrementEffects() { w.Effects.Decrement() }

// TakeDamage reduces health and returns the damage actually taken.
// Stone skin halves the damage (rounding down); health never drops below zero.
func (w *Wizard) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if w.HasEffect(EffectStoneSkin) {
		amount /= 2
	}
	actual := min(amount, w.Health)
	w.Health -= actual
	return actual
}

// SpendMana reduces mana and returns false if there is not enough.
func (w *Wizard) SpendMana(amount int) bool {
	if amount < 0 || w.Mana < amount {
		return false
	}
	w.Mana -= amount
	return true
}

// Knows returns true if s is in the wizard's spell list.
func (w *Wizard) Knows(s gamedata.Spell) bool {
	for _, known := range w.Spells {
		if known == s {
			return true
		}
	}
	return false
}

// SpellAt returns the i-th known spell.
func (w *Wizard) SpellAt(i int) (gamedata.Spell, error) {
	if i < 0 || i >= len(w.Spells) {
		return 0, fmt.Errorf("spell slot %d of %d: %w", i, len(w.Spells), gamedata.ErrUnknownSpell)
	}
	return w.Spells[i], nil
}

// MovementDepth returns how many steps the wizard may walk this turn.
// Base depth 2; circulation doubles, then haste doubles, then stagnation halves.
func (w *Wizard) MovementDepth() int {
	depth := BaseMovementDepth
	if w.HasEffect(EffectCirculation) {
		depth *= 2
	}
	if w.HasEffect(EffectHaste) {
		depth *= 2
	}
	if w.HasEffect(EffectStagnation) {
		depth /= 2
	}
	return depth
}

// BaseMovementDepth is the walking range without effects.
const BaseMovementDepth = 2
