package entity

import "fmt"

// Effect is a timed status modifier on a wizard.
type Effect int

const (
	// EffectCirculation doubles movement depth.
	EffectCirculation Effect = iota
	// EffectHaste doubles movement depth again.
	EffectHaste
	// EffectStagnation halves movement depth.
	EffectStagnation
	// EffectStoneSkin halves incoming damage.
	EffectStoneSkin

	EffectCount = 4
)

// AllEffects returns every effect in index order.
func AllEffects() []Effect {
	return []Effect{EffectCirculation, EffectHaste, EffectStagnation, EffectStoneSkin}
}

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectCirculation:
		return "Circulation"
	case EffectHaste:
		return "Haste"
	case EffectStagnation:
		return "Stagnation"
	case EffectStoneSkin:
		return "Stone Skin"
	default:
		return "Unknown"
	}
}

// ID returns the identifier used in spells.json.
func (e Effect) ID() string {
	switch e {
	case EffectCirculation:
		return "circulation"
	case EffectHaste:
		return "haste"
	case EffectStagnation:
		return "stagnation"
	case EffectStoneSkin:
		return "stone_skin"
	default:
		return "unknown"
	}
}

// ParseEffect returns the effect with the given identifier.
func ParseEffect(id string) (Effect, error) {
	for _, e := range AllEffects() {
		if e.ID() == id {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q", id)
}

// Effects holds the remaining turns of every effect, indexed by Effect.
// A nonzero counter means the effect is active.
type Effects [EffectCount]int

// Has returns true if e has turns remaining.
func (fx *Effects) Has(e Effect) bool {
	return fx[e] > 0
}

// Apply sets e to last at least turns more turns.
// Reapplying never shortens an effect.
func (fx *Effects) Apply(e Effect, turns int) {
	if turns > fx[e] {
		fx[e] = turns
	}
}

// Decrement removes one turn from every effect, never going below zero.
func (fx *Effects) Decrement() {
	for i := range fx {
		if fx[i] > 0 {
			fx[i]--
		}
	}
}

// Active returns the active effects in index order.
func (fx *Effects) Active() []Effect {
	var out []Effect
	for _, e := range AllEffects() {
		if fx.Has(e) {
			out = append(out, e)
		}
	}
	return out
}
