// Package game provides the session state machine, player intents and the
// terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StateSpellSelecting is the pre-battle point allocation phase.
	StateSpellSelecting State = iota
	// StateInBattle is the turn-based battle.
	StateInBattle
	// StateBattleOver is reached once a wizard has died.
	StateBattleOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSpellSelecting:
		return "spell_selecting"
	case StateInBattle:
		return "in_battle"
	case StateBattleOver:
		return "battle_over"
	default:
		return "unknown"
	}
}

// Control is a battle control page: the kind of action being prepared.
type Control int

const (
	ControlMovement Control = iota
	ControlSpell

	ControlCount = 2
)

// String returns the page name.
func (c Control) String() string {
	switch c {
	case ControlMovement:
		return "movement"
	case ControlSpell:
		return "spell"
	default:
		return "unknown"
	}
}

// Cycle returns the next page forward or backward, wrapping at both ends.
func (c Control) Cycle(forward bool) Control {
	step := -1
	if forward {
		step = 1
	}
	return Control(((int(c)+step)%ControlCount + ControlCount) % ControlCount)
}
