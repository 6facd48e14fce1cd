// Package entity provides the combatants and objects that live on the board.
package entity

// Team is one of the two sides of a battle.
type Team int

const (
	TeamRed Team = iota
	TeamBlue

	TeamCount = 2
)

// String returns the team name.
func (t Team) String() string {
	switch t {
	case TeamRed:
		return "Red"
	case TeamBlue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// ID returns the team identifier used in teams.json.
func (t Team) ID() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}
