package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wizardfight/internal/world"
)

// Highlight classifies a board tile for the battle screen.
// Higher values win when several apply.
type Highlight int

const (
	HighlightNone Highlight = iota
	// HighlightCandidate: reachable for movement or passes the spell's filter.
	HighlightCandidate
	// HighlightArea: inside the spell's area or valid for the next pick.
	HighlightArea
	// HighlightSelected: already picked.
	HighlightSelected
	// HighlightHovered: under the mouse.
	HighlightHovered
)

// String returns the highlight name.
func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightCandidate:
		return "candidate"
	case HighlightArea:
		return "area"
	case HighlightSelected:
		return "selected"
	case HighlightHovered:
		return "hovered"
	default:
		return "unknown"
	}
}

// Background returns the tile background for h.
func (h Highlight) Background() tcell.Color {
	switch h {
	case HighlightCandidate:
		return tcell.ColorDarkGreen
	case HighlightArea:
		return tcell.ColorDarkRed
	case HighlightSelected:
		return tcell.ColorOrange
	case HighlightHovered:
		return tcell.ColorYellow
	default:
		return tcell.ColorBlack
	}
}

// Board layout on screen. Each tile is cellWidth columns wide.
const (
	boardLeft = 1
	boardTop  = 1
	cellWidth = 2
)

// TileAt maps a screen cell to the board tile drawn there.
func TileAt(sx, sy int, size world.Size) (world.Position, bool) {
	if sx < boardLeft || sy < boardTop {
		return world.Position{}, false
	}
	x := (sx - boardLeft) / cellWidth
	y := sy - boardTop
	if !size.Contains(x, y) {
		return world.Position{}, false
	}
	return world.Position{X: x, Y: y}, true
}

// ScreenAt returns the screen cell where tile p is drawn.
func ScreenAt(p world.Position) (sx, sy int) {
	return boardLeft + p.X*cellWidth, boardTop + p.Y
}
