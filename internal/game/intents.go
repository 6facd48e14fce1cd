package game

import (
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

// Intent is a discrete player input applied with Session.Apply.
type Intent interface {
	Name() string
}

// PointChange moves one spell point of Player into or out of Element.
type PointChange struct {
	Player    int
	Element   gamedata.Element
	Increment bool
}

// ConfirmSelection starts the battle once every point is allocated.
type ConfirmSelection struct{}

// HoverTile marks the tile under the pointer.
type HoverTile struct {
	X, Y int
}

// SelectTile picks a tile for the pending action.
type SelectTile struct {
	X, Y int
}

// CycleControlPage switches between the movement and spell pages.
type CycleControlPage struct {
	Forward bool
}

// ChooseSpell picks the active wizard's spell in slot Index.
type ChooseSpell struct {
	Index int
}

// SelectDirection aims the pending spell.
type SelectDirection struct {
	Direction world.Direction
}

// ConfirmAction runs the pending action of page Control.
type ConfirmAction struct {
	Control Control
}

func (PointChange) Name() string      { return "point_change" }
func (ConfirmSelection) Name() string { return "confirm_selection" }
func (HoverTile) Name() string        { return "hover_tile" }
func (SelectTile) Name() string       { return "select_tile" }
func (CycleControlPage) Name() string { return "cycle_control_page" }
func (ChooseSpell) Name() string      { return "choose_spell" }
func (SelectDirection) Name() string  { return "select_direction" }
func (ConfirmAction) Name() string    { return "confirm_action" }
