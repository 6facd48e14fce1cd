package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wizardfight/internal/combat"
	"github.com/samdwyer/wizardfight/internal/entity"
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

// SelectionScene is the state the spell selection screen draws.
type SelectionScene interface {
	Selection() *entity.SpellSelect
	Message() string
}

// BattleScene is the state the battle screen draws.
type BattleScene interface {
	Battle() *combat.Battle
	Highlight(p world.Position) Highlight
	PageName() string
	ChosenSlot() (int, bool)
	Direction() (world.Direction, bool)
	Message() string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen   *Screen
	teams    []gamedata.TeamDef
	elements []gamedata.ElementDef
	spells   *gamedata.SpellRegistry
}

// NewRenderer creates a renderer using the given display data.
func NewRenderer(screen *Screen, teams []gamedata.TeamDef, elements []gamedata.ElementDef, spells *gamedata.SpellRegistry) *Renderer {
	return &Renderer{
		screen:   screen,
		teams:    teams,
		elements: elements,
		spells:   spells,
	}
}

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// KeyHints lists the selection keys per player, indexed like gamedata.Elements.
var KeyHints = [entity.PlayerCount][gamedata.ElementCount][2]rune{
	{{'q', 'a'}, {'w', 's'}, {'e', 'd'}, {'r', 'f'}},
	{{'u', 'j'}, {'i', 'k'}, {'o', 'l'}, {'p', ';'}},
}

// RenderSelection draws the spell point allocation screen.
func (r *Renderer) RenderSelection(scene SelectionScene) {
	r.screen.Clear()
	y := boardTop
	r.screen.DrawText(boardLeft, y, "Spell selection", titleStyle)
	y += 2

	sel := scene.Selection()
	for i := range sel.Players {
		choice := &sel.Players[i]
		team := entity.Team(i)
		r.screen.DrawText(boardLeft, y, fmt.Sprintf("Player %d (%s)", i+1, r.teamName(team)), r.teamStyle(team).Bold(true))
		y++
		for _, e := range gamedata.Elements() {
			points := choice.Points(e)
			bar := strings.Repeat("#", points) + strings.Repeat(".", entity.MaxElementPoints-points)
			keys := KeyHints[i][e]
			line := fmt.Sprintf("  %-6s [%s]  %c+ %c-", r.elementName(e), bar, keys[0], keys[1])
			r.screen.DrawText(boardLeft, y, line, r.elementStyle(e))
			y++
		}
		r.screen.DrawText(boardLeft, y, fmt.Sprintf("  Unused %d", choice.Unused), textStyle)
		y++

		x := boardLeft + 2
		for _, s := range choice.Spells() {
			element, _ := s.Requirement()
			x = r.screen.DrawText(x, y, s.String(), r.elementStyle(element)) + 2
		}
		y += 2
	}

	if sel.Ready() {
		r.screen.DrawText(boardLeft, y, "Enter to start the battle", titleStyle)
	} else {
		r.screen.DrawText(boardLeft, y, "Allocate every point to start", dimStyle)
	}
	r.screen.DrawText(boardLeft, y+2, scene.Message(), textStyle)
	r.screen.Show()
}

// RenderBattle draws the board, the wizards' status and the controls.
func (r *Renderer) RenderBattle(scene BattleScene) {
	r.screen.Clear()
	b := scene.Battle()
	size := b.Size()

	if !r.screen.Fits(size) {
		w, h := MinTerminal(size)
		r.screen.DrawText(0, 0, fmt.Sprintf("Terminal too small, need %dx%d", w, h), textStyle)
		r.screen.Show()
		return
	}

	for _, p := range size.Positions() {
		glyph, style := r.tileStyle(b, p)
		if h := scene.Highlight(p); h != HighlightNone {
			style = style.Background(h.Background())
		}
		r.screen.DrawCell(p, glyph, style)
	}

	x := boardLeft + size.Width*cellWidth + 2
	y := r.renderStatus(b, x, boardTop)
	r.renderControls(scene, x, y+1)

	r.screen.DrawText(boardLeft, boardTop+size.Height+1, scene.Message(), textStyle)
	r.screen.DrawText(boardLeft, boardTop+size.Height+2,
		"click: pick tile  tab: page  1-9: spell  arrows: direction  enter: confirm  esc: quit", dimStyle)
	r.screen.Show()
}

func (r *Renderer) renderStatus(b *combat.Battle, x, y int) int {
	r.screen.DrawText(x, y, fmt.Sprintf("Turn %d", b.Turn()+1), titleStyle)
	y++
	for i := 0; i < b.WizardCount(); i++ {
		w, err := b.Wizard(i)
		if err != nil {
			continue
		}
		marker := "  "
		if i == b.ActiveIndex() {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-5s HP %3d  MP %3d", marker, r.teamName(w.Team), w.Health, w.Mana)
		r.screen.DrawText(x, y, line, r.teamStyle(w.Team))
		y++
		if active := w.Effects.Active(); len(active) > 0 {
			names := make([]string, len(active))
			for j, e := range active {
				names[j] = fmt.Sprintf("%s %d", e, w.Effects[e])
			}
			r.screen.DrawText(x+2, y, strings.Join(names, ", "), dimStyle)
			y++
		}
	}
	if winner, ok := b.Winner(); ok {
		r.screen.DrawText(x, y, r.teamName(winner)+" wins!", r.teamStyle(winner).Bold(true))
		y++
	}
	return y
}

func (r *Renderer) renderControls(scene BattleScene, x, y int) {
	b := scene.Battle()
	r.screen.DrawText(x, y, "Page: "+scene.PageName(), titleStyle)
	y++

	active := b.ActiveWizard()
	chosen, hasChosen := scene.ChosenSlot()
	for i, s := range active.Spells {
		marker := "  "
		if hasChosen && i == chosen {
			marker = "> "
		}
		cost := 0
		if def := r.spells.Get(s); def != nil {
			cost = def.ManaCost
		}
		element, _ := s.Requirement()
		style := r.elementStyle(element)
		if !s.Implemented() || !b.CanAfford(s) {
			style = dimStyle
		}
		r.screen.DrawText(x, y, fmt.Sprintf("%s%d %-16s %2d", marker, i+1, s, cost), style)
		y++
	}

	if d, ok := scene.Direction(); ok {
		r.screen.DrawText(x, y, "Direction: "+d.String(), textStyle)
	}
}

func (r *Renderer) tileStyle(b *combat.Battle, p world.Position) (rune, tcell.Style) {
	e, ok := b.EntityAt(p)
	if !ok {
		return '.', dimStyle
	}
	switch e.Kind {
	case world.EntityWizard:
		w, _ := b.Wizard(e.Index)
		style := r.teamStyle(w.Team).Bold(true)
		if w.IsDead() {
			return 'x', style
		}
		return e.Rune(), style
	case world.EntityProjectile:
		proj, _ := b.Projectile(e.Index)
		return proj.Type.Symbol(), r.teamStyle(proj.Owner)
	default:
		return e.Rune(), textStyle
	}
}

func (r *Renderer) teamName(t entity.Team) string {
	if int(t) < len(r.teams) {
		return r.teams[t].Name
	}
	return t.String()
}

func (r *Renderer) teamStyle(t entity.Team) tcell.Style {
	if int(t) < len(r.teams) {
		return tcell.StyleDefault.Foreground(r.teams[t].TCellColor())
	}
	return textStyle
}

func (r *Renderer) elementName(e gamedata.Element) string {
	if int(e) < len(r.elements) {
		return r.elements[e].Name
	}
	return e.String()
}

func (r *Renderer) elementStyle(e gamedata.Element) tcell.Style {
	if int(e) < len(r.elements) {
		return tcell.StyleDefault.Foreground(r.elements[e].TCellColor())
	}
	return textStyle
}
