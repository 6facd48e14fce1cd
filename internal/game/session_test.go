package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/wizardfight/internal/combat"
	"github.com/samdwyer/wizardfight/internal/entity"
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/telemetry"
	"github.com/samdwyer/wizardfight/internal/ui"
	"github.com/samdwyer/wizardfight/internal/world"
)

func newTestSession() *Session {
	return NewSession(DefaultConfig(), gamedata.MustLoadSpellRegistry(), telemetry.NoopTracer())
}

func apply(t *testing.T, s *Session, intents ...Intent) {
	t.Helper()
	for _, in := range intents {
		if err := s.Apply(context.Background(), in); err != nil {
			t.Fatalf("Apply(%s) error = %v", in.Name(), err)
		}
	}
}

func points(player int, e gamedata.Element, n int) []Intent {
	out := make([]Intent, n)
	for i := range out {
		out[i] = PointChange{Player: player, Element: e, Increment: true}
	}
	return out
}

// battleSession allocates red Water 2 + Fire 4 and blue Earth 4 + Wind 2,
// then starts the battle. Red knows IC, spear, flame, fireball, explosion
// and aura in that order, standing at (0,0) next to blue at (1,0).
func battleSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession()
	var intents []Intent
	intents = append(intents, points(0, gamedata.Water, 2)...)
	intents = append(intents, points(0, gamedata.Fire, 4)...)
	intents = append(intents, points(1, gamedata.Earth, 4)...)
	intents = append(intents, points(1, gamedata.Wind, 2)...)
	intents = append(intents, ConfirmSelection{})
	apply(t, s, intents...)
	return s
}

func TestSpellSelection(t *testing.T) {
	s := newTestSession()
	apply(t, s, points(0, gamedata.Water, 4)...)

	err := s.Apply(context.Background(), PointChange{Player: 0, Element: gamedata.Water, Increment: true})
	if !errors.Is(err, entity.ErrExceedsElementCap) {
		t.Fatalf("fifth water point error = %v, want ErrExceedsElementCap", err)
	}
	choice := s.Selection().Players[0]
	if choice.Water != 4 || choice.Unused != 2 {
		t.Errorf("allocation = %+v, want 4 water and 2 unused", choice)
	}
	if s.Message() == "" {
		t.Error("rejection should set the message")
	}

	if err := s.Apply(context.Background(), ConfirmSelection{}); !errors.Is(err, ErrSelectionIncomplete) {
		t.Errorf("early confirm error = %v, want ErrSelectionIncomplete", err)
	}
	if s.State() != StateSpellSelecting {
		t.Errorf("State() = %s, want %s", s.State(), StateSpellSelecting)
	}

	apply(t, s, PointChange{Player: 0, Element: gamedata.Water, Increment: false})
	if got := s.Selection().Players[0]; got.Water != 3 || got.Unused != 3 {
		t.Errorf("after decrement = %+v", got)
	}
}

func TestConfirmSelectionStartsBattle(t *testing.T) {
	s := battleSession(t)

	if s.State() != StateInBattle {
		t.Fatalf("State() = %s, want %s", s.State(), StateInBattle)
	}
	b := s.Battle()
	if b == nil || b.WizardCount() != 2 {
		t.Fatalf("Battle() = %v", b)
	}
	red, _ := b.Wizard(0)
	want := []gamedata.Spell{
		gamedata.IncreasedCirculation, gamedata.WaterSpear,
		gamedata.Flame, gamedata.Fireball, gamedata.Explosion, gamedata.AuraOfFire,
	}
	if len(red.Spells) != len(want) {
		t.Fatalf("red spells = %v, want %v", red.Spells, want)
	}
	for i := range want {
		if red.Spells[i] != want[i] {
			t.Errorf("red spell %d = %s, want %s", i, red.Spells[i], want[i])
		}
	}
	if s.Page() != ControlMovement {
		t.Errorf("Page() = %s, want movement", s.Page())
	}
}

func TestIntentsInWrongState(t *testing.T) {
	s := newTestSession()
	for _, in := range []Intent{
		HoverTile{X: 1, Y: 1},
		SelectTile{X: 1, Y: 1},
		CycleControlPage{Forward: true},
		ChooseSpell{Index: 0},
		SelectDirection{Direction: world.Up},
		ConfirmAction{Control: ControlMovement},
	} {
		if err := s.Apply(context.Background(), in); !errors.Is(err, ErrWrongState) {
			t.Errorf("%s during selection: error = %v, want ErrWrongState", in.Name(), err)
		}
	}

	s = battleSession(t)
	for _, in := range []Intent{
		PointChange{Player: 0, Element: gamedata.Fire, Increment: false},
		ConfirmSelection{},
	} {
		if err := s.Apply(context.Background(), in); !errors.Is(err, ErrWrongState) {
			t.Errorf("%s during battle: error = %v, want ErrWrongState", in.Name(), err)
		}
	}
}

func TestMovementAction(t *testing.T) {
	s := battleSession(t)

	apply(t, s, SelectTile{X: 0, Y: 1}, SelectTile{X: 0, Y: 2})
	if got := s.Picked(); len(got) != 1 || got[0] != (world.Position{X: 0, Y: 2}) {
		t.Fatalf("Picked() = %v, want only (0,2)", got)
	}
	if !s.ControlsInputted(ControlMovement) {
		t.Fatal("ControlsInputted(movement) = false")
	}
	if err := s.Apply(context.Background(), ConfirmAction{Control: ControlSpell}); !errors.Is(err, ErrControlMismatch) {
		t.Errorf("confirm spell on movement page: error = %v, want ErrControlMismatch", err)
	}

	apply(t, s, ConfirmAction{Control: ControlMovement})
	red, _ := s.Battle().Wizard(0)
	if red.Position != (world.Position{X: 0, Y: 2}) {
		t.Errorf("red at %s, want (0,2)", red.Position)
	}
	if s.Battle().ActiveIndex() != 1 || s.Battle().Turn() != 1 {
		t.Errorf("active %d turn %d, want blue on turn 1", s.Battle().ActiveIndex(), s.Battle().Turn())
	}
	if len(s.Picked()) != 0 {
		t.Errorf("picks survive the turn: %v", s.Picked())
	}
}

func TestMovementRejected(t *testing.T) {
	s := battleSession(t)

	apply(t, s, SelectTile{X: 0, Y: 5})
	if s.ControlsInputted(ControlMovement) {
		t.Error("ControlsInputted(movement) = true for an unreachable tile")
	}
	if err := s.Apply(context.Background(), ConfirmAction{Control: ControlMovement}); !errors.Is(err, ErrSelectionIncomplete) {
		t.Errorf("error = %v, want ErrSelectionIncomplete", err)
	}
	if s.Battle().ActiveIndex() != 0 {
		t.Error("a rejected action must not end the turn")
	}
}

func TestSpellAction(t *testing.T) {
	s := battleSession(t)

	apply(t, s, ChooseSpell{Index: 1})
	if s.Page() != ControlSpell {
		t.Fatalf("choosing a spell should switch to the spell page, got %s", s.Page())
	}
	if s.ControlsInputted(ControlSpell) {
		t.Error("spear is complete without a direction")
	}
	apply(t, s, SelectDirection{Direction: world.Right})
	if s.ControlsInputted(ControlSpell) {
		t.Error("spear is complete without a tile")
	}
	apply(t, s, SelectTile{X: 3, Y: 0})
	if !s.ControlsInputted(ControlSpell) {
		t.Fatal("spear should be complete")
	}

	apply(t, s, ConfirmAction{Control: ControlSpell})
	b := s.Battle()
	red, _ := b.Wizard(0)
	blue, _ := b.Wizard(1)
	if blue.Health != 88 || red.Mana != 85 {
		t.Errorf("blue health %d red mana %d, want 88 and 85", blue.Health, red.Mana)
	}
	if b.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", b.ActiveIndex())
	}
	if _, ok := s.ChosenSlot(); ok || s.Page() != ControlMovement {
		t.Error("spell inputs survive the turn")
	}
}

func TestStepSpellPicksItsTile(t *testing.T) {
	s := battleSession(t)

	apply(t, s, ChooseSpell{Index: 3}, SelectDirection{Direction: world.Down})
	if got := s.Picked(); len(got) != 1 || got[0] != (world.Position{X: 0, Y: 1}) {
		t.Fatalf("Picked() = %v, want (0,1)", got)
	}
	if !s.ControlsInputted(ControlSpell) {
		t.Error("fireball should be complete after a direction")
	}
}

func TestChooseSpellOutOfRange(t *testing.T) {
	s := battleSession(t)
	if err := s.Apply(context.Background(), ChooseSpell{Index: 9}); !errors.Is(err, combat.ErrOutOfRange) {
		t.Errorf("error = %v, want ErrOutOfRange", err)
	}
	if _, ok := s.ChosenSlot(); ok {
		t.Error("a rejected choice should not set a slot")
	}
}

func TestCycleControlPage(t *testing.T) {
	s := battleSession(t)

	apply(t, s, SelectTile{X: 0, Y: 1}, CycleControlPage{Forward: true})
	if s.Page() != ControlSpell || len(s.Picked()) != 0 {
		t.Errorf("page %s picks %v, want spell page without picks", s.Page(), s.Picked())
	}
	apply(t, s, CycleControlPage{Forward: true})
	if s.Page() != ControlMovement {
		t.Errorf("page = %s, want movement", s.Page())
	}
	apply(t, s, CycleControlPage{Forward: false})
	if s.Page() != ControlSpell {
		t.Errorf("page = %s, want spell", s.Page())
	}
}

func TestHighlightMovement(t *testing.T) {
	s := battleSession(t)
	apply(t, s, HoverTile{X: 0, Y: 1}, SelectTile{X: 0, Y: 2})

	tests := []struct {
		p    world.Position
		want ui.Highlight
	}{
		{world.Position{X: 0, Y: 1}, ui.HighlightHovered},
		{world.Position{X: 0, Y: 2}, ui.HighlightSelected},
		{world.Position{X: 0, Y: 22}, ui.HighlightSelected},
		{world.Position{X: 2, Y: 0}, ui.HighlightNone},
		{world.Position{X: 0, Y: 19}, ui.HighlightCandidate},
		{world.Position{X: 10, Y: 10}, ui.HighlightNone},
	}

	for _, tt := range tests {
		if got := s.Highlight(tt.p); got != tt.want {
			t.Errorf("Highlight(%s) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestHighlightSpell(t *testing.T) {
	s := battleSession(t)

	apply(t, s, ChooseSpell{Index: 0})
	if got := s.Highlight(world.Position{X: 0, Y: 0}); got != ui.HighlightArea {
		t.Errorf("circulation on caster = %s, want area", got)
	}

	apply(t, s, ChooseSpell{Index: 4})
	if got := s.Highlight(world.Position{X: 3, Y: 3}); got != ui.HighlightCandidate {
		t.Errorf("explosion before a pick = %s, want candidate", got)
	}
	apply(t, s, SelectTile{X: 3, Y: 3})

	tests := []struct {
		p    world.Position
		want ui.Highlight
	}{
		{world.Position{X: 3, Y: 3}, ui.HighlightSelected},
		{world.Position{X: 5, Y: 5}, ui.HighlightArea},
		{world.Position{X: 10, Y: 0}, ui.HighlightCandidate},
		{world.Position{X: 12, Y: 12}, ui.HighlightNone},
	}
	for _, tt := range tests {
		if got := s.Highlight(tt.p); got != tt.want {
			t.Errorf("Highlight(%s) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestBattleOver(t *testing.T) {
	s := newTestSession()
	red := &entity.Wizard{
		Team: entity.TeamRed, Health: entity.StartingHealth, Mana: entity.StartingMana,
		Spells: []gamedata.Spell{gamedata.WaterSpear},
	}
	blue := &entity.Wizard{
		Team: entity.TeamBlue, Health: 5, Mana: entity.StartingMana,
		Position: world.Position{X: 2, Y: 0},
	}
	b, err := combat.New(s.config.Size(), s.spells, red, blue)
	if err != nil {
		t.Fatalf("combat.New() error = %v", err)
	}
	s.battle, s.state = b, StateInBattle

	apply(t, s,
		ChooseSpell{Index: 0},
		SelectDirection{Direction: world.Right},
		SelectTile{X: 1, Y: 0},
		ConfirmAction{Control: ControlSpell},
	)

	if s.State() != StateBattleOver {
		t.Fatalf("State() = %s, want %s", s.State(), StateBattleOver)
	}
	if s.Message() != "Red wins" {
		t.Errorf("Message() = %q, want %q", s.Message(), "Red wins")
	}
	if err := s.Apply(context.Background(), SelectTile{X: 1, Y: 0}); !errors.Is(err, ErrWrongState) {
		t.Errorf("select after the battle: error = %v, want ErrWrongState", err)
	}
	if err := s.Apply(context.Background(), HoverTile{X: 1, Y: 0}); err != nil {
		t.Errorf("hover after the battle: error = %v", err)
	}
}

func TestConfirmUnimplementedSpell(t *testing.T) {
	s := newTestSession()
	var intents []Intent
	intents = append(intents, points(0, gamedata.Water, 3)...)
	intents = append(intents, points(0, gamedata.Fire, 3)...)
	intents = append(intents, points(1, gamedata.Earth, 3)...)
	intents = append(intents, points(1, gamedata.Wind, 3)...)
	intents = append(intents, ConfirmSelection{}, ChooseSpell{Index: 2}, SelectTile{X: 1, Y: 0}, SelectTile{X: 1, Y: 0})
	apply(t, s, intents...)

	if spell, _ := s.ChosenSpell(); spell != gamedata.ManaDrain {
		t.Fatalf("slot 2 = %s, want %s", spell, gamedata.ManaDrain)
	}
	if s.ControlsInputted(ControlSpell) {
		t.Error("ControlsInputted(spell) = true for an unimplemented spell")
	}
	err := s.Apply(context.Background(), ConfirmAction{Control: ControlSpell})
	if !errors.Is(err, combat.ErrNotImplemented) {
		t.Errorf("confirm mana drain: error = %v, want ErrNotImplemented", err)
	}
	red, _ := s.Battle().Wizard(0)
	if red.Mana != entity.StartingMana || s.Battle().ActiveIndex() != 0 {
		t.Error("a rejected cast must not spend mana or end the turn")
	}
}

func TestConfirmSpellWithFailingPair(t *testing.T) {
	s := battleSession(t)
	apply(t, s, ChooseSpell{Index: 4}, SelectTile{X: 3, Y: 0}, SelectTile{X: 3, Y: 10})

	if s.ControlsInputted(ControlSpell) {
		t.Error("ControlsInputted(spell) = true with picks 10 apart")
	}
	err := s.Apply(context.Background(), ConfirmAction{Control: ControlSpell})
	if !errors.Is(err, combat.ErrPredicateFailed) {
		t.Errorf("confirm explosion: error = %v, want ErrPredicateFailed", err)
	}
	if s.Battle().ActiveIndex() != 0 {
		t.Error("a rejected cast must not end the turn")
	}

	apply(t, s, SelectTile{X: 3, Y: 0}, SelectTile{X: 4, Y: 2})
	if !s.ControlsInputted(ControlSpell) {
		t.Error("ControlsInputted(spell) = false for a valid explosion")
	}
}
