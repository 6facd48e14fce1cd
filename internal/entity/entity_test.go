package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

func TestTakeDamageFloorsAtZero(t *testing.T) {
	w := &Wizard{Health: 10}

	if got := w.TakeDamage(4); got != 4 || w.Health != 6 {
		t.Errorf("TakeDamage(4) = %d, health %d; want 4, 6", got, w.Health)
	}
	if got := w.TakeDamage(50); got != 6 || w.Health != 0 {
		t.Errorf("TakeDamage(50) = %d, health %d; want 6, 0", got, w.Health)
	}
	if !w.IsDead() || w.IsAlive() {
		t.Error("wizard at 0 health should be dead")
	}
	if got := w.TakeDamage(5); got != 0 || w.Health != 0 {
		t.Errorf("TakeDamage on dead wizard = %d, health %d", got, w.Health)
	}
	if got := w.TakeDamage(-3); got != 0 {
		t.Errorf("TakeDamage(-3) = %d, want 0", got)
	}
}

func TestTakeDamageWithStoneSkin(t *testing.T) {
	tests := []struct {
		health, damage, want int
	}{
		{100, 10, 95},
		{100, 7, 97}, // floor(7/2) = 3
		{100, 1, 100},
		{2, 9, 0},
	}

	for _, tt := range tests {
		w := &Wizard{Health: tt.health}
		w.ApplyEffect(EffectStoneSkin, 2)
		w.TakeDamage(tt.damage)
		if w.Health != tt.want {
			t.Errorf("health %d, damage %d with stone skin: health = %d, want %d",
				tt.health, tt.damage, w.Health, tt.want)
		}
	}
}

func TestEffectsDecrementSaturates(t *testing.T) {
	var fx Effects
	fx.Apply(EffectHaste, 2)
	fx.Apply(EffectStoneSkin, 1)

	fx.Decrement()
	if !fx.Has(EffectHaste) || fx.Has(EffectStoneSkin) {
		t.Errorf("after one decrement: %v", fx)
	}

	fx.Decrement()
	fx.Decrement()
	for _, e := range AllEffects() {
		if fx[e] != 0 {
			t.Errorf("%s counter = %d, want 0", e, fx[e])
		}
	}
}

func TestEffectsApplyNeverShortens(t *testing.T) {
	var fx Effects
	fx.Apply(EffectCirculation, 3)
	fx.Apply(EffectCirculation, 1)
	if fx[EffectCirculation] != 3 {
		t.Errorf("counter = %d, want 3", fx[EffectCirculation])
	}

	active := fx.Active()
	if len(active) != 1 || active[0] != EffectCirculation {
		t.Errorf("Active() = %v", active)
	}
}

func TestParseEffect(t *testing.T) {
	for _, e := range AllEffects() {
		got, err := ParseEffect(e.ID())
		if err != nil || got != e {
			t.Errorf("ParseEffect(%q) = %v, %v", e.ID(), got, err)
		}
	}
	if _, err := ParseEffect("invisibility"); err == nil {
		t.Error("ParseEffect(invisibility) should fail")
	}
}

func TestMovementDepth(t *testing.T) {
	tests := []struct {
		name    string
		effects []Effect
		want    int
	}{
		{"none", nil, 2},
		{"circulation", []Effect{EffectCirculation}, 4},
		{"haste", []Effect{EffectHaste}, 4},
		{"both boosts", []Effect{EffectCirculation, EffectHaste}, 8},
		{"stagnation", []Effect{EffectStagnation}, 1},
		{"circulation and stagnation", []Effect{EffectCirculation, EffectStagnation}, 2},
		{"all", []Effect{EffectCirculation, EffectHaste, EffectStagnation}, 4},
		{"stone skin only", []Effect{EffectStoneSkin}, 2},
	}

	for _, tt := range tests {
		w := &Wizard{Health: 1}
		for _, e := range tt.effects {
			w.ApplyEffect(e, 1)
		}
		if got := w.MovementDepth(); got != tt.want {
			t.Errorf("%s: MovementDepth() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSpendMana(t *testing.T) {
	w := &Wizard{Mana: 20}
	if !w.SpendMana(15) || w.Mana != 5 {
		t.Errorf("SpendMana(15): mana = %d, want 5", w.Mana)
	}
	if w.SpendMana(6) || w.Mana != 5 {
		t.Errorf("SpendMana(6) should fail and leave mana at 5, got %d", w.Mana)
	}
}

func TestNewWizard(t *testing.T) {
	choice := SpellChoice{Water: 2, Earth: 4}
	w := NewWizard(TeamBlue, world.Position{X: 1, Y: 0}, choice)

	if w.Health != StartingHealth || w.Mana != StartingMana {
		t.Errorf("health/mana = %d/%d, want %d/%d", w.Health, w.Mana, StartingHealth, StartingMana)
	}
	if len(w.Spells) != 6 {
		t.Errorf("spells = %v, want 6", w.Spells)
	}
	if !w.Knows(gamedata.Wall) || w.Knows(gamedata.ManaDrain) {
		t.Errorf("unexpected spell list %v", w.Spells)
	}
	if _, err := w.SpellAt(6); !errors.Is(err, gamedata.ErrUnknownSpell) {
		t.Errorf("SpellAt(6) error = %v", err)
	}
}

func TestProjectileBlunt(t *testing.T) {
	p := &Projectile{Damage: 10}
	if got := p.Blunt(2); got != 6 {
		t.Errorf("Blunt(2) = %d, want 6", got)
	}
	if got := p.Blunt(5); got != 0 {
		t.Errorf("Blunt(5) = %d, want 0", got)
	}
}

func TestNewProjectile(t *testing.T) {
	def := &gamedata.ProjectileDef{Type: "wind_bolt", Speed: 3, Lifetime: 4, Passable: true, Guiding: true}
	p, err := NewProjectile(def, 8, TeamRed, world.Position{X: 2, Y: 2}, world.Left)
	if err != nil {
		t.Fatalf("NewProjectile() error = %v", err)
	}
	if p.Type != ProjectileWindBolt || !p.Passable || !p.Guiding || p.Speed != 3 || p.Damage != 8 {
		t.Errorf("unexpected projectile %+v", p)
	}

	p.Age()
	p.Age()
	p.Age()
	p.Age()
	p.Age()
	if !p.IsSpent() || p.Lifetime != 0 {
		t.Errorf("lifetime = %d, want 0", p.Lifetime)
	}

	if _, err := NewProjectile(&gamedata.ProjectileDef{Type: "meteor"}, 1, TeamRed, world.Position{}, world.Up); err == nil {
		t.Error("unknown projectile type should fail")
	}
}

func TestSpellChoiceScenario(t *testing.T) {
	sel := NewSpellSelect()
	for i, p := range sel.Players {
		if p.Unused != PointPool {
			t.Fatalf("player %d starts with %d unused", i, p.Unused)
		}
	}

	for i := 0; i < 4; i++ {
		if err := sel.Change(0, gamedata.Water, true); err != nil {
			t.Fatalf("increment %d: %v", i+1, err)
		}
	}
	p0 := sel.Players[0]
	if p0.Water != 4 || p0.Unused != 2 {
		t.Fatalf("after 4 increments: water=%d unused=%d", p0.Water, p0.Unused)
	}

	err := sel.Change(0, gamedata.Water, true)
	if !errors.Is(err, ErrExceedsElementCap) || !errors.Is(err, ErrAllocationInvariant) {
		t.Errorf("5th increment error = %v, want ErrExceedsElementCap", err)
	}
	p0 = sel.Players[0]
	if p0.Water != 4 || p0.Unused != 2 {
		t.Errorf("rejected increment changed state: water=%d unused=%d", p0.Water, p0.Unused)
	}
}

func TestSpellChoicePoolInvariant(t *testing.T) {
	c := NewSpellChoice()
	ops := []struct {
		element   gamedata.Element
		increment bool
	}{
		{gamedata.Fire, true}, {gamedata.Fire, true}, {gamedata.Wind, true},
		{gamedata.Fire, false}, {gamedata.Earth, true}, {gamedata.Earth, true},
		{gamedata.Water, true}, {gamedata.Water, true}, {gamedata.Wind, true},
		{gamedata.Earth, false}, {gamedata.Water, false}, {gamedata.Water, false},
		{gamedata.Water, false},
	}

	for _, op := range ops {
		_ = c.Change(op.element, op.increment)
		if sum := c.Water + c.Fire + c.Earth + c.Wind + c.Unused; sum != PointPool {
			t.Fatalf("after %v: sum = %d, want %d", op, sum, PointPool)
		}
	}
}

func TestSpellChoicePoolExhausted(t *testing.T) {
	c := SpellChoice{Water: 3, Fire: 3}
	if err := c.Increment(gamedata.Earth); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("Increment with empty pool error = %v, want ErrPoolExhausted", err)
	}
	if err := c.Decrement(gamedata.Wind); !errors.Is(err, ErrNothingAllocated) {
		t.Errorf("Decrement of empty element error = %v, want ErrNothingAllocated", err)
	}
	if err := c.Increment(gamedata.Element(7)); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Increment(7) error = %v, want ErrUnknownElement", err)
	}
	if !c.Complete() {
		t.Error("choice with no unused points should be complete")
	}
}

func TestSpellSelectReady(t *testing.T) {
	sel := NewSpellSelect()
	if sel.Ready() {
		t.Error("fresh selection should not be ready")
	}

	sel.Players[0] = SpellChoice{Water: 4, Wind: 2}
	if sel.Ready() {
		t.Error("selection with one incomplete player should not be ready")
	}
	sel.Players[1] = SpellChoice{Fire: 3, Earth: 3}
	if !sel.Ready() {
		t.Error("complete selection should be ready")
	}

	if err := sel.Change(2, gamedata.Fire, true); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("Change(player 2) error = %v, want ErrUnknownPlayer", err)
	}
}

func TestTeamOpponent(t *testing.T) {
	if TeamRed.Opponent() != TeamBlue || TeamBlue.Opponent() != TeamRed {
		t.Error("Opponent() should swap teams")
	}
}
