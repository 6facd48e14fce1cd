package combat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/wizardfight/internal/entity"
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

// CastResult contains the outcome of resolving a spell.
type CastResult struct {
	Spell   gamedata.Spell
	Damage  int   // Total damage dealt
	Hit     []int // Wizards damaged or affected, in resolution order
	Spawned []int // Projectiles created
	Message string
}

// castPlan is the parsed tuning of a spell, built before any state changes.
type castPlan struct {
	def        *gamedata.SpellDef
	effect     entity.Effect
	projectile *entity.Projectile // Template; copied for every spawn
}

// Cast resolves the spell in the active wizard's slot against target.
// The target is validated, the mana is paid, then the spell's outcome is
// applied. A rejected cast changes nothing.
func (b *Battle) Cast(slot int, target Target) (CastResult, error) {
	if b.Over() {
		return CastResult{}, ErrBattleOver
	}
	w := b.wizards[b.current]
	spell, err := w.SpellAt(slot)
	if err != nil {
		return CastResult{}, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	if err := b.ValidateTarget(spell, target); err != nil {
		b.log.WithFields(logrus.Fields{
			"wizard": b.current,
			"spell":  spell.ID(),
			"reason": err.Error(),
		}).Debug("cast rejected")
		return CastResult{}, err
	}

	plan, err := b.prepare(spell, target)
	if err != nil {
		return CastResult{}, err
	}
	if !w.SpendMana(plan.def.ManaCost) {
		return CastResult{}, fmt.Errorf("%s costs %d, wizard %d has %d: %w",
			spell, plan.def.ManaCost, b.current, w.Mana, ErrInsufficientMana)
	}

	result := b.resolve(plan, target)
	result.Spell = spell
	b.refreshReachable()

	b.log.WithFields(logrus.Fields{
		"wizard":  b.current,
		"spell":   spell.ID(),
		"damage":  result.Damage,
		"hit":     len(result.Hit),
		"spawned": len(result.Spawned),
	}).Debug("spell cast")
	return result, nil
}

// CanAfford returns true if the active wizard has the mana for spell.
func (b *Battle) CanAfford(spell gamedata.Spell) bool {
	def := b.spells.Get(spell)
	return def != nil && b.wizards[b.current].Mana >= def.ManaCost
}

func (b *Battle) prepare(spell gamedata.Spell, target Target) (castPlan, error) {
	def := b.spells.Get(spell)
	if def == nil || def.Outcome == gamedata.OutcomeDrain {
		return castPlan{}, fmt.Errorf("%s: %w", spell, ErrNotImplemented)
	}
	plan := castPlan{def: def}

	switch def.Outcome {
	case gamedata.OutcomeBuff, gamedata.OutcomeDebuff:
		effect, err := entity.ParseEffect(def.Effect)
		if err != nil {
			return castPlan{}, fmt.Errorf("%s: %w", spell, err)
		}
		plan.effect = effect
	case gamedata.OutcomeProjectile, gamedata.OutcomeSpikes, gamedata.OutcomeWall:
		dir := world.Up
		if target.HasDirection {
			dir = target.Direction
		}
		owner := b.wizards[b.current].Team
		p, err := entity.NewProjectile(def.Projectile, def.Power, owner, world.Position{}, dir)
		if err != nil {
			return castPlan{}, fmt.Errorf("%s: %w", spell, err)
		}
		plan.projectile = p
	}
	return plan, nil
}

func (b *Battle) resolve(plan castPlan, target Target) CastResult {
	switch plan.def.Outcome {
	case gamedata.OutcomeBuff:
		return b.resolveBuff(plan)
	case gamedata.OutcomeDebuff:
		return b.resolveDebuff(plan, target)
	case gamedata.OutcomeBeam:
		return b.resolveBeam(plan, target)
	case gamedata.OutcomeStrike:
		return b.resolveStrike(plan, target)
	case gamedata.OutcomeAura:
		return b.resolveAura(plan)
	case gamedata.OutcomeBlast:
		return b.resolveBlast(plan)
	case gamedata.OutcomeProjectile:
		return b.resolveProjectile(plan, target)
	case gamedata.OutcomeSpikes:
		return b.resolveSpikes(plan, target)
	case gamedata.OutcomeWall:
		return b.resolveWall(plan, target)
	case gamedata.OutcomeGlide:
		return b.resolveGlide(plan, target)
	default:
		return CastResult{Message: plan.def.Name() + " does nothing"}
	}
}

// resolveBuff applies the spell's effect to the caster.
func (b *Battle) resolveBuff(plan castPlan) CastResult {
	b.wizards[b.current].ApplyEffect(plan.effect, plan.def.Duration)
	return CastResult{
		Hit:     []int{b.current},
		Message: fmt.Sprintf("%s gains %s", b.wizards[b.current].Team, plan.effect),
	}
}

// resolveDebuff applies the spell's effect to every wizard on a picked tile.
func (b *Battle) resolveDebuff(plan castPlan, target Target) CastResult {
	var result CastResult
	for _, i := range b.wizardsOn(target.Tiles) {
		b.wizards[i].ApplyEffect(plan.effect, plan.def.Duration)
		result.Hit = append(result.Hit, i)
	}
	result.Message = fmt.Sprintf("%s afflicts %d wizard(s)", plan.def.Name(), len(result.Hit))
	return result
}

// resolveBeam damages every other wizard on the line the spell covers.
func (b *Battle) resolveBeam(plan castPlan, target Target) CastResult {
	shape := plan.def.Spell().Targeting().Shape
	reach := gamedata.SpearRange
	if shape == gamedata.ShapeFlame {
		reach = gamedata.FlameRange
	}

	var tiles []world.Position
	p := b.caster()
	for k := 0; k < reach; k++ {
		p = b.size.Step(p, target.Direction)
		if b.DirectionHits(shape, target.Direction, p) {
			tiles = append(tiles, p)
		}
	}

	var result CastResult
	for _, i := range b.wizardsOn(tiles) {
		if i == b.current {
			continue
		}
		result.Damage += b.wizards[i].TakeDamage(plan.def.Power)
		result.Hit = append(result.Hit, i)
	}
	result.Message = fmt.Sprintf("%s deals %d damage", plan.def.Name(), result.Damage)
	return result
}

// resolveStrike damages every wizard on a picked tile, the caster included.
func (b *Battle) resolveStrike(plan castPlan, target Target) CastResult {
	var result CastResult
	for _, i := range b.wizardsOn(target.Tiles) {
		result.Damage += b.wizards[i].TakeDamage(plan.def.Power)
		result.Hit = append(result.Hit, i)
	}
	result.Message = fmt.Sprintf("%s deals %d damage", plan.def.Name(), result.Damage)
	return result
}

// resolveAura damages every wizard inside the spell's area.
func (b *Battle) resolveAura(plan castPlan) CastResult {
	var result CastResult
	for _, i := range b.wizardsOn(b.area(plan.def.Spell())) {
		result.Damage += b.wizards[i].TakeDamage(plan.def.Power)
		result.Hit = append(result.Hit, i)
	}
	result.Message = fmt.Sprintf("%s deals %d damage", plan.def.Name(), result.Damage)
	return result
}

// resolveBlast damages the wizards around the caster and pushes each one a
// step away when the landing tile is empty.
func (b *Battle) resolveBlast(plan castPlan) CastResult {
	var result CastResult
	c := b.caster()
	for _, i := range b.wizardsOn(b.area(plan.def.Spell())) {
		w := b.wizards[i]
		result.Damage += w.TakeDamage(plan.def.Power)
		result.Hit = append(result.Hit, i)

		d, ok := world.Toward(b.size.Offset(c, w.Position))
		if !ok {
			continue
		}
		if dest := b.size.Step(w.Position, d); b.board.IsEmpty(dest) {
			b.relocate(i, dest)
		}
	}
	result.Message = fmt.Sprintf("%s deals %d damage", plan.def.Name(), result.Damage)
	return result
}

// resolveProjectile launches a projectile from the step tile.
// A wizard standing there takes the collision instead.
func (b *Battle) resolveProjectile(plan castPlan, target Target) CastResult {
	tile := target.Tiles[0]
	e, ok := b.board.At(tile)
	switch {
	case !ok:
		return b.spawn(plan, tile)
	case e.IsWizard():
		shot := *plan.projectile
		shot.Blunt(b.wizards[e.Index].Resistance)
		taken := b.wizards[e.Index].TakeDamage(shot.Damage)
		return CastResult{
			Damage:  taken,
			Hit:     []int{e.Index},
			Message: fmt.Sprintf("%s hits point blank for %d", plan.def.Name(), taken),
		}
	default:
		return CastResult{Message: plan.def.Name() + " fizzles"}
	}
}

// resolveSpikes raises spikes on an empty tile or strikes the wizard on it.
func (b *Battle) resolveSpikes(plan castPlan, target Target) CastResult {
	tile := target.Tiles[0]
	if i, taken, ok := b.hit(tile, plan.def.Power); ok {
		return CastResult{
			Damage:  taken,
			Hit:     []int{i},
			Message: fmt.Sprintf("%s deals %d damage", plan.def.Name(), taken),
		}
	}
	if !b.board.IsEmpty(tile) {
		return CastResult{Message: plan.def.Name() + " fizzles"}
	}
	return b.spawn(plan, tile)
}

// resolveWall raises segments on the empty tiles of the shorter ring arc
// between the two picks.
func (b *Battle) resolveWall(plan castPlan, target Target) CastResult {
	var result CastResult
	for _, tile := range b.ringArc(target.Tiles[0], target.Tiles[len(target.Tiles)-1]) {
		if !b.board.IsEmpty(tile) {
			continue
		}
		spawned := b.spawn(plan, tile)
		result.Spawned = append(result.Spawned, spawned.Spawned...)
	}
	result.Message = fmt.Sprintf("%s raises %d segment(s)", plan.def.Name(), len(result.Spawned))
	return result
}

// resolveGlide slides the caster along the direction while tiles are empty.
func (b *Battle) resolveGlide(plan castPlan, target Target) CastResult {
	moved := 0
	for ; moved < plan.def.Power; moved++ {
		next := b.size.Step(b.caster(), target.Direction)
		if !b.board.IsEmpty(next) {
			break
		}
		b.relocate(b.current, next)
	}
	return CastResult{
		Hit:     []int{b.current},
		Message: fmt.Sprintf("%s glides %d tile(s)", b.wizards[b.current].Team, moved),
	}
}

func (b *Battle) spawn(plan castPlan, tile world.Position) CastResult {
	p := *plan.projectile
	p.Position = tile
	index, err := b.AddProjectile(&p)
	if err != nil {
		return CastResult{Message: plan.def.Name() + " fizzles"}
	}
	return CastResult{
		Spawned: []int{index},
		Message: fmt.Sprintf("%s appears at %s", p.Type, p.Position),
	}
}

// area returns the tiles of a no-input spell's area in row-major order.
func (b *Battle) area(spell gamedata.Spell) []world.Position {
	shape := spell.Targeting().Shape
	var out []world.Position
	for _, p := range b.size.Positions() {
		if b.AreaContains(shape, p) {
			out = append(out, p)
		}
	}
	return out
}

// ringArc returns the ring tiles from first to last along the shorter way.
func (b *Battle) ringArc(first, last world.Position) []world.Position {
	c := b.caster()
	r := b.size.Chebyshev(c, first)
	a := b.ringAngleOf(c, first, r)
	z := b.ringAngleOf(c, last, r)

	step, span := 1, mod(z-a, 8*r)
	if span > 4*r {
		step, span = -1, 8*r-span
	}

	out := make([]world.Position, 0, span+1)
	for k := 0; k <= span; k++ {
		dx, dy := ringOffset(a+step*k, r)
		out = append(out, b.size.Wrap(c.X+dx, c.Y+dy))
	}
	return out
}

// wizardsOn returns the distinct wizards standing on tiles, in tile order.
func (b *Battle) wizardsOn(tiles []world.Position) []int {
	var out []int
	seen := make(map[int]bool)
	for _, t := range tiles {
		e, ok := b.board.At(t)
		if !ok || !e.IsWizard() || seen[e.Index] {
			continue
		}
		seen[e.Index] = true
		out = append(out, e.Index)
	}
	return out
}
