package gamedata

import "fmt"

// =============================================================================
// SPELL CATALOG
// =============================================================================
//
// The catalog is a fixed list of sixteen spells, four per element. A spell's
// position in the list defines its requirement: element = index / 4 and
// point cost = index % 4 + 1. A wizard knows every spell whose cost does not
// exceed the points allocated to that spell's element.
//
// Targeting is code, tuning is data:
//   - Spell.Targeting() is a switch returning the input kind, pick count,
//     shape id and coarse filter id. The predicates behind those ids are
//     implemented by the combat package.
//   - spells.json carries the numbers (mana cost, power, effect duration,
//     projectile stats) and the outcome used when the spell resolves.

// Element is one of the four schools of magic.
type Element int

const (
	Water Element = iota
	Fire
	Earth
	Wind

	ElementCount = 4
)

// Elements returns all elements in catalog order.
func Elements() []Element {
	return []Element{Water, Fire, Earth, Wind}
}

// String returns the element name.
func (e Element) String() string {
	switch e {
	case Water:
		return "Water"
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Wind:
		return "Wind"
	default:
		return "Unknown"
	}
}

// ID returns the element identifier used in data files.
func (e Element) ID() string {
	switch e {
	case Water:
		return "water"
	case Fire:
		return "fire"
	case Earth:
		return "earth"
	case Wind:
		return "wind"
	default:
		return "unknown"
	}
}

// Spell identifies a catalog entry.
type Spell int

const (
	// water
	IncreasedCirculation Spell = iota
	WaterSpear
	ManaDrain
	Stagnation

	// fire
	Flame
	Fireball
	Explosion
	AuraOfFire

	// earth
	StoneSkin
	Spikes
	Boulder
	Wall

	// wind
	WindBolt
	Glide
	RepulsiveBlast
	Tornado

	SpellCount = 16
)

// MaxSpellCost is the highest point cost of any spell.
const MaxSpellCost = SpellCount / ElementCount

// Spells returns the whole catalog in order.
func Spells() []Spell {
	out := make([]Spell, SpellCount)
	for i := range out {
		out[i] = Spell(i)
	}
	return out
}

// SpellAt returns the catalog entry at index i.
func SpellAt(i int) (Spell, error) {
	if i < 0 || i >= SpellCount {
		return 0, fmt.Errorf("spell index %d: %w", i, ErrUnknownSpell)
	}
	return Spell(i), nil
}

// Valid returns true for catalog members.
func (s Spell) Valid() bool {
	return s >= 0 && s < SpellCount
}

// Requirement returns the element and point cost needed to know the spell.
func (s Spell) Requirement() (Element, int) {
	return Element(int(s) / MaxSpellCost), int(s)%MaxSpellCost + 1
}

// String returns the spell's display name.
func (s Spell) String() string {
	switch s {
	case IncreasedCirculation:
		return "Increased Circulation"
	case WaterSpear:
		return "Water Spear"
	case ManaDrain:
		return "Mana Drain"
	case Stagnation:
		return "Stagnation"
	case Flame:
		return "Flame"
	case Fireball:
		return "Fireball"
	case Explosion:
		return "Explosion"
	case AuraOfFire:
		return "Aura of Fire"
	case StoneSkin:
		return "Stone Skin"
	case Spikes:
		return "Spikes"
	case Boulder:
		return "Boulder"
	case Wall:
		return "Wall"
	case WindBolt:
		return "Wind Bolt"
	case Glide:
		return "Glide"
	case RepulsiveBlast:
		return "Repulsive Blast"
	case Tornado:
		return "Tornado"
	default:
		return "Unknown"
	}
}

// ID returns the identifier used in spells.json.
func (s Spell) ID() string {
	switch s {
	case IncreasedCirculation:
		return "increased_circulation"
	case WaterSpear:
		return "water_spear"
	case ManaDrain:
		return "mana_drain"
	case Stagnation:
		return "stagnation"
	case Flame:
		return "flame"
	case Fireball:
		return "fireball"
	case Explosion:
		return "explosion"
	case AuraOfFire:
		return "aura_of_fire"
	case StoneSkin:
		return "stone_skin"
	case Spikes:
		return "spikes"
	case Boulder:
		return "boulder"
	case Wall:
		return "wall"
	case WindBolt:
		return "wind_bolt"
	case Glide:
		return "glide"
	case RepulsiveBlast:
		return "repulsive_blast"
	case Tornado:
		return "tornado"
	default:
		return "unknown"
	}
}

// Targeting returns how the spell is aimed.
func (s Spell) Targeting() Targeting {
	switch s {
	// water
	case IncreasedCirculation:
		return Targeting{Kind: InputNone, Shape: ShapeSelf, Filter: FilterSelf}
	case WaterSpear:
		return Targeting{Kind: InputDirection, Shape: ShapeSpear, Filter: FilterAligned}
	case ManaDrain:
		return Targeting{Kind: InputPosition, Count: 2, Shape: ShapeDisabled, Filter: FilterEnemyWithin7}
	case Stagnation:
		return Targeting{Kind: InputPosition, Count: 2, Shape: ShapeSpread, Filter: FilterWithin7}

	// fire
	case Flame:
		return Targeting{Kind: InputDirection, Shape: ShapeFlame, Filter: FilterAligned}
	case Fireball:
		return Targeting{Kind: InputDirection, Shape: ShapeStep, Filter: FilterAdjacent}
	case Explosion:
		return Targeting{Kind: InputPosition, Count: 2, Shape: ShapeSquare, Filter: FilterWithin10}
	case AuraOfFire:
		return Targeting{Kind: InputNone, Shape: ShapeAura, Filter: FilterNear}

	// earth
	case StoneSkin:
		return Targeting{Kind: InputNone, Shape: ShapeSelf, Filter: FilterSelf}
	case Spikes:
		return Targeting{Kind: InputPosition, Count: 2, Shape: ShapeSnap, Filter: FilterWithin5}
	case Boulder:
		return Targeting{Kind: InputDirection, Shape: ShapeStep, Filter: FilterAdjacent}
	case Wall:
		return Targeting{Kind: InputPosition, Count: 2, Shape: ShapeRing, Filter: FilterRing}

	// wind
	case WindBolt:
		return Targeting{Kind: InputDirection, Shape: ShapeStep, Filter: FilterAdjacent}
	case Glide:
		return Targeting{Kind: InputDirection, Shape: ShapeStep, Filter: FilterAdjacent}
	case RepulsiveBlast:
		return Targeting{Kind: InputNone, Shape: ShapeBurst, Filter: FilterAdjacent}
	case Tornado:
		return Targeting{Kind: InputPosition, Count: 2, Shape: ShapeSquare, Filter: FilterWithin10}

	default:
		return Targeting{Kind: InputNone, Shape: ShapeDisabled, Filter: FilterSelf}
	}
}

// Implemented returns false for spells that can be chosen but not yet cast.
func (s Spell) Implemented() bool {
	return s.Valid() && s.Targeting().Shape != ShapeDisabled
}

// SpellsFor returns the spells unlocked by a per-element point allocation,
// in catalog order.
func SpellsFor(points [ElementCount]int) []Spell {
	out := make([]Spell, 0, SpellCount)
	for _, s := range Spells() {
		element, cost := s.Requirement()
		if cost <= points[element] {
			out = append(out, s)
		}
	}
	return out
}
