package entity

import (
	"fmt"

	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/world"
)

// ProjectileType identifies what a projectile is.
type ProjectileType int

const (
	ProjectileFireball ProjectileType = iota
	ProjectileSpike
	ProjectileBoulder
	ProjectileWall
	ProjectileWindBolt
)

// String returns the projectile type name.
func (t ProjectileType) String() string {
	switch t {
	case ProjectileFireball:
		return "Fireball"
	case ProjectileSpike:
		return "Spike"
	case ProjectileBoulder:
		return "Boulder"
	case ProjectileWall:
		return "Wall"
	case ProjectileWindBolt:
		return "Wind Bolt"
	default:
		return "Unknown"
	}
}

// Symbol returns the display symbol for a projectile type.
func (t ProjectileType) Symbol() rune {
	switch t {
	case ProjectileFireball:
		return 'o'
	case ProjectileSpike:
		return '^'
	case ProjectileBoulder:
		return 'O'
	case ProjectileWall:
		return '#'
	case ProjectileWindBolt:
		return '~'
	default:
		return '?'
	}
}

// ParseProjectileType maps a spells.json projectile type to a ProjectileType.
func ParseProjectileType(id string) (ProjectileType, error) {
	switch id {
	case "fireball":
		return ProjectileFireball, nil
	case "spike":
		return ProjectileSpike, nil
	case "boulder":
		return ProjectileBoulder, nil
	case "wall":
		return ProjectileWall, nil
	case "wind_bolt":
		return ProjectileWindBolt, nil
	default:
		return 0, fmt.Errorf("unknown projectile type %q", id)
	}
}

// Projectile is a transient object on the board created by a spell.
// A projectile whose lifetime reached zero is spent and no longer on the board.
type Projectile struct {
	Position  world.Position
	Type      ProjectileType
	Damage    int
	Direction world.Direction
	Owner     Team
	Guiding   bool // Re-aims at the nearest enemy before moving
	Speed     int  // Cells moved per turn
	Passable  bool // Wizards may walk onto it (taking damage)
	Lifetime  int  // Turns left
}

// NewProjectile builds a projectile from its spell definition.
func NewProjectile(def *gamedata.ProjectileDef, damage int, owner Team, pos world.Position, dir world.Direction) (*Projectile, error) {
	if def == nil {
		return nil, fmt.Errorf("missing projectile definition")
	}
	kind, err := ParseProjectileType(def.Type)
	if err != nil {
		return nil, err
	}
	return &Projectile{
		Position:  pos,
		Type:      kind,
		Damage:    damage,
		Direction: dir,
		Owner:     owner,
		Guiding:   def.Guiding,
		Speed:     def.Speed,
		Passable:  def.Passable,
		Lifetime:  def.Lifetime,
	}, nil
}

// IsSpent returns true once the projectile has expired or hit something.
func (p *Projectile) IsSpent() bool { return p.Lifetime == 0 }

// Spend marks the projectile as consumed.
func (p *Projectile) Spend() { p.Lifetime = 0 }

// Age removes one turn of lifetime, never going below zero.
func (p *Projectile) Age() {
	if p.Lifetime > 0 {
		p.Lifetime--
	}
}

// Blunt reduces the projectile's damage by twice the resistance of what it hits.
// Damage never drops below zero. Returns the remaining damage.
func (p *Projectile) Blunt(resistance int) int {
	p.Damage = max(p.Damage-2*max(resistance, 0), 0)
	return p.Damage
}
