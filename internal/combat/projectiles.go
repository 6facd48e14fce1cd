package combat

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/wizardfight/internal/entity"
	"github.com/samdwyer/wizardfight/internal/world"
)

// advanceProjectiles moves and ages every live projectile in index order.
func (b *Battle) advanceProjectiles() {
	for i, p := range b.projectiles {
		if p.IsSpent() {
			continue
		}
		b.fly(i)
		if p.IsSpent() {
			continue
		}
		p.Age()
		if p.IsSpent() {
			b.despawn(i)
		}
	}
}

// fly moves projectile i up to Speed cells.
// It stops in front of another projectile and is consumed by a wizard.
func (b *Battle) fly(i int) {
	p := b.projectiles[i]
	if p.Guiding {
		if d, ok := b.seek(p); ok {
			p.Direction = d
		}
	}

	for step := 0; step < p.Speed; step++ {
		next := b.size.Step(p.Position, p.Direction)
		e, ok := b.board.At(next)
		if !ok {
			b.board.Swap(p.Position, next)
			p.Position = next
			continue
		}
		if e.IsWizard() {
			taken := b.collide(e.Index, i)
			b.log.WithFields(logrus.Fields{
				"projectile": i,
				"wizard":     e.Index,
				"damage":     taken,
			}).Debug("projectile hit")
		}
		return
	}
}

// seek returns the direction from p toward the nearest living enemy wizard.
// Ties go to the lower wizard index.
func (b *Battle) seek(p *entity.Projectile) (world.Direction, bool) {
	best, bestDist := -1, 0
	for i, w := range b.wizards {
		if w.Team == p.Owner || w.IsDead() {
			continue
		}
		d := b.size.Manhattan(p.Position, w.Position)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return p.Direction, false
	}
	return world.Toward(b.size.Offset(p.Position, b.wizards[best].Position))
}
