package combat

import "github.com/samdwyer/wizardfight/internal/world"

// collide applies projectile pi to wizard wi and removes the projectile.
// The projectile is blunted by the wizard's resistance before it hits.
// Returns the damage the wizard took.
func (b *Battle) collide(wi, pi int) int {
	w := b.wizards[wi]
	p := b.projectiles[pi]

	p.Blunt(w.Resistance)
	taken := w.TakeDamage(p.Damage)
	b.despawn(pi)
	return taken
}

// despawn spends projectile pi and clears its board cell.
func (b *Battle) despawn(pi int) {
	p := b.projectiles[pi]
	if e, ok := b.board.At(p.Position); ok && e.IsProjectile() && e.Index == pi {
		b.board.Remove(p.Position)
	}
	p.Spend()
}

// hit deals direct spell damage to the wizard on p, if any.
// Returns the wizard index and the damage taken.
func (b *Battle) hit(p world.Position, damage int) (int, int, bool) {
	e, ok := b.board.At(p)
	if !ok || !e.IsWizard() {
		return 0, 0, false
	}
	return e.Index, b.wizards[e.Index].TakeDamage(damage), true
}
