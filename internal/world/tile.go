package world

// EntityKind identifies what occupies a board cell.
type EntityKind uint8

const (
	// EntityNone marks an empty cell.
	EntityNone EntityKind = iota
	// EntityWizard marks a cell holding a wizard.
	EntityWizard
	// EntityProjectile marks a cell holding a projectile.
	EntityProjectile
)

// String returns the kind name.
func (k EntityKind) String() string {
	switch k {
	case EntityNone:
		return "none"
	case EntityWizard:
		return "wizard"
	case EntityProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is a lightweight reference to a wizard or projectile.
// Index points into the battle's wizard or projectile list.
type Entity struct {
	Kind  EntityKind
	Index int
}

// Wizard returns a reference to wizard i.
func Wizard(i int) Entity {
	return Entity{Kind: EntityWizard, Index: i}
}

// Projectile returns a reference to projectile i.
func Projectile(i int) Entity {
	return Entity{Kind: EntityProjectile, Index: i}
}

// IsEmpty returns true for the empty reference.
func (e Entity) IsEmpty() bool {
	return e.Kind == EntityNone
}

// IsWizard returns true if the reference points at a wizard.
func (e Entity) IsWizard() bool {
	return e.Kind == EntityWizard
}

// IsProjectile returns true if the reference points at a projectile.
func (e Entity) IsProjectile() bool {
	return e.Kind == EntityProjectile
}

// Rune returns the display glyph for the occupant kind.
func (e Entity) Rune() rune {
	switch e.Kind {
	case EntityWizard:
		return '@'
	case EntityProjectile:
		return '*'
	default:
		return '.'
	}
}
