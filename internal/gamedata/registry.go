package gamedata

import (
	"errors"
	"fmt"
)

// SpellRegistry holds loaded spell definitions indexed by catalog entry.
type SpellRegistry struct {
	defs [SpellCount]*SpellDef
	all  []SpellDef
}

// NewSpellRegistry creates a registry from loaded spell definitions.
// Every catalog spell must be defined exactly once.
func NewSpellRegistry(defs []SpellDef) (*SpellRegistry, error) {
	registry := &SpellRegistry{all: defs}
	for i := range defs {
		s := defs[i].spell
		if !s.Valid() {
			return nil, fmt.Errorf("definition %q: %w", defs[i].ID, ErrUnknownSpell)
		}
		if registry.defs[s] != nil {
			return nil, fmt.Errorf("spell %q defined twice", defs[i].ID)
		}
		registry.defs[s] = &defs[i]
	}
	for _, s := range Spells() {
		if registry.defs[s] == nil {
			return nil, fmt.Errorf("spell %q has no definition", s.ID())
		}
	}
	return registry, nil
}

// LoadSpellRegistry loads and creates a registry from the embedded spells.json.
func LoadSpellRegistry() (*SpellRegistry, error) {
	defs, err := LoadSpells()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no spells loaded from spells.json")
	}
	return NewSpellRegistry(defs)
}

// MustLoadSpellRegistry loads a registry, panicking on error.
func MustLoadSpellRegistry() *SpellRegistry {
	registry, err := LoadSpellRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the definition of s, or nil for spells outside the catalog.
func (r *SpellRegistry) Get(s Spell) *SpellDef {
	if !s.Valid() {
		return nil
	}
	return r.defs[s]
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *SpellRegistry) GetByID(id string) *SpellDef {
	for _, def := range r.defs {
		if def != nil && def.ID == id {
			return def
		}
	}
	return nil
}

// All returns all spell definitions in file order.
func (r *SpellRegistry) All() []SpellDef {
	return r.all
}

// Count returns the number of defined spells.
func (r *SpellRegistry) Count() int {
	return len(r.all)
}
