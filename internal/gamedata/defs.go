package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Outcome is what a spell does once its targeting is confirmed.
type Outcome string

const (
	// OutcomeBuff applies Effect to the caster.
	OutcomeBuff Outcome = "buff"
	// OutcomeDebuff applies Effect to every wizard on a picked tile.
	OutcomeDebuff Outcome = "debuff"
	// OutcomeBeam damages every other wizard on the direction line.
	OutcomeBeam Outcome = "beam"
	// OutcomeStrike damages every wizard on a picked tile.
	OutcomeStrike Outcome = "strike"
	// OutcomeAura damages every wizard inside the spell's area.
	OutcomeAura Outcome = "aura"
	// OutcomeBlast damages wizards in the area and pushes them one step away.
	OutcomeBlast Outcome = "blast"
	// OutcomeProjectile launches a projectile from the step tile.
	OutcomeProjectile Outcome = "projectile"
	// OutcomeSpikes leaves a passable damaging projectile on the picked tile.
	OutcomeSpikes Outcome = "spikes"
	// OutcomeWall raises impassable segments along a ring arc.
	OutcomeWall Outcome = "wall"
	// OutcomeGlide slides the caster along the chosen direction.
	OutcomeGlide Outcome = "glide"
	// OutcomeDrain has no resolution yet.
	OutcomeDrain Outcome = "drain"
)

// Valid returns true for known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeBuff, OutcomeDebuff, OutcomeBeam, OutcomeStrike, OutcomeAura,
		OutcomeBlast, OutcomeProjectile, OutcomeSpikes, OutcomeWall, OutcomeGlide,
		OutcomeDrain:
		return true
	default:
		return false
	}
}

// ProjectileDef holds the stats of a projectile a spell creates.
type ProjectileDef struct {
	Type     string `json:"type"`               // fireball, spike, boulder, wall, wind_bolt
	Speed    int    `json:"speed,omitempty"`    // Cells moved per turn
	Lifetime int    `json:"lifetime"`           // Turns before it expires
	Passable bool   `json:"passable,omitempty"` // Wizards may step onto it
	Guiding  bool   `json:"guiding,omitempty"`  // Turns toward the nearest enemy
}

// SpellDef holds the tuning of one catalog spell, loaded from spells.json.
type SpellDef struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Outcome     Outcome        `json:"outcome"`
	ManaCost    int            `json:"manaCost"`
	Power       int            `json:"power,omitempty"`    // Damage, or glide distance
	Effect      string         `json:"effect,omitempty"`   // Effect applied by buff/debuff
	Duration    int            `json:"duration,omitempty"` // Effect turns
	Projectile  *ProjectileDef `json:"projectile,omitempty"`

	spell Spell
}

// Spell returns the catalog entry the definition belongs to.
func (d *SpellDef) Spell() Spell {
	return d.spell
}

// Name returns the spell's display name.
func (d *SpellDef) Name() string {
	return d.spell.String()
}

// ElementDef holds display data for an element.
type ElementDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TCellColor returns the element colour.
func (e *ElementDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Elements []ElementDef `json:"elements"`
	Spells   []SpellDef   `json:"spells"`
}

// LoadSpells loads spell definitions from the embedded spells.json file.
// Each definition is bound to its catalog entry by ID.
func LoadSpells() ([]SpellDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Spell, SpellCount)
	for _, s := range Spells() {
		byID[s.ID()] = s
	}
	for i := range file.Spells {
		def := &file.Spells[i]
		s, ok := byID[def.ID]
		if !ok {
			return nil, fmt.Errorf("spells.json entry %q: %w", def.ID, ErrUnknownSpell)
		}
		if !def.Outcome.Valid() {
			return nil, fmt.Errorf("spells.json entry %q: unknown outcome %q", def.ID, def.Outcome)
		}
		def.spell = s
	}
	return file.Spells, nil
}

// LoadElements loads element display data from the embedded spells.json file.
func LoadElements() ([]ElementDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	return file.Elements, nil
}

// TeamDef holds display data for a team.
type TeamDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TCellColor returns the team colour.
func (t *TeamDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TeamsFile represents the structure of teams.json.
type TeamsFile struct {
	Teams []TeamDef `json:"teams"`
}

// LoadTeams loads team definitions from the embedded teams.json file.
func LoadTeams() ([]TeamDef, error) {
	file, err := Load[TeamsFile]("teams.json")
	if err != nil {
		return nil, err
	}
	return file.Teams, nil
}

// MustLoadTeams loads team definitions, panicking on error.
func MustLoadTeams() []TeamDef {
	teams, err := LoadTeams()
	if err != nil {
		panic(err)
	}
	return teams
}
