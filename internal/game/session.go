package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wizardfight/internal/combat"
	"github.com/samdwyer/wizardfight/internal/entity"
	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/logger"
	"github.com/samdwyer/wizardfight/internal/ui"
	"github.com/samdwyer/wizardfight/internal/world"
)

// Session errors.
var (
	ErrWrongState          = errors.New("intent not allowed in this state")
	ErrControlMismatch     = errors.New("confirmed control is not the active page")
	ErrSelectionIncomplete = errors.New("selection incomplete")
	ErrUnknownIntent       = errors.New("unknown intent")
)

// Session is one game from spell selection to the end of the battle.
// It holds the pending, not yet confirmed, inputs of the active player.
type Session struct {
	ID uuid.UUID

	config Config
	spells *gamedata.SpellRegistry
	tracer trace.Tracer
	log    *logrus.Entry

	state     State
	selection *entity.SpellSelect
	battle    *combat.Battle

	page         Control
	hovered      world.Position
	hasHover     bool
	picked       []world.Position
	slot         int
	hasSlot      bool
	direction    world.Direction
	hasDirection bool
	message      string
}

// NewSession starts a session in the spell selection phase.
func NewSession(cfg Config, spells *gamedata.SpellRegistry, tracer trace.Tracer) *Session {
	id := uuid.New()
	return &Session{
		ID:        id,
		config:    cfg,
		spells:    spells,
		tracer:    tracer,
		log:       logger.Component("game").WithField("session", id.String()),
		state:     StateSpellSelecting,
		selection: entity.NewSpellSelect(),
	}
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Selection returns the pre-battle point allocation.
func (s *Session) Selection() *entity.SpellSelect { return s.selection }

// Battle returns the running battle, or nil before it starts.
func (s *Session) Battle() *combat.Battle { return s.battle }

// Message returns the last status or error line.
func (s *Session) Message() string { return s.message }

// Page returns the active control page.
func (s *Session) Page() Control { return s.page }

// PageName returns the active control page's name.
func (s *Session) PageName() string { return s.page.String() }

// ChosenSlot returns the chosen spell slot of the active wizard.
func (s *Session) ChosenSlot() (int, bool) { return s.slot, s.hasSlot }

// Direction returns the pending spell direction.
func (s *Session) Direction() (world.Direction, bool) { return s.direction, s.hasDirection }

// Picked returns a copy of the pending tile picks.
func (s *Session) Picked() []world.Position {
	return append([]world.Position(nil), s.picked...)
}

// ChosenSpell returns the spell in the chosen slot.
func (s *Session) ChosenSpell() (gamedata.Spell, bool) {
	if s.battle == nil || !s.hasSlot {
		return 0, false
	}
	w := s.battle.ActiveWizard()
	spell, err := w.SpellAt(s.slot)
	if err != nil {
		return 0, false
	}
	return spell, true
}

// ControlsInputted reports whether page c holds a complete action.
func (s *Session) ControlsInputted(c Control) bool {
	if s.battle == nil || s.state != StateInBattle {
		return false
	}
	switch c {
	case ControlMovement:
		return len(s.picked) == 1 && s.battle.CanMove(s.picked[0])
	case ControlSpell:
		return s.checkSpell() == nil
	}
	return false
}

// checkSpell validates the chosen spell against the pending inputs the way
// Battle.Cast will.
func (s *Session) checkSpell() error {
	spell, ok := s.ChosenSpell()
	if !ok {
		return fmt.Errorf("no spell chosen: %w", ErrSelectionIncomplete)
	}
	if !spell.Implemented() {
		return fmt.Errorf("%s: %w", spell, combat.ErrNotImplemented)
	}
	return s.battle.ValidateTarget(spell, s.Target())
}

// Target builds the spell target from the pending inputs.
func (s *Session) Target() combat.Target {
	spell, ok := s.ChosenSpell()
	if !ok {
		return combat.NoTarget()
	}
	switch spell.Targeting().Kind {
	case gamedata.InputDirection:
		if !s.hasDirection || len(s.picked) == 0 {
			return combat.Target{Direction: s.direction, HasDirection: s.hasDirection, Tiles: s.Picked()}
		}
		return combat.DirectionTarget(s.direction, s.picked[0])
	case gamedata.InputPosition:
		return combat.TilesTarget(s.Picked()...)
	default:
		return combat.NoTarget()
	}
}

// Highlight returns how tile p should be shown. Hover beats a pick, a pick
// beats the spell's area and the area beats a plain candidate tile.
func (s *Session) Highlight(p world.Position) ui.Highlight {
	if s.battle == nil {
		return ui.HighlightNone
	}
	size := s.battle.Size()
	p = size.Wrap(p.X, p.Y)

	if s.hasHover && s.hovered == p {
		return ui.HighlightHovered
	}
	for _, q := range s.picked {
		if q == p {
			return ui.HighlightSelected
		}
	}
	if s.state != StateInBattle {
		return ui.HighlightNone
	}

	switch s.page {
	case ControlMovement:
		if s.battle.CanMove(p) {
			return ui.HighlightCandidate
		}
	case ControlSpell:
		spell, ok := s.ChosenSpell()
		if !ok || !spell.Implemented() {
			return ui.HighlightNone
		}
		tg := spell.Targeting()
		if s.inArea(tg, p) {
			return ui.HighlightArea
		}
		if s.battle.FilterHolds(tg.Filter, p) {
			return ui.HighlightCandidate
		}
	}
	return ui.HighlightNone
}

func (s *Session) inArea(tg gamedata.Targeting, p world.Position) bool {
	switch tg.Kind {
	case gamedata.InputNone:
		return s.battle.AreaContains(tg.Shape, p)
	case gamedata.InputDirection:
		return s.hasDirection && s.battle.DirectionHits(tg.Shape, s.direction, p)
	case gamedata.InputPosition:
		return tg.Count > 1 && len(s.picked) > 0 && s.battle.PairHolds(tg.Shape, s.picked[0], p)
	}
	return false
}

// Apply applies one intent. A rejected intent leaves the session unchanged
// apart from the message line.
func (s *Session) Apply(ctx context.Context, intent Intent) error {
	ctx, span := s.tracer.Start(ctx, "intent."+intent.Name())
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("state", s.state.String()),
	)

	var err error
	switch in := intent.(type) {
	case PointChange:
		err = s.changePoints(in)
	case ConfirmSelection:
		err = s.confirmSelection(ctx)
	case HoverTile:
		err = s.hover(in)
	case SelectTile:
		err = s.selectTile(in)
	case CycleControlPage:
		err = s.cyclePage(in)
	case ChooseSpell:
		err = s.chooseSpell(in)
	case SelectDirection:
		err = s.selectDirection(in)
	case ConfirmAction:
		err = s.confirmAction(ctx, in)
	default:
		err = fmt.Errorf("%T: %w", intent, ErrUnknownIntent)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.message = err.Error()
		s.log.WithField("intent", intent.Name()).WithError(err).Debug("Intent rejected")
	}
	return err
}

func (s *Session) changePoints(in PointChange) error {
	if s.state != StateSpellSelecting {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	if err := s.selection.Change(in.Player, in.Element, in.Increment); err != nil {
		return err
	}
	s.message = ""
	return nil
}

func (s *Session) confirmSelection(ctx context.Context) error {
	if s.state != StateSpellSelecting {
		return fmt.Errorf("confirm selection: %w", ErrWrongState)
	}
	if !s.selection.Ready() {
		return fmt.Errorf("unallocated spell points: %w", ErrSelectionIncomplete)
	}

	_, span := s.tracer.Start(ctx, "battle.start")
	defer span.End()

	battle, err := combat.NewBattle(s.config.Size(), s.selection, s.spells)
	if err != nil {
		span.RecordError(err)
		return err
	}
	for i := 0; i < battle.WizardCount(); i++ {
		w, _ := battle.Wizard(i)
		span.SetAttributes(attribute.Int(fmt.Sprintf("wizard.%d.spells", i), len(w.Spells)))
	}
	span.SetAttributes(
		attribute.Int("board.width", s.config.BoardWidth),
		attribute.Int("board.height", s.config.BoardHeight),
	)

	s.battle = battle
	s.state = StateInBattle
	s.page = ControlMovement
	s.clearPending()
	s.message = "Battle started"
	s.log.WithFields(logrus.Fields{
		"width":  s.config.BoardWidth,
		"height": s.config.BoardHeight,
	}).Info("Battle started")
	return nil
}

func (s *Session) hover(in HoverTile) error {
	if s.battle == nil {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	s.hovered = s.battle.Size().Wrap(in.X, in.Y)
	s.hasHover = true
	return nil
}

func (s *Session) selectTile(in SelectTile) error {
	if s.state != StateInBattle {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	p := s.battle.Size().Wrap(in.X, in.Y)

	limit := 1
	if s.page == ControlSpell {
		spell, ok := s.ChosenSpell()
		if !ok {
			return fmt.Errorf("no spell chosen: %w", ErrSelectionIncomplete)
		}
		limit = spell.Targeting().NeedsTiles()
		if limit == 0 {
			return fmt.Errorf("%s takes no tile: %w", spell, combat.ErrWrongInputKind)
		}
	}

	// A full selection starts over from the new pick.
	if len(s.picked) >= limit {
		s.picked = s.picked[:0]
	}
	s.picked = append(s.picked, p)
	return nil
}

func (s *Session) cyclePage(in CycleControlPage) error {
	if s.state != StateInBattle {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	s.page = s.page.Cycle(in.Forward)
	s.picked = nil
	return nil
}

func (s *Session) chooseSpell(in ChooseSpell) error {
	if s.state != StateInBattle {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	w := s.battle.ActiveWizard()
	spell, err := w.SpellAt(in.Index)
	if err != nil {
		return fmt.Errorf("%w: %w", combat.ErrOutOfRange, err)
	}
	s.page = ControlSpell
	s.slot, s.hasSlot = in.Index, true
	s.picked = nil
	s.hasDirection = false
	s.message = spell.String()
	return nil
}

func (s *Session) selectDirection(in SelectDirection) error {
	if s.state != StateInBattle {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	if !in.Direction.Valid() {
		return fmt.Errorf("direction %d: %w", in.Direction, combat.ErrOutOfRange)
	}
	s.direction, s.hasDirection = in.Direction, true

	// Step shapes have exactly one legal tile, so pick it.
	if spell, ok := s.ChosenSpell(); ok {
		if tg := spell.Targeting(); tg.Kind == gamedata.InputDirection && tg.Shape == gamedata.ShapeStep {
			w := s.battle.ActiveWizard()
			s.picked = []world.Position{s.battle.Size().Step(w.Position, in.Direction)}
		}
	}
	return nil
}

func (s *Session) confirmAction(ctx context.Context, in ConfirmAction) error {
	if s.state != StateInBattle {
		return fmt.Errorf("%s: %w", in.Name(), ErrWrongState)
	}
	if in.Control != s.page {
		return fmt.Errorf("%s on %s page: %w", in.Control, s.page, ErrControlMismatch)
	}
	if in.Control == ControlSpell {
		if err := s.checkSpell(); err != nil {
			return err
		}
	} else if !s.ControlsInputted(in.Control) {
		return fmt.Errorf("%s: %w", in.Control, ErrSelectionIncomplete)
	}

	ctx, span := s.tracer.Start(ctx, "battle.turn")
	defer span.End()
	active := s.battle.ActiveWizard()
	span.SetAttributes(
		attribute.Int("turn", s.battle.Turn()),
		attribute.String("team", active.Team.ID()),
		attribute.String("action", in.Control.String()),
	)

	switch in.Control {
	case ControlMovement:
		dest := s.picked[0]
		taken, err := s.battle.MoveActive(dest)
		if err != nil {
			span.RecordError(err)
			return err
		}
		span.SetAttributes(attribute.Int("damage_taken", taken))
		s.message = fmt.Sprintf("%s moved to %s", active.Team, dest)
		if taken > 0 {
			s.message += fmt.Sprintf(" taking %d damage", taken)
		}

	case ControlSpell:
		result, err := s.battle.Cast(s.slot, s.Target())
		if err != nil {
			span.RecordError(err)
			return err
		}
		span.SetAttributes(
			attribute.String("spell", result.Spell.ID()),
			attribute.Int("damage", result.Damage),
		)
		s.message = result.Message
	}

	s.clearPending()
	if !s.battle.Over() {
		if err := s.battle.EndTurn(); err != nil {
			return err
		}
	}
	if s.battle.Over() {
		s.finish(ctx)
	}
	return nil
}

func (s *Session) finish(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "battle.end")
	defer span.End()

	s.state = StateBattleOver
	winner, ok := s.battle.Winner()
	span.SetAttributes(
		attribute.Int("turns", s.battle.Turn()),
		attribute.Bool("draw", !ok),
	)
	if ok {
		span.SetAttributes(attribute.String("winner", winner.ID()))
		s.message = winner.String() + " wins"
	} else {
		s.message = "Nobody survives"
	}
	s.log.WithField("turns", s.battle.Turn()).Info(s.message)
}

func (s *Session) clearPending() {
	s.picked = nil
	s.hasSlot = false
	s.hasDirection = false
	s.page = ControlMovement
}
