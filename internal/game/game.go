package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wizardfight/internal/gamedata"
	"github.com/samdwyer/wizardfight/internal/ui"
	"github.com/samdwyer/wizardfight/internal/world"
)

// Game binds a session to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	tracer   trace.Tracer
	running  bool
	pressed  bool // Primary button held since the last mouse event
}

// New creates a new game instance.
func New(cfg Config, tracer trace.Tracer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spells, err := gamedata.LoadSpellRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading spells: %w", err)
	}
	teams, err := gamedata.LoadTeams()
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	elements, err := gamedata.LoadElements()
	if err != nil {
		return nil, fmt.Errorf("loading elements: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, teams, elements, spells),
		session:  NewSession(cfg, spells, tracer),
		tracer:   tracer,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	_, span := g.tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.String("session.id", g.session.ID.String()),
		attribute.Int("board.width", g.session.config.BoardWidth),
		attribute.Int("board.height", g.session.config.BoardHeight),
	)
	span.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

func (g *Game) render() {
	if g.session.State() == StateSpellSelecting {
		g.renderer.RenderSelection(g.session)
		return
	}
	g.renderer.RenderBattle(g.session)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	}
	if g.session.State() == StateBattleOver && ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
		g.running = false
		return
	}

	if intent, ok := keyIntent(g.session.State(), g.session.Page(), ev.Key(), ev.Rune()); ok {
		// Rejections land in the session's message line.
		_ = g.session.Apply(ctx, intent)
	}
}

// handleMouseEvent hovers the tile under the pointer and picks it on a press.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	b := g.session.Battle()
	if b == nil {
		return
	}
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !g.pressed
	g.pressed = down

	x, y := ev.Position()
	p, ok := ui.TileAt(x, y, b.Size())
	if !ok {
		return
	}
	_ = g.session.Apply(ctx, HoverTile{X: p.X, Y: p.Y})
	if pressed {
		_ = g.session.Apply(ctx, SelectTile{X: p.X, Y: p.Y})
	}
}

// keyIntent maps a key press to an intent for the given state and page.
func keyIntent(state State, page Control, key tcell.Key, r rune) (Intent, bool) {
	switch state {
	case StateSpellSelecting:
		if key == tcell.KeyEnter {
			return ConfirmSelection{}, true
		}
		if key != tcell.KeyRune {
			return nil, false
		}
		for player, elements := range ui.KeyHints {
			for e, keys := range elements {
				for k, hint := range keys {
					if hint == r {
						return PointChange{Player: player, Element: gamedata.Element(e), Increment: k == 0}, true
					}
				}
			}
		}

	case StateInBattle:
		switch key {
		case tcell.KeyEnter:
			return ConfirmAction{Control: page}, true
		case tcell.KeyTab:
			return CycleControlPage{Forward: true}, true
		case tcell.KeyBacktab:
			return CycleControlPage{Forward: false}, true
		case tcell.KeyUp:
			return SelectDirection{Direction: world.Up}, true
		case tcell.KeyRight:
			return SelectDirection{Direction: world.Right}, true
		case tcell.KeyDown:
			return SelectDirection{Direction: world.Down}, true
		case tcell.KeyLeft:
			return SelectDirection{Direction: world.Left}, true
		case tcell.KeyRune:
			if r >= '1' && r <= '9' {
				return ChooseSpell{Index: int(r - '1')}, true
			}
		}
	}
	return nil, false
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
