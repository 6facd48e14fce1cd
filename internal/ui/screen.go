// Package ui draws the spell selection and battle screens with tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wizardfight/internal/world"
)

// statusWidth is the column budget of the panel right of the board.
const statusWidth = 36

// Screen wraps tcell.Screen with board-aware drawing.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenWith(s)
}

// NewScreenWith initializes an existing tcell screen with mouse motion
// reporting, which hover highlighting needs.
func NewScreenWith(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse(tcell.MouseMotionEvents)
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a complete redraw after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// DrawCell paints board tile p: the glyph in the first column and padding
// in the rest, all in the same style.
func (s *Screen) DrawCell(p world.Position, glyph rune, style tcell.Style) {
	sx, sy := ScreenAt(p)
	s.screen.SetContent(sx, sy, glyph, nil, style)
	for i := 1; i < cellWidth; i++ {
		s.screen.SetContent(sx+i, sy, ' ', nil, style)
	}
}

// DrawText writes text from (x, y) rightwards and returns the column after it.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// Fits reports whether the terminal can show a board of the given size
// with its status panel and message lines.
func (s *Screen) Fits(size world.Size) bool {
	w, h := s.screen.Size()
	needW, needH := MinTerminal(size)
	return w >= needW && h >= needH
}

// MinTerminal returns the terminal dimensions the battle screen needs.
func MinTerminal(size world.Size) (width, height int) {
	return boardLeft + size.Width*cellWidth + 2 + statusWidth, boardTop + size.Height + 3
}
