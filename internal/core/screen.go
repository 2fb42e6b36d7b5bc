package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal column of a Screen.
// Rune 0 marks the second column of a wide character.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is an in-memory terminal. It accepts the same cursor-addressed
// glyph writes as a real terminal canvas, which makes it the target for
// screenshots and for renderer tests.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	curX   int
	curY   int
	writes int
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces and homes the cursor.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
	s.curX, s.curY = 0, 0
}

// MoveTo positions the cursor at a zero-based row and column.
func (s *Screen) MoveTo(row, col int) {
	s.curY, s.curX = row, col
}

// Put writes a glyph at the cursor and advances it by the glyph's display
// width. Characters outside the screen are clipped.
func (s *Screen) Put(g Glyph) {
	s.writes++
	for _, r := range g.Text {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		s.Set(s.curX, s.curY, Cell{Rune: r, Color: g.Color})
		for i := 1; i < w; i++ {
			s.Set(s.curX+i, s.curY, Cell{})
		}
		s.curX += w
	}
}

// Flush is a no-op; the screen is always up to date.
func (s *Screen) Flush() error {
	return nil
}

// Writes returns how many glyphs were put since the screen was created.
// Renderer tests use it to tell incremental frames from full redraws.
func (s *Screen) Writes() int {
	return s.writes
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.MoveTo(y, x)
	s.Put(Plain(text))
}

// String converts the screen buffer to plain text, one line per row with
// trailing spaces kept.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
