// Package render draws the jungle onto a terminal canvas. Only cells on the
// grid's damage list are redrawn, unless the list overflowed or was
// invalidated, in which case the whole field and its border are repainted.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Canvas is a cursor-addressed terminal surface. core.Screen implements it
// in memory; ANSICanvas writes escape sequences.
type Canvas interface {
	Clear()
	MoveTo(row, col int)
	Put(g core.Glyph)
	Flush() error
}

// palette maps core.Color to ANSI 256-color indexes.
var palette = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

// PaletteIndex returns the ANSI 256-color index of c. ok is false for the
// terminal's default color.
func PaletteIndex(c core.Color) (int, bool) {
	n, ok := palette[c]
	return n, ok
}

// ANSICanvas buffers cursor moves and styled glyphs for a terminal and
// writes them out on Flush.
type ANSICanvas struct {
	out      *bufio.Writer
	renderer *lipgloss.Renderer
	styled   map[core.Glyph]string
	err      error
}

// NewANSICanvas returns a canvas writing to w. The color profile is
// detected from w, so a non-terminal writer gets plain text.
func NewANSICanvas(w io.Writer) *ANSICanvas {
	return &ANSICanvas{
		out:      bufio.NewWriter(w),
		renderer: lipgloss.NewRenderer(w),
		styled:   make(map[core.Glyph]string),
	}
}

func (c *ANSICanvas) write(s string) {
	if c.err != nil {
		return
	}
	_, c.err = c.out.WriteString(s)
}

// Clear homes the cursor and erases the screen.
func (c *ANSICanvas) Clear() {
	c.write("\x1b[H\x1b[2J")
}

// MoveTo positions the cursor at a zero-based row and column.
func (c *ANSICanvas) MoveTo(row, col int) {
	c.write(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1))
}

// Put writes a styled glyph at the cursor.
func (c *ANSICanvas) Put(g core.Glyph) {
	s, ok := c.styled[g]
	if !ok {
		s = c.style(g).Render(g.Text)
		c.styled[g] = s
	}
	c.write(s)
}

func (c *ANSICanvas) style(g core.Glyph) lipgloss.Style {
	st := c.renderer.NewStyle().Bold(g.Bold).Reverse(g.Reverse)
	if n, ok := PaletteIndex(g.Color); ok {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(n)))
	}
	return st
}

// Flush writes the buffered frame and reports the first write error.
func (c *ANSICanvas) Flush() error {
	if c.err == nil {
		c.err = c.out.Flush()
	}
	if c.err != nil {
		return fmt.Errorf("render: flush: %w", c.err)
	}
	return nil
}

// Enter switches to the alternate screen and hides the cursor.
func (c *ANSICanvas) Enter() error {
	c.write("\x1b[?1049h\x1b[?25l")
	return c.Flush()
}

// Leave shows the cursor and restores the main screen.
func (c *ANSICanvas) Leave() error {
	c.write("\x1b[m\x1b[?25h\x1b[?1049l")
	return c.Flush()
}
