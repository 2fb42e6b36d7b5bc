package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Glyph is one styled piece of text drawn into a grid cell.
// A grid cell is two terminal columns wide, so Text is either two narrow
// characters or one wide character.
// Glyph is comparable and is used as a map key by canvases that cache
// styled output.
type Glyph struct {
	Text    string
	Color   Color
	Bold    bool
	Reverse bool
}

// Plain returns an unstyled glyph.
func Plain(text string) Glyph {
	return Glyph{Text: text}
}
