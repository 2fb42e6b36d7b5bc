package render

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/jungle"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Theme is a glyph table indexed by entity, plus the border and status
// digit glyphs that go with it. Every glyph is two columns wide.
type Theme struct {
	Name string

	cells  [jungle.EntityCount]core.Glyph
	digits [10]string

	// Side closes each grid row, Bottom is repeated once per column under
	// the grid and Corner ends the bottom border.
	Side, Bottom, Corner string
}

// Themes holds the available glyph tables.
var Themes = registry.New[*Theme]("theme")

func init() {
	Themes.Register("ascii", asciiTheme())
	Themes.Register("ascii-block", asciiBlockTheme())
	Themes.Register("unicode", unicodeTheme())
}

// Glyph returns the glyph for a cell.
func (t *Theme) Glyph(e jungle.Entity) core.Glyph {
	if int(e) >= len(t.cells) {
		return t.cells[jungle.Ground]
	}
	return t.cells[e]
}

// Number renders n as digits of the place values m, m/10, ... 1, each digit
// two columns wide. Digits above m are dropped.
func (t *Theme) Number(n, m int) string {
	var sb strings.Builder
	for ; m > 0; m /= 10 {
		d := n / m
		n %= m
		sb.WriteString(t.digits[d%10])
	}
	return sb.String()
}

// tableSpec is the per-theme part of a glyph table. Segments are indexed
// by in*4+out, heads by direction.
type tableSpec struct {
	heads  [4]core.Glyph
	body   [16]core.Glyph
	fat    [16]core.Glyph
	plain  map[jungle.Entity]core.Glyph
	letter func(r rune) string
	digit  func(d int) string
}

func newTheme(name string, spec tableSpec) *Theme {
	t := &Theme{Name: name}
	for i := range t.cells {
		t.cells[i] = core.Plain("  ")
	}
	for _, d := range core.Directions {
		t.cells[jungle.Head(d)] = spec.heads[d]
		for _, out := range core.Directions {
			t.cells[jungle.Body(d, out)] = spec.body[int(d)*4+int(out)]
			t.cells[jungle.FatBody(d, out)] = spec.fat[int(d)*4+int(out)]
		}
	}
	for e, g := range spec.plain {
		t.cells[e] = g
	}
	for r := 'A'; r <= 'Z'; r++ {
		t.cells[jungle.Letter(r)] = core.Plain(spec.letter(r))
	}
	for d := range t.digits {
		t.digits[d] = spec.digit(d)
	}
	return t
}

func green(s ...string) (out [16]core.Glyph) {
	for i, text := range s {
		out[i] = core.Glyph{Text: text, Color: core.ColorGreen}
	}
	return out
}

func boldGreen(s ...string) (out [16]core.Glyph) {
	for i, text := range s {
		out[i] = core.Glyph{Text: text, Color: core.ColorGreen, Bold: true}
	}
	return out
}

func heads(s ...string) (out [4]core.Glyph) {
	g := boldGreen(s...)
	copy(out[:], g[:4])
	return out
}

func same[T any](v T) (out [16]T) {
	for i := range out {
		out[i] = v
	}
	return out
}

func asciiLetter(r rune) string { return string(r) + " " }

func asciiDigit(d int) string { return strconv.Itoa(d) + " " }

func asciiTheme() *Theme {
	t := newTheme("ascii", tableSpec{
		heads: heads("V ", "< ", "^ ", " >"),
		body: green(
			"  ", "o-", "| ", "o ",
			"o-", "  ", "o-", "--",
			"| ", "o-", "  ", "o ",
			"o ", "--", "o ", "  ",
		),
		fat: boldGreen(
			"  ", "O=", "| ", "O ",
			"O=", "  ", "O=", "==",
			"| ", "O=", "  ", "O ",
			"O ", "==", "O ", "  ",
		),
		plain: map[jungle.Entity]core.Glyph{
			jungle.Hole:    {Text: "[]", Color: core.ColorBlue, Bold: true},
			jungle.Apple:   core.Plain("++"),
			jungle.Egg:     core.Plain("O "),
			jungle.Snail:   core.Plain("@/"),
			jungle.Beetle:  core.Plain("MM"),
			jungle.Ant:     core.Plain("mm"),
			jungle.Star:    core.Plain("**"),
			jungle.Present: core.Plain("??"),
			jungle.Wall:    core.Plain("##"),
			jungle.Hit:     core.Plain(":("),
		},
		letter: asciiLetter,
		digit:  asciiDigit,
	})
	t.Side, t.Bottom = "|", "--"
	return t
}

func asciiBlockTheme() *Theme {
	food := func(text string) core.Glyph {
		return core.Glyph{Text: text, Color: core.ColorRed, Reverse: true}
	}
	bonus := func(text string) core.Glyph {
		return core.Glyph{Text: text, Color: core.ColorYellow, Bold: true, Reverse: true}
	}
	head := core.Glyph{Text: "oo", Bold: true, Reverse: true}

	t := newTheme("ascii-block", tableSpec{
		heads: [4]core.Glyph{head, head, head, head},
		body:  same(core.Glyph{Text: "  ", Reverse: true}),
		fat:   same(core.Glyph{Text: "++", Reverse: true}),
		plain: map[jungle.Entity]core.Glyph{
			jungle.Hole:    {Text: "[]", Color: core.ColorBlue, Bold: true, Reverse: true},
			jungle.Apple:   {Text: "++", Color: core.ColorRed, Bold: true, Reverse: true},
			jungle.Egg:     food("O "),
			jungle.Snail:   food("@/"),
			jungle.Beetle:  food("MM"),
			jungle.Ant:     food("mm"),
			jungle.Star:    bonus("**"),
			jungle.Present: bonus("??"),
			jungle.Wall:    {Text: "  ", Bold: true, Reverse: true},
			jungle.Hit:     {Text: ":(", Color: core.ColorRed, Bold: true},
		},
		letter: asciiLetter,
		digit:  asciiDigit,
	})
	t.Side, t.Bottom = "|", "--"
	return t
}

func unicodeTheme() *Theme {
	t := newTheme("unicode", tableSpec{
		heads: heads("ꙭ ", "ꙭ ", "ꙭ ", "ꙭ "),
		body: green(
			"  ", "┗━", "┃ ", "┛ ",
			"┗━", "  ", "┏━", "━━",
			"┃ ", "┏━", "  ", "┓ ",
			"┛ ", "━━", "┓ ", "  ",
		),
		fat: boldGreen(
			"  ", "╚═", "║ ", "╝ ",
			"╚═", "  ", "╔═", "══",
			"║ ", "╔═", "  ", "╗ ",
			"╝ ", "══", "╗ ", "  ",
		),
		plain: map[jungle.Entity]core.Glyph{
			jungle.Hole:    {Text: "🞑 ", Color: core.ColorBlue, Bold: true},
			jungle.Apple:   core.Plain("🍎"),
			jungle.Egg:     core.Plain("🥚"),
			jungle.Snail:   core.Plain("🐌"),
			jungle.Beetle:  core.Plain("🐞"),
			jungle.Ant:     core.Plain("🐜"),
			jungle.Star:    core.Plain("🌟"),
			jungle.Present: core.Plain("🎁"),
			jungle.Wall:    core.Plain("🧱"),
			jungle.Hit:     core.Plain("💥"),
		},
		// Fullwidth Latin capitals.
		letter: func(r rune) string { return string(r - 'A' + 'Ａ') },
		// Segmented digits.
		digit: func(d int) string { return string(rune(0x1FBF0+d)) + " " },
	})
	t.Side, t.Bottom, t.Corner = "│", "──", "┘"
	return t
}
