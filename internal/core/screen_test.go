package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenPutAdvancesCursor(t *testing.T) {
	s := NewScreen(10, 3)

	s.MoveTo(1, 2)
	s.Put(Glyph{Text: "o-", Color: ColorGreen})
	s.Put(Plain("##"))

	if got := s.Row(1); got != "  o-##    " {
		t.Errorf("Row(1) = %q, expected %q", got, "  o-##    ")
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Errorf("color at (2,1) = %v, expected green", s.GetCell(2, 1).Color)
	}
	if s.Writes() != 2 {
		t.Errorf("Writes() = %d, expected 2", s.Writes())
	}
}

func TestScreenWideGlyph(t *testing.T) {
	s := NewScreen(6, 1)

	s.MoveTo(0, 0)
	s.Put(Plain("🍎"))
	s.Put(Plain("++"))

	// The apple takes two columns; the placeholder column is skipped in Row.
	if got := s.Row(0); got != "🍎++  " {
		t.Errorf("Row(0) = %q, expected %q", got, "🍎++  ")
	}
	if s.GetCell(1, 0).Rune != 0 {
		t.Errorf("second column of a wide rune should be a placeholder, got %q", s.GetCell(1, 0).Rune)
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 2)

	s.MoveTo(0, 3)
	s.Put(Plain("ABC")) // only "A" fits
	s.MoveTo(5, 0)
	s.Put(Plain("ZZ")) // entirely off screen

	if got := s.Row(0); got != "   A" {
		t.Errorf("Row(0) = %q, expected %q", got, "   A")
	}
	if strings.Contains(s.String(), "Z") {
		t.Error("off-screen text should be clipped")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "XXXXX")
	s.DrawText(0, 1, "YYYYY")

	s.Clear()

	if s.String() != "     \n     " {
		t.Errorf("After Clear, String() = %q", s.String())
	}

	// Cursor is homed by Clear.
	s.Put(Plain("H"))
	if s.GetCell(0, 0).Rune != 'H' {
		t.Error("Clear should home the cursor")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
