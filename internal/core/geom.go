// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Direction is one of the four grid headings, ordered clockwise so that the
// opposite heading is d^2 and turning is plain modular arithmetic.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists all headings in clockwise order.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	return d ^ 2
}

// TurnLeft returns the heading after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// TurnRight returns the heading after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (dy, dx int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Wrap maps v into [0, n) for any v, including negatives.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
