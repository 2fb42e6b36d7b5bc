// Package jungle implements the toroidal play field: the per-cell entity
// encoding, the grid itself, its damage list and the body walker.
//
// The snake has no explicit segment list. Every body cell stores the
// direction back toward the tail and the direction on toward the head, so
// the shape of the snake is recovered by walking from the tail.
package jungle

import "github.com/vovakirdan/tui-snake/internal/core"

// Entity is the value stored in one grid cell.
type Entity uint8

const (
	headBase = 1
	bodyBase = headBase + 4
	fatBase  = bodyBase + 4*4
)

// Plain entities.
const (
	Ground Entity = 0

	Wall Entity = fatBase + 4*4 + iota - 1
	Hole
	Apple
	Snail
	Egg
	Star
	Ant
	Beetle
	Present
	Hit

	letterBase

	// EntityCount is the size of a table indexed by Entity.
	EntityCount = letterBase + 26
)

// Kind is the entity without its embedded directions or letter.
type Kind uint8

const (
	KindGround Kind = iota
	KindHead
	KindBody
	KindFatBody
	KindWall
	KindHole
	KindApple
	KindSnail
	KindEgg
	KindStar
	KindAnt
	KindBeetle
	KindPresent
	KindHit
	KindLetter
)

// Head returns a head facing d.
func Head(d core.Direction) Entity {
	return Entity(headBase + d)
}

// Body returns a thin body segment. in points back toward the tail, out
// points on toward the head.
func Body(in, out core.Direction) Entity {
	return Entity(bodyBase + int(in)*4 + int(out))
}

// FatBody returns a body segment drawn while growth is pending.
func FatBody(in, out core.Direction) Entity {
	return Entity(fatBase + int(in)*4 + int(out))
}

// Letter returns the entity spelling r. Anything outside A-Z is Ground.
func Letter(r rune) Entity {
	if r < 'A' || r > 'Z' {
		return Ground
	}
	return letterBase + Entity(r-'A')
}

// Kind classifies the entity.
func (e Entity) Kind() Kind {
	switch {
	case e == Ground:
		return KindGround
	case e < bodyBase:
		return KindHead
	case e < fatBase:
		return KindBody
	case e < Wall:
		return KindFatBody
	case e >= letterBase && e < EntityCount:
		return KindLetter
	}
	switch e {
	case Wall:
		return KindWall
	case Hole:
		return KindHole
	case Apple:
		return KindApple
	case Snail:
		return KindSnail
	case Egg:
		return KindEgg
	case Star:
		return KindStar
	case Ant:
		return KindAnt
	case Beetle:
		return KindBeetle
	case Present:
		return KindPresent
	default:
		return KindHit
	}
}

// IsSnake reports whether the cell is part of a live snake (head or body).
func (e Entity) IsSnake() bool {
	return e >= headBase && e < Wall
}

// IsSegment reports whether the cell is a body segment with stored
// directions.
func (e Entity) IsSegment() bool {
	return e >= bodyBase && e < Wall
}

// IsFat reports whether the cell is a fat body segment.
func (e Entity) IsFat() bool {
	return e >= fatBase && e < Wall
}

// Blocks reports whether moving the head into the cell ends the run.
func (e Entity) Blocks() bool {
	return e == Wall || e.IsSnake()
}

// IsSpecialFood reports whether the cell holds any food, Apple included.
func (e Entity) IsSpecialFood() bool {
	return e >= Apple && e <= Present
}

// IsBug reports whether the cell holds a Snail, Egg, Ant or Beetle.
func (e Entity) IsBug() bool {
	switch e {
	case Snail, Egg, Ant, Beetle:
		return true
	}
	return false
}

// Grows reports whether eating the cell lengthens the snake.
func (e Entity) Grows() bool {
	switch e {
	case Apple, Snail, Beetle, Ant, Egg:
		return true
	}
	return false
}

// Dir returns the heading of a head, or the outgoing direction of a body
// segment. It is meaningless for other kinds.
func (e Entity) Dir() core.Direction {
	switch {
	case e.IsSegment():
		return e.Out()
	case e.Kind() == KindHead:
		return core.Direction(e - headBase)
	}
	return core.DirUp
}

// In returns the direction from a body segment back toward the tail.
func (e Entity) In() core.Direction {
	return core.Direction(e.segmentIndex() / 4)
}

// Out returns the direction from a body segment on toward the head.
func (e Entity) Out() core.Direction {
	return core.Direction(e.segmentIndex() % 4)
}

func (e Entity) segmentIndex() int {
	if e.IsFat() {
		return int(e - fatBase)
	}
	return int(e-bodyBase) & 15
}

// Rune returns the letter of a Letter entity.
func (e Entity) Rune() rune {
	if e.Kind() != KindLetter {
		return ' '
	}
	return 'A' + rune(e-letterBase)
}

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindFatBody:
		return "fat-body"
	case KindWall:
		return "wall"
	case KindHole:
		return "hole"
	case KindApple:
		return "apple"
	case KindSnail:
		return "snail"
	case KindEgg:
		return "egg"
	case KindStar:
		return "star"
	case KindAnt:
		return "ant"
	case KindBeetle:
		return "beetle"
	case KindPresent:
		return "present"
	case KindHit:
		return "hit"
	case KindLetter:
		return "letter"
	default:
		return "unknown"
	}
}
