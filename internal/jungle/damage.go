package jungle

// DefaultDamageCapacity is the number of changed cells tracked per frame
// before the frame falls back to a full redraw.
const DefaultDamageCapacity = 20

// Damage is the bounded list of cells changed since the last flush.
//
// A fresh list starts with incremental mode off so the first frame is a
// full redraw. Recording past capacity turns incremental mode off until the
// next Reset.
type Damage struct {
	capacity int
	list     []Pos
	partial  bool
}

// NewDamage returns an empty damage list. A non-positive capacity uses
// DefaultDamageCapacity.
func NewDamage(capacity int) *Damage {
	if capacity <= 0 {
		capacity = DefaultDamageCapacity
	}
	return &Damage{
		capacity: capacity,
		list:     make([]Pos, 0, capacity),
	}
}

// Record notes that the cell at p changed.
func (d *Damage) Record(p Pos) {
	if !d.partial {
		return
	}
	if len(d.list) >= d.capacity {
		d.partial = false
		return
	}
	d.list = append(d.list, p)
}

// Positions returns the recorded cells in recording order. The slice is
// only valid until the next Record or Reset.
func (d *Damage) Positions() []Pos {
	return d.list
}

// Partial reports whether the next flush may be incremental.
func (d *Damage) Partial() bool {
	return d.partial
}

// Capacity returns the maximum number of tracked cells.
func (d *Damage) Capacity() int {
	return d.capacity
}

// Invalidate forces the next flush to be a full redraw.
func (d *Damage) Invalidate() {
	d.partial = false
	d.list = d.list[:0]
}

// Reset empties the list after a flush and re-enables incremental mode.
func (d *Damage) Reset() {
	d.partial = true
	d.list = d.list[:0]
}
