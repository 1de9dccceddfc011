// Package index implements IndexIterator (C5) and Indexer (C6): the finite
// index-stream algebra and the fancy-indexing parser/driver built on top of
// it. See spec.md sections 4.4 and 4.5.
package index

import "github.com/morriswmz/jasmal/jerr"

// Iterator is a finite, restartable, single-direction sequence of indices.
// PeekNext on an exhausted iterator returns an error, per spec.md section
// 4.4.
type Iterator interface {
	Count() int
	HasNext() bool
	Next() (int, error)
	PeekNext() (int, error)
	Reset()
}

// Constant yields a single index i, count 1.
type Constant struct {
	value    int
	consumed bool
}

func NewConstant(value int) *Constant { return &Constant{value: value} }

func (c *Constant) Count() int    { return 1 }
func (c *Constant) HasNext() bool { return !c.consumed }
func (c *Constant) Next() (int, error) {
	if c.consumed {
		return 0, jerr.Indexf("constant iterator exhausted")
	}
	c.consumed = true
	return c.value, nil
}
func (c *Constant) PeekNext() (int, error) {
	if c.consumed {
		return 0, jerr.Indexf("constant iterator exhausted")
	}
	return c.value, nil
}
func (c *Constant) Reset() { c.consumed = false }

// AscendingRange yields start, start+step, ... < stop, step > 0.
type AscendingRange struct {
	start, stop, step int
	pos               int // next value to emit
}

func NewAscendingRange(start, stop, step int) (*AscendingRange, error) {
	if step <= 0 {
		return nil, jerr.Indexf("ascending range requires step > 0, got %d", step)
	}
	return &AscendingRange{start: start, stop: stop, step: step, pos: start}, nil
}

func (r *AscendingRange) Count() int {
	if r.stop <= r.start {
		return 0
	}
	return (r.stop-r.start-1)/r.step + 1
}
func (r *AscendingRange) HasNext() bool { return r.pos < r.stop }
func (r *AscendingRange) Next() (int, error) {
	if !r.HasNext() {
		return 0, jerr.Indexf("ascending range iterator exhausted")
	}
	v := r.pos
	r.pos += r.step
	return v, nil
}
func (r *AscendingRange) PeekNext() (int, error) {
	if !r.HasNext() {
		return 0, jerr.Indexf("ascending range iterator exhausted")
	}
	return r.pos, nil
}
func (r *AscendingRange) Reset() { r.pos = r.start }

// DescendingRange yields start, start-step, ... > stop, step > 0. stop may
// be -1 to express "down through 0".
type DescendingRange struct {
	start, stop, step int
	pos               int
}

func NewDescendingRange(start, stop, step int) (*DescendingRange, error) {
	if step <= 0 {
		return nil, jerr.Indexf("descending range requires step > 0, got %d", step)
	}
	return &DescendingRange{start: start, stop: stop, step: step, pos: start}, nil
}

func (r *DescendingRange) Count() int {
	if r.start <= r.stop {
		return 0
	}
	return (r.start-r.stop-1)/r.step + 1
}
func (r *DescendingRange) HasNext() bool { return r.pos > r.stop }
func (r *DescendingRange) Next() (int, error) {
	if !r.HasNext() {
		return 0, jerr.Indexf("descending range iterator exhausted")
	}
	v := r.pos
	r.pos -= r.step
	return v, nil
}
func (r *DescendingRange) PeekNext() (int, error) {
	if !r.HasNext() {
		return 0, jerr.Indexf("descending range iterator exhausted")
	}
	return r.pos, nil
}
func (r *DescendingRange) Reset() { r.pos = r.start }

// ArrayBacked yields each element of indices in order.
type ArrayBacked struct {
	indices []int
	pos     int
}

func NewArrayBacked(indices []int) *ArrayBacked {
	return &ArrayBacked{indices: indices}
}

func (a *ArrayBacked) Count() int    { return len(a.indices) }
func (a *ArrayBacked) HasNext() bool { return a.pos < len(a.indices) }
func (a *ArrayBacked) Next() (int, error) {
	if !a.HasNext() {
		return 0, jerr.Indexf("array-backed iterator exhausted")
	}
	v := a.indices[a.pos]
	a.pos++
	return v, nil
}
func (a *ArrayBacked) PeekNext() (int, error) {
	if !a.HasNext() {
		return 0, jerr.Indexf("array-backed iterator exhausted")
	}
	return a.indices[a.pos], nil
}
func (a *ArrayBacked) Reset() { a.pos = 0 }

// ToSlice resets it, drains it into a plain []int, and resets it again,
// useful once parsing has produced the final iterator per axis.
func ToSlice(it Iterator) []int {
	it.Reset()
	out := make([]int, 0, it.Count())
	for it.HasNext() {
		v, _ := it.Next()
		out = append(out, v)
	}
	it.Reset()
	return out
}
