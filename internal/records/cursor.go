package records

import (
	"iter"

	"patterns/internal/domain"
)

// Cursor is an external iterator over a fixed list.
type Cursor[T any] interface {
	// Next advances and reports whether an element is now current.
	Next() bool
	// Current returns the element under the cursor.
	Current() (T, error)
	// Reset puts the cursor back before the first element.
	Reset()
}

type state int

const (
	notStarted state = iota
	positioned
	exhausted
)

type position struct {
	state state
	index int
}

func (p position) check() error {
	switch p.state {
	case notStarted:
		return domain.ErrNotPositioned
	case exhausted:
		return domain.ErrExhausted
	}
	return nil
}

// ForwardCursor visits items from first to last.
type ForwardCursor[T any] struct {
	items []T
	pos   position
}

func Forward[T any](items []T) *ForwardCursor[T] {
	return &ForwardCursor[T]{items: items}
}

func (c *ForwardCursor[T]) Next() bool {
	switch c.pos.state {
	case notStarted:
		c.pos.index = 0
	case positioned:
		c.pos.index++
	case exhausted:
		return false
	}
	if c.pos.index < len(c.items) {
		c.pos.state = positioned
		return true
	}
	c.pos.state = exhausted
	return false
}

func (c *ForwardCursor[T]) Current() (T, error) {
	if err := c.pos.check(); err != nil {
		var zero T
		return zero, err
	}
	return c.items[c.pos.index], nil
}

func (c *ForwardCursor[T]) Reset() { c.pos = position{} }

// ReverseCursor visits items from last to first.
type ReverseCursor[T any] struct {
	items []T
	pos   position
}

func Reverse[T any](items []T) *ReverseCursor[T] {
	return &ReverseCursor[T]{items: items}
}

func (c *ReverseCursor[T]) Next() bool {
	switch c.pos.state {
	case notStarted:
		c.pos.index = len(c.items) - 1
	case positioned:
		c.pos.index--
	case exhausted:
		return false
	}
	if c.pos.index >= 0 {
		c.pos.state = positioned
		return true
	}
	c.pos.state = exhausted
	return false
}

func (c *ReverseCursor[T]) Current() (T, error) {
	if err := c.pos.check(); err != nil {
		var zero T
		return zero, err
	}
	return c.items[c.pos.index], nil
}

func (c *ReverseCursor[T]) Reset() { c.pos = position{} }

// All resets c and yields each element it positions on. Ranging over the
// result again starts over.
func All[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		c.Reset()
		for c.Next() {
			v, err := c.Current()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}
