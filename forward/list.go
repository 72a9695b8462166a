package forward

import (
	"iter"

	"github.com/pkg/errors"
)

// region Node

// node is a single storage cell of the chain. It is never handed to
// callers directly; iterators reference it without owning it.
type node[T any] struct {
	value T
	next  *node[T]
}

// endregion

// region Hooks

// Hooks customizes how a List copies and releases its elements.
//
// Clone is consulted by PushFront, NewFunc, Clone and Assign; when it
// returns an error the operation reports the failure and the list it
// was mutating is left exactly as it was. Release is invoked once per
// element by Clear, front to back.
//
// A zero Hooks value means plain Go assignment and no teardown, which
// is the right default for value types that own nothing.
type Hooks[T any] struct {
	Clone   func(T) (T, error)
	Release func(T)
}

// endregion

// region List

// List is a generic singly-linked sequence with O(1) prepend and
// forward iteration. The zero value is an empty list ready for use;
// New, From and NewFunc cover ordered construction.
//
// A List exclusively owns its chain: no node is ever shared between
// two lists, and transferring contents goes through Clone/Assign/Swap,
// never through aliasing. Lists are not safe for concurrent mutation;
// concurrent read-only traversal is fine.
type List[T any] struct {
	head  node[T] // sentinel, value unused; head.next is the first element
	size  int
	hooks Hooks[T]
}

// New builds a list whose iteration order matches the argument order.
// Prepend is the only primitive, so the values go in back to front.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.link(values[i])
	}
	return l
}

// From builds a list from a slice, preserving order.
func From[T any](values []T) *List[T] {
	return New(values...)
}

// NewFunc builds a list with the given hooks, cloning every value
// through hooks.Clone. Construction is all or nothing: if any clone
// fails, the copies made so far are released and the error is
// returned with no list.
func NewFunc[T any](hooks Hooks[T], values ...T) (*List[T], error) {
	l := &List[T]{hooks: hooks}
	for i := len(values) - 1; i >= 0; i-- {
		c, err := l.cloneValue(values[i])
		if err != nil {
			l.Clear()
			return nil, errors.Wrap(err, "forward: new")
		}
		l.link(c)
	}
	return l, nil
}

// Len returns the cached element count in O(1).
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head.next == nil
}

// PushFront prepends a copy of v in O(1). With a Clone hook installed
// the copy is made first, so a clone failure leaves the list untouched.
func (l *List[T]) PushFront(v T) error {
	c, err := l.cloneValue(v)
	if err != nil {
		return errors.Wrap(err, "forward: push front")
	}
	l.link(c)
	return nil
}

// link prepends v without copying. The sentinel makes the empty and
// non-empty cases identical.
func (l *List[T]) link(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

func (l *List[T]) cloneValue(v T) (T, error) {
	if l.hooks.Clone == nil {
		return v, nil
	}
	return l.hooks.Clone(v)
}

// Clear unlinks every node front to back, invoking the Release hook
// per element when one is installed, and resets the list to empty.
// The walk is iterative; a million-element chain will not blow the
// stack. Clear never fails.
func (l *List[T]) Clear() {
	for l.head.next != nil {
		target := l.head.next
		l.head.next = target.next
		target.next = nil
		if l.hooks.Release != nil {
			l.hooks.Release(target.value)
		}
		l.size--
	}
}

// Front returns the first element, or the zero value and false when
// the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

// Clone returns a deep, independent copy of l preserving iteration
// order. Prepending each source element into a temporary yields the
// temporary reversed; relinking the temporary's nodes into the result
// restores the order without a second round of element copies. Only
// the first pass can fail, and on failure the partial temporary is
// released and no list is returned.
func (l *List[T]) Clone() (*List[T], error) {
	tmp := &List[T]{hooks: l.hooks}
	for n := l.head.next; n != nil; n = n.next {
		c, err := l.cloneValue(n.value)
		if err != nil {
			tmp.Clear()
			return nil, errors.Wrap(err, "forward: clone")
		}
		tmp.link(c)
	}

	// The cloned values move from tmp to dst; tmp is abandoned without
	// Clear so they are not released.
	dst := &List[T]{hooks: l.hooks}
	for n := tmp.head.next; n != nil; n = n.next {
		dst.link(n.value)
	}
	return dst, nil
}

// Assign replaces l's contents with a deep copy of rhs, copy-then-swap:
// the full copy is built first, so if any element clone fails l is
// left exactly as it was. The displaced old contents are released
// through l's previous hooks.
func (l *List[T]) Assign(rhs *List[T]) error {
	if rhs == nil {
		return ErrNilSource
	}

	tmp, err := rhs.Clone()
	if err != nil {
		return errors.Wrap(err, "forward: assign")
	}

	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// Swap exchanges the contents of two lists in O(1) without touching
// any node. Iterators obtained before the swap keep referencing the
// same nodes, which now belong to the other list. Swap never fails.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
	l.hooks, other.hooks = other.hooks, l.hooks
}

// All returns a range-over-func view of the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a fresh slice in iteration order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// endregion
