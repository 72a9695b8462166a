package forward

import "cmp"

// Relational operators over whole lists. Methods cannot introduce
// extra type constraints, so these live at package level; the
// constrained forms only instantiate for element types that support
// them, the Func forms work for any element type.

// Equal reports element-wise equality. Lists of different lengths are
// never equal; the size check is O(1) thanks to the cached count.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if !eq(an.value, bn.value) {
			return false
		}
		bn = bn.next
	}
	return true
}

// Compare orders two lists lexicographically: the first differing
// position decides, and a list that is a strict prefix of the other
// orders first. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *List[T], compare func(x, y T) int) int {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if c := compare(an.value, bn.value); c != 0 {
			return c
		}
		an, bn = an.next, bn.next
	}

	switch {
	case an != nil:
		return +1
	case bn != nil:
		return -1
	}
	return 0
}

// Less reports a < b in lexicographic order.
func Less[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports a <= b in lexicographic order.
func LessEqual[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) <= 0 }

// Greater reports a > b in lexicographic order.
func Greater[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports a >= b in lexicographic order.
func GreaterEqual[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) >= 0 }

// Swap is the free-function form of List.Swap.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
