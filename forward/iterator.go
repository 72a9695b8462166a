package forward

// region Iterator

// Iterator is a mutable forward position into a List. It references a
// node without owning it: the referenced node must stay reachable in
// some list's chain for the iterator to remain valid. Iterators have
// value semantics, so the post-increment idiom is copying the struct
// before calling Next. The zero value is an end iterator.
//
// Iterators of the same variant compare with ==; two iterators are
// equal when they reference the same node or are both at the end.
// Calling Next or dereferencing an end iterator is undefined.
type Iterator[T any] struct {
	n *node[T]
}

// Begin references the first element, or equals End when l is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End is the position past the last element. It is a stable nil
// reference computed in O(1) for lists of any size; end iterators from
// any number of calls are mutually equal and never dereferenceable.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Next advances to the successor position.
func (it *Iterator[T]) Next() {
	it.n = it.n.next
}

// Value returns the referenced element.
func (it Iterator[T]) Value() T {
	return it.n.value
}

// Ptr returns a writable reference to the referenced element, the
// member-access shorthand for struct elements.
func (it Iterator[T]) Ptr() *T {
	return &it.n.value
}

// Const converts to the read-only variant. The conversion is one-way;
// both sides of it compare equal through ==.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// endregion

// region ConstIterator

// ConstIterator is the read-only counterpart of Iterator, sharing its
// traversal and comparison contract but handing out values only.
type ConstIterator[T any] struct {
	n *node[T]
}

// CBegin references the first element read-only, or equals CEnd when
// l is empty.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

// CEnd is the read-only past-the-end position.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// Next advances to the successor position.
func (it *ConstIterator[T]) Next() {
	it.n = it.n.next
}

// Value returns the referenced element.
func (it ConstIterator[T]) Value() T {
	return it.n.value
}

// endregion
