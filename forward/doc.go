// Package forward provides a generic singly-linked sequence with O(1)
// prepend, forward-only iteration and value semantics: deep copy,
// copy-then-swap assignment and O(1) content swap, each with an
// all-or-nothing guarantee when copying an element can fail.
//
// # Creating a list
//
//	l := forward.New(1, 2, 3, 4, 5) // iterates 1..5
//	l := forward.From(values)
//	var l forward.List[string]      // zero value is an empty list
//
// # Iteration
//
// Three styles are supported. Range-over-func for plain loops:
//
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
//
// Positional iterators when the position itself matters, in a mutable
// and a read-only variant sharing one comparison contract:
//
//	for it := l.Begin(); it != l.End(); it.Next() {
//	    *it.Ptr() += 1
//	}
//
// And ToSlice for handing the contents to slice-based code.
//
// # Fallible element copies
//
// Element types that own resources install Hooks: Clone is consulted
// wherever the container copies an element, Release wherever Clear
// tears one down. Every copying operation (PushFront, NewFunc, Clone,
// Assign) is atomic with respect to Clone failures: the list being
// mutated is either fully updated or exactly as it was, and no copy
// leaks. Clear and Swap never fail.
//
// # Comparison
//
// Package-level Equal, Compare and the derived Less/LessEqual/Greater/
// GreaterEqual order lists lexicographically; the Func variants lift
// the comparable/cmp.Ordered constraints for arbitrary element types.
//
// Lists are single-threaded: mutation requires exclusive access, while
// concurrent read-only traversal needs no locking.
package forward
