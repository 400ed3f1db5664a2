// Package heap implements a generic, array-backed binary heap parameterized
// over an element type and a caller-supplied comparator.
//
// Unlike container/heap, which asks the caller to satisfy a sort.Interface on
// a slice type, BinaryHeap owns its backing array and takes the comparator as
// a value, not a closure. This lets a caller (such as pathfind.Pathfinder)
// mutate the comparator's own fields between searches — e.g. retargeting a
// heuristic at a new destination cell — without re-wrapping the heap.
//
// Complexity:
//
//   - Push, PopHead: O(log n) amortized; Push triggers a capacity doubling
//     when the backing array is full.
//   - Head, IsEmpty, Count: O(1).
//   - Clear: O(1), retains the backing array's capacity.
//   - ValidateIntegrity: O(n), intended for tests only.
//
// Ordering:
//
//	Compare(a, b) returns a positive value when a should sit above b in the
//	heap (i.e. a is "greater" under the comparator's order). The zero-value
//	case — Compare returning 0 — is not an error; elements comparing equal
//	may surface from the heap in either order.
package heap
