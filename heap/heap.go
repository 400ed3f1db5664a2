package heap

// Comparator orders elements of type T for a BinaryHeap. Compare(a, b) must
// return a positive value when a should sit above b, a negative value when b
// should sit above a, and zero when the two are interchangeable for heap
// ordering purposes.
//
// A Comparator is held by value inside the heap, so implementations that need
// mutable state (a search target, a weighting factor) should be small structs
// whose fields the owner mutates directly through the heap's exported handle,
// rather than closures capturing external variables.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// BinaryHeap is a growable, array-backed binary heap over elements of type T,
// ordered by the comparator C. The zero value is not usable; construct with
// NewBinaryHeap.
type BinaryHeap[T any, C Comparator[T]] struct {
	items []T
	cmp   C
}

// NewBinaryHeap constructs an empty heap with the given initial capacity and
// comparator. capacity may be zero or negative; the first Push will grow the
// backing array as needed.
func NewBinaryHeap[T any, C Comparator[T]](capacity int, cmp C) *BinaryHeap[T, C] {
	if capacity < 0 {
		capacity = 0
	}

	return &BinaryHeap[T, C]{
		items: make([]T, 0, capacity),
		cmp:   cmp,
	}
}

// Comparator returns a pointer to the heap's embedded comparator, so callers
// can mutate its fields (e.g. retarget a heuristic) between searches without
// rebuilding the heap.
func (h *BinaryHeap[T, C]) Comparator() *C {
	return &h.cmp
}

// Count returns the number of elements currently in the heap.
func (h *BinaryHeap[T, C]) Count() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *BinaryHeap[T, C]) IsEmpty() bool {
	return len(h.items) == 0
}

// Clear empties the heap, retaining its backing array's capacity.
func (h *BinaryHeap[T, C]) Clear() {
	h.items = h.items[:0]
}

// Head returns the element at the root of the heap without removing it. Its
// result is undefined if the heap is empty; callers must check IsEmpty first.
func (h *BinaryHeap[T, C]) Head() T {
	return h.items[0]
}

// Push appends x to the heap and sifts it upward until heap order holds.
// Duplicate keys are permitted: pushing two elements that compare equal under
// the comparator simply grows Count by two.
func (h *BinaryHeap[T, C]) Push(x T) {
	if len(h.items) == cap(h.items) {
		newCap := 2 * cap(h.items)
		if newCap == 0 {
			newCap = 1
		}
		grown := make([]T, len(h.items), newCap)
		copy(grown, h.items)
		h.items = grown
	}
	h.items = append(h.items, x)
	h.siftUp(len(h.items) - 1)
}

// PopHead removes and returns the element at the root of the heap, moving the
// last element into its place and sifting it downward. Its result is
// undefined if the heap is empty; callers must check IsEmpty first.
func (h *BinaryHeap[T, C]) PopHead() T {
	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return root
}

// siftUp moves the element at index i upward while it outranks its parent.
func (h *BinaryHeap[T, C]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp.Compare(h.items[parent], h.items[i]) >= 0 {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown moves the element at index i downward while a child outranks it.
func (h *BinaryHeap[T, C]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		best := left
		if right := left + 1; right < n && h.cmp.Compare(h.items[right], h.items[left]) > 0 {
			best = right
		}
		if h.cmp.Compare(h.items[best], h.items[i]) <= 0 {
			break
		}
		h.items[best], h.items[i] = h.items[i], h.items[best]
		i = best
	}
}

// ValidateIntegrity walks the heap and returns -1 if heap order holds at every
// node, otherwise the index of the first node whose value outranks its
// parent. Intended for tests; O(n).
func (h *BinaryHeap[T, C]) ValidateIntegrity() int {
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		if h.cmp.Compare(h.items[i], h.items[parent]) > 0 {
			return i
		}
	}

	return -1
}
