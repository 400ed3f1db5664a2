package pathfind

import (
	"math"

	"github.com/kestrelgrid/gridwalk/heap"
)

// Cell is an ordered (x, y) grid coordinate.
type Cell struct {
	X, Y int
}

// frontierNode is a tentative visit record sitting in the open-set heap. X
// and Y are stored as int16 (per the base spec's "stored compactly" note);
// a 16-bit coordinate comfortably covers any grid this algorithm is meant
// for before the O(W*H) arrays themselves become the bottleneck.
type frontierNode struct {
	x, y        int16
	parentIndex int32
	distance    float32
}

// targetComparator orders frontierNodes by node.distance + squared-Euclidean
// distance to Target, ascending — the smallest total sits at the head of the
// heap. It is held by value inside the heap and its targetX/targetY fields are mutated
// directly by Pathfinder between searches (see heap.BinaryHeap.Comparator).
type targetComparator struct {
	targetX, targetY float32
}

// priority computes node.distance + squared-Euclidean distance to the
// comparator's current target.
func (c targetComparator) priority(n frontierNode) float32 {
	dx := float32(n.x) - c.targetX
	dy := float32(n.y) - c.targetY

	return n.distance + dx*dx + dy*dy
}

// Compare returns a positive value when a's priority is strictly smaller than
// b's (a should sit above b — closer to the target wins), negative when b's
// is smaller, and zero when they tie.
func (c targetComparator) Compare(a, b frontierNode) int {
	pa, pb := c.priority(a), c.priority(b)
	switch {
	case pa < pb:
		return 1
	case pa > pb:
		return -1
	default:
		return 0
	}
}

// sqrt2 is the diagonal move constant added on top of the corner-cost
// composite described in moveCost's doc comment.
const sqrt2 = float32(math.Sqrt2)

// neighborDelta describes one of the eight fixed-order neighbor offsets.
// For a diagonal move from (cx,cy) to (cx+dx,cy+dy), the horizontal adjacent
// cardinal cell is (cx+dx,cy) and the vertical adjacent is (cx,cy+dy) — both
// derivable from dx,dy alone, so no extra fields are needed here.
type neighborDelta struct {
	dx, dy   int
	diagonal bool
}

// neighborOrder is the fixed N,S,E,W,NE,NW,SE,SW expansion order. Preserving
// this order is part of the contract: it decides which of several equal-cost
// paths wins a tie-break.
var neighborOrder = [8]neighborDelta{
	{dx: 0, dy: -1},                  // N
	{dx: 0, dy: 1},                   // S
	{dx: 1, dy: 0},                   // E
	{dx: -1, dy: 0},                  // W
	{dx: 1, dy: -1, diagonal: true},  // NE
	{dx: -1, dy: -1, diagonal: true}, // NW
	{dx: 1, dy: 1, diagonal: true},   // SE
	{dx: -1, dy: 1, diagonal: true},  // SW
}

// Pathfinder owns the cost, predecessor, and distance fields for one W×H
// grid plus a reusable open-set heap. Construct with NewPathfinder; release
// its buffers with Release when the search is no longer needed.
type Pathfinder struct {
	width, height int
	cost          []float32 // borrowed; never mutated by Pathfinder
	predecessor   []int32
	distance      []float32
	open          *heap.BinaryHeap[frontierNode, targetComparator]
}

// NewPathfinder constructs a Pathfinder over a width×height grid backed by
// cost, a row-major (y*width+x) flat buffer of per-cell traversal costs.
// cost is borrowed: NewPathfinder does not copy it, and the caller must not
// mutate it while a search is in flight. The caller must pre-populate the
// outer ring of cost with +Inf (the border invariant); NewPathfinder does
// not validate this — see doc.go.
func NewPathfinder(width, height int, cost []float32) (*Pathfinder, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyCostField
	}
	if len(cost) != width*height {
		return nil, ErrDimensionMismatch
	}

	n := width * height
	pf := &Pathfinder{
		width:       width,
		height:      height,
		cost:        cost,
		predecessor: make([]int32, n),
		distance:    make([]float32, n),
		open:        heap.NewBinaryHeap[frontierNode, targetComparator](64, targetComparator{}),
	}
	for i := range pf.predecessor {
		pf.predecessor[i] = -1
	}

	return pf, nil
}

// Release drops the Pathfinder's predecessor, distance, and heap buffers, and
// its reference to the (borrowed) cost field. The Pathfinder must not be used
// after Release.
func (pf *Pathfinder) Release() {
	pf.cost = nil
	pf.predecessor = nil
	pf.distance = nil
	pf.open = nil
}

// index maps (x,y) to a row-major flat index: y*width + x.
func (pf *Pathfinder) index(x, y int) int {
	return y*pf.width + x
}

// coordinate maps a row-major flat index back to (x,y).
func (pf *Pathfinder) coordinate(idx int) (x, y int) {
	return idx % pf.width, idx / pf.width
}

// inInterior reports whether (x,y) lies strictly inside the grid's border:
// one cell in from each edge, matching the caller's contract that the outer
// ring of cost is always +Inf.
func (pf *Pathfinder) inInterior(x, y int) bool {
	return x >= 1 && x <= pf.width-2 && y >= 1 && y <= pf.height-2
}
