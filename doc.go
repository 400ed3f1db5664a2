// Package gridwalk is a weighted grid pathfinder: give it a rectangular
// field of per-cell traversal costs and one or more starting cells, and it
// computes either a shortest-cost predecessor field over every reachable
// cell ("flood fill") or a turn-compressed shortest path toward one target
// cell, biased by a squared-Euclidean heuristic.
//
// 🚀 What is gridwalk?
//
//	A small, pure-Go library built on a generic binary heap open set:
//		• heap/     — generic, array-backed BinaryHeap[T, Comparator[T]]
//		• pathfind/ — the weighted best-first grid search itself
//		• gridgraph/ — its unweighted sibling: land/water connected
//		  components and minimal-cost "island" bridging
//
// ✨ Why choose gridwalk?
//
//   - Diagonal-aware – corner-cutting through expensive terrain costs more,
//     and is outright blocked when either adjacent cardinal cell is a wall.
//   - No decrease-key – a lazy stale-entry skip at pop time keeps the heap
//     simple while still converging to the best known distance per cell.
//   - Pure Go – no cgo, no hidden deps beyond testify in the test suites.
//
// Quick example:
//
//	pf, _ := pathfind.NewPathfinder(width, height, cost)
//	if pf.FindPath([]pathfind.Cell{{X: 1, Y: 1}}, pathfind.Cell{X: 5, Y: 5}) {
//	    waypoints, _ := pf.GetPath(pathfind.Cell{X: 5, Y: 5})
//	    // waypoints is target-first, source-last, one entry per turn.
//	}
//
//	go get github.com/kestrelgrid/gridwalk/pathfind
package gridwalk
