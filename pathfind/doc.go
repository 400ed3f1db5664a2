// Package pathfind implements a weighted best-first grid search: given a
// rectangular field of per-cell traversal costs and one or more source cells,
// it computes either a shortest-cost predecessor field over every reachable
// cell ("flood fill") or a shortest path toward one target cell, biased by a
// squared-Euclidean heuristic. A companion extraction step walks the
// predecessor field backward from the target and emits a turn-compressed
// waypoint list.
//
// Overview:
//
//   - The cost field is a flat []float32 of length Width*Height, row-major
//     with y as the outer index. +Inf marks an impassable cell. The caller
//     must pre-populate the outer ring (x=0, x=Width-1, y=0, y=Height-1)
//     with +Inf — the search's inner loop relies on this border invariant to
//     index neighbors of interior cells without bounds checks.
//   - FloodFill relaxes every reachable cell from one or more sources and
//     populates the predecessor/distance fields with no target in mind.
//   - FindPath additionally biases the search toward one target cell and
//     returns as soon as that cell is reached.
//   - GetPath reconstructs a polyline from a previously-searched target back
//     to its source, emitting a waypoint only where the direction of travel
//     changes (plus the target and the source themselves).
//
// When to use:
//
//   - Tile-based games and simulations where terrain has a real per-cell
//     cost (not just passable/impassable) and paths should prefer cheap
//     terrain while still cutting toward the target.
//   - As the movement layer under something like gridgraph's land/water
//     analysis: gridgraph answers "which cells are connected and how many
//     water cells would bridging them cost"; pathfind answers "what is the
//     cheapest route through terrain that is already weighted".
//
// Performance and complexity:
//
//   - Time: O(E log E) where E is the number of (cell, frontier-node) pairs
//     pushed onto the open-set heap; at most 8 pushes per relaxed cell.
//   - Space: O(Width*Height) for the predecessor and distance fields, plus
//     O(E) for the heap in the worst case (no decrease-key: superseded
//     frontier entries are left in place and skipped when popped).
//
// Concurrency:
//
//   - Not reentrant. One Pathfinder serves one search at a time; concurrent
//     searches need independent Pathfinder instances. The cost field is
//     read-only during a search — the caller must not mutate it concurrently
//     with FloodFill/FindPath.
//
// Error handling (sentinel errors):
//
//   - ErrDimensionMismatch: the cost field's length does not equal Width*Height.
//   - ErrEmptyCostField: Width or Height is not positive.
//
// FloodFill and FindPath report every per-call outcome — zero source cells,
// a source or the target on the border, or an unreachable target — as a
// plain bool rather than an error, since these are expected, frequent
// outcomes rather than exceptional ones — matching how gridgraph.InBounds
// reports a boolean rather than an error.
package pathfind
