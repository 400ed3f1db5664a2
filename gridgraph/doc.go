// Package gridgraph treats a rectangular 2D grid of integer cell values as a
// land/water graph, enabling component analysis and minimal-cost "island"
// expansions. It is the unweighted sibling of pathfind: gridgraph answers
// "which cells are connected, and how many water cells would bridging them
// cost"; pathfind answers "what is the cheapest route through terrain that
// already carries a real per-cell cost". pathfind.CostFieldFromGrid bridges
// the two by turning a gridgraph-style land/water grid into a bordered
// CostField.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
