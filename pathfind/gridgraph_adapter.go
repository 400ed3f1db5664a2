package pathfind

import (
	"math"

	"github.com/kestrelgrid/gridwalk/gridgraph"
)

// bridgeCost is the traversal cost assigned to a water cell that
// CostFieldFromGrid converts to close a gap between two land islands. It
// matches gridgraph.ExpandIsland's own accounting, where each converted
// water cell costs 1 regardless of the grid's other cell values.
const bridgeCost = float32(1.0)

// CostFieldFromGrid adapts a gridgraph-style rectangular [][]int grid into a
// bordered CostField ready for NewPathfinder. Cells at or above
// opts.LandThreshold become traversable, with their own integer value as
// traversal cost; cells below it become impassable — the same land/water
// split gridgraph.NewGridGraph applies. A one-cell impassable border is added
// automatically, since gridgraph grids carry no such invariant but
// Pathfinder requires one.
//
// If the land forms more than one component under opts.Conn, CostFieldFromGrid
// bridges every component to the first by converting the cheapest connecting
// water cells — per gridgraph.ConnectedComponents and gridgraph.ExpandIsland —
// into traversable terrain at bridgeCost. Without this, a caller's land/water
// map could silently hand the Pathfinder a field where entire islands are
// unreachable from one another. Under Conn4, bridging guarantees
// FindPath/FloodFill see a single connected field whenever gridgraph itself
// can find a conversion path between islands. Under Conn8 it does not:
// gridgraph counts cells touching only at a corner as connected, but the
// Pathfinder blocks a diagonal step whenever either adjacent cardinal cell is
// impassable, so such a field can stay split.
//
// The returned width and height already include the border: a w0×h0 input
// grid produces a (w0+2)×(h0+2) cost field.
func CostFieldFromGrid(values [][]int, opts gridgraph.GridOptions) (width, height int, cost []float32, err error) {
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return 0, 0, nil, err
	}

	width, height = gg.Width+2, gg.Height+2
	cost = make([]float32, width*height)
	inf := float32(math.Inf(1))
	for i := range cost {
		cost[i] = inf
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			if v < opts.LandThreshold {
				continue // water stays impassable
			}
			cost[(y+1)*width+(x+1)] = float32(v)
		}
	}

	bridgeComponents(gg, cost, width)

	return width, height, cost, nil
}

// bridgeComponents converts the cheapest water cells connecting every land
// component to the first one (component 0) into traversable terrain, so the
// resulting cost field is fully connected whenever gridgraph.ExpandIsland can
// find a conversion path. Components already joined through a land cell
// collapse to one by ConnectedComponents and are left untouched.
func bridgeComponents(gg *gridgraph.GridGraph, cost []float32, borderedWidth int) {
	comps := gg.ConnectedComponents()
	for i := 1; i < len(comps); i++ {
		path, _, err := gg.ExpandIsland(0, i)
		if err != nil {
			continue // no conversion path exists; leave the island unreachable
		}
		for _, idx := range path {
			x, y := gg.Coordinate(idx)
			ci := (y+1)*borderedWidth + (x + 1)
			if isInf(cost[ci]) {
				cost[ci] = bridgeCost
			}
		}
	}
}
