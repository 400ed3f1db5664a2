package pathfind

import "math"

// FloodFill runs a multi-source search with no target, populating the
// predecessor and distance fields for every cell reachable from sources. It
// returns false — without mutating the predecessor field in any way the
// caller can observe — if sources is empty or any source cell lies on the
// grid's border.
func (pf *Pathfinder) FloodFill(sources []Cell) bool {
	_, ok := pf.search(sources, nil)

	return ok
}

// FindPath runs a multi-source search biased toward target by the squared-
// Euclidean heuristic, stopping as soon as target is reached. It returns
// false if sources is empty, any source or target lies on the grid's
// border, or target is unreachable from every source.
func (pf *Pathfinder) FindPath(sources []Cell, target Cell) bool {
	reached, ok := pf.search(sources, &target)
	if !ok {
		return false
	}

	return reached
}

// search is the shared engine behind FloodFill (target == nil) and FindPath
// (target != nil). It returns (reached, ok): ok is false on a boundary
// validation failure (no sources, a source or target on the border); reached
// is meaningful only when a target was supplied, and is true once that cell's
// predecessor has been written.
func (pf *Pathfinder) search(sources []Cell, target *Cell) (reached bool, ok bool) {
	if len(sources) == 0 {
		return false, false
	}
	for _, s := range sources {
		if !pf.inInterior(s.X, s.Y) {
			return false, false
		}
	}
	var targetIdx int
	if target != nil {
		if !pf.inInterior(target.X, target.Y) {
			return false, false
		}
		targetIdx = pf.index(target.X, target.Y)
	}

	pf.open.Clear()
	if target != nil {
		pf.open.Comparator().targetX = float32(target.X)
		pf.open.Comparator().targetY = float32(target.Y)
	} else {
		pf.open.Comparator().targetX = 0
		pf.open.Comparator().targetY = 0
	}
	for i := range pf.predecessor {
		pf.predecessor[i] = -1
		pf.distance[i] = float32(math.Inf(1))
	}

	for _, s := range sources {
		idx := int32(pf.index(s.X, s.Y))
		pf.open.Push(frontierNode{
			x:           int16(s.X),
			y:           int16(s.Y),
			parentIndex: -1,
			distance:    0,
		})
		// The degenerate target-equals-source case short-circuits before the
		// main loop even starts, since the source's own frontier node would
		// otherwise be popped and committed with no way to special-case it.
		if target != nil && s.X == target.X && s.Y == target.Y {
			pf.predecessor[idx] = idx
			pf.distance[idx] = 0

			return true, true
		}
	}

	for !pf.open.IsEmpty() {
		h := pf.open.PopHead()
		idx := pf.index(int(h.x), int(h.y))

		// Stale-entry skip: a better record for this cell already landed.
		// distance is reset to +Inf above, so this also covers a committed
		// source, whose predecessor stays -1.
		if pf.distance[idx] < h.distance {
			continue
		}
		pf.predecessor[idx] = h.parentIndex
		pf.distance[idx] = h.distance

		for _, d := range neighborOrder {
			nx, ny := int(h.x)+d.dx, int(h.y)+d.dy
			nIdx := pf.index(nx, ny)

			preConstant, moveCost := pf.moveCost(nIdx, nx, ny, d)

			if target != nil && nx == target.X && ny == target.Y {
				if !d.diagonal || !isInf(preConstant) {
					pf.predecessor[targetIdx] = int32(idx)

					return true, true
				}
				continue
			}

			if isInf(preConstant) {
				continue
			}
			pf.open.Push(frontierNode{
				x:           int16(nx),
				y:           int16(ny),
				parentIndex: int32(idx),
				distance:    h.distance + moveCost,
			})
		}
	}

	return false, true
}

// moveCost computes the pre-constant composite cost (used as the finite/
// impassable gate) and the full move cost (composite plus the 1.0 cardinal
// or √2 diagonal constant) of stepping into the neighbor at (nx,ny) via delta
// d. nIdx is the neighbor's flat index.
func (pf *Pathfinder) moveCost(nIdx, nx, ny int, d neighborDelta) (preConstant, moveCost float32) {
	if !d.diagonal {
		preConstant = pf.cost[nIdx]

		return preConstant, preConstant + 1.0
	}

	// Current cell is (nx-dx, ny-dy); the horizontal adjacent shares the
	// diagonal's x-step with dy=0, the vertical adjacent shares its y-step
	// with dx=0.
	horizIdx := pf.index(nx, ny-d.dy)
	vertIdx := pf.index(nx-d.dx, ny)
	preConstant = pf.cost[nIdx] + pf.cost[horizIdx]/3 + pf.cost[vertIdx]/3

	return preConstant, preConstant + sqrt2
}

// isInf reports whether v is positive infinity — the cost field's sentinel
// for an impassable cell, and for any composite built from one.
func isInf(v float32) bool {
	return math.IsInf(float64(v), 1)
}
