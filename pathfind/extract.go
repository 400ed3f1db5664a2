package pathfind

// GetPath reconstructs a turn-compressed waypoint list from target back to
// its source, using the predecessor field populated by the most recent
// FloodFill or FindPath call. The returned slice is ordered target-first,
// source-last; it contains only the target, the source, and cells where the
// direction of travel changes. GetPath returns false if Predecessor[target]
// == -1: target was never reached during the last search, or it is a source
// of that search (a source keeps predecessor -1, except in FindPath's
// source-equals-target case).
func (pf *Pathfinder) GetPath(target Cell) ([]Cell, bool) {
	targetIdx := pf.index(target.X, target.Y)
	if pf.predecessor[targetIdx] == -1 {
		return nil, false
	}

	// Source-equals-target degenerate case: the target's own predecessor
	// points at itself. A single-waypoint result is the documented behavior.
	if int(pf.predecessor[targetIdx]) == targetIdx {
		return []Cell{target}, true
	}

	waypoints := []Cell{target}
	cur := targetIdx
	curX, curY := target.X, target.Y
	var prevDX, prevDY int
	havePrevDelta := false

	for {
		parent := int(pf.predecessor[cur])
		px, py := pf.coordinate(parent)
		dx, dy := curX-px, curY-py

		if havePrevDelta && (dx != prevDX || dy != prevDY) {
			waypoints = append(waypoints, Cell{X: curX, Y: curY})
		}
		prevDX, prevDY = dx, dy
		havePrevDelta = true

		cur, curX, curY = parent, px, py

		if pf.predecessor[cur] == -1 {
			waypoints = append(waypoints, Cell{X: curX, Y: curY})

			return waypoints, true
		}
	}
}
