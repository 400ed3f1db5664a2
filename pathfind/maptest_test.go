package pathfind_test

import "math"

// parseMap turns a rectangular ASCII map into a bordered cost field, per the
// base spec's test-harness conventions: space is cost 0, a digit '0'..'9' is
// that integer cost, and any other printable character is impassable. The
// harness adds a one-cell impassable border around the supplied rows, so an
// r-row by c-column map becomes an (r+2)-row by (c+2)-column cost field.
//
// This parser is test-harness scaffolding, not part of the pathfind package:
// the base spec explicitly scopes map-parsing-from-ASCII out of the core.
func parseMap(rows []string) (width, height int, cost []float32) {
	inner := len(rows[0])
	for _, r := range rows {
		if len(r) != inner {
			panic("parseMap: all rows must have equal length")
		}
	}

	width, height = inner+2, len(rows)+2
	cost = make([]float32, width*height)
	inf := float32(math.Inf(1))
	for i := range cost {
		cost[i] = inf
	}

	for y, row := range rows {
		for x := 0; x < inner; x++ {
			c := row[x]
			var v float32
			switch {
			case c == ' ':
				v = 0
			case c >= '0' && c <= '9':
				v = float32(c - '0')
			default:
				v = inf
			}
			cost[(y+1)*width+(x+1)] = v
		}
	}

	return width, height, cost
}
