package gridgraph

import "fmt"

// Flood returns, for every cell, whether it is reachable from any seed by a
// chain of neighbouring passable cells (per gg.Conn).
//
// Behavior:
//  1. Every seed is reached, whether or not it is passable itself.
//  2. Multi-source BFS: all seeds enter the queue before expansion starts.
//  3. A neighbour is enqueued only if passable and not yet reached; the
//     reached flag doubles as the visited marker, so each cell is
//     enqueued at most once and the walk terminates.
//
// Duplicate seeds are allowed. An out-of-range seed yields ErrSeedIndex.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for reached flags and the queue.
func (gg *GridGraph) Flood(seeds []int, passable func(idx int) bool) ([]bool, error) {
	total := gg.Len()
	reached := make([]bool, total)
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= total {
			return nil, fmt.Errorf("gridgraph: seed %d of %d cells: %w", s, total, ErrSeedIndex)
		}
		if !reached[s] {
			reached[s] = true
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			vi := gg.Index(vx, vy)
			if reached[vi] || !passable(vi) {
				continue
			}
			reached[vi] = true
			queue = append(queue, vi)
		}
	}

	return reached, nil
}
