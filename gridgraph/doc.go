// Package gridgraph treats a width×height pixel grid as an implicit graph,
// enabling multi-source reachability and connected-component analysis
// without materialising any edges.
//
// What:
//
//   - GridGraph describes grid dimensions and neighbour connectivity.
//   - Flood marks every cell reachable from a seed set through passable cells
//     (breadth-first, explicit queue, one visited flag per cell).
//   - ConnectedComponents groups member cells into contiguous regions.
//
// Why:
//
//   - Hysteresis edge tracing: seeds are strong edge pixels, passable cells
//     are weak edge pixels, Conn8 links diagonal neighbours.
//   - Segment statistics: count contiguous edge chains in a binary map.
//
// Cells are addressed by row-major index y*Width + x; use Index and
// Coordinate to convert.
//
// Complexity:
//
//   - Flood:               O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid: width or height ≤ 0.
//   - ErrSeedIndex: a seed index outside the grid.
package gridgraph
