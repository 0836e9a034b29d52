// File: gridgraph/flood_test.go
package gridgraph

import (
	"errors"
	"testing"
)

func reachedCells(reached []bool) []int {
	var out []int
	for i, r := range reached {
		if r {
			out = append(out, i)
		}
	}
	return out
}

// TestFlood_DiagonalChain seeds the top-left corner of a diagonal chain of
// passable cells. Conn8 reaches the whole chain, Conn4 only the seed.
//
//	S . .
//	. 1 .
//	. . 1
func TestFlood_DiagonalChain(t *testing.T) {
	grid := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	gg, passable := from2D(t, grid, Conn8)
	reached, err := gg.Flood([]int{0}, passable)
	if err != nil {
		t.Fatalf("Flood error: %v", err)
	}
	if got := reachedCells(reached); len(got) != 3 || got[0] != 0 || got[1] != 4 || got[2] != 8 {
		t.Errorf("Conn8 reached %v; want [0 4 8]", got)
	}

	gg4, passable4 := from2D(t, grid, Conn4)
	reached, _ = gg4.Flood([]int{0}, passable4)
	if got := reachedCells(reached); len(got) != 1 || got[0] != 0 {
		t.Errorf("Conn4 reached %v; want [0]", got)
	}
}

// TestFlood_MultiSource checks that two seeds expand independently and that
// unreachable passable cells stay unreached.
//
//	S 1 0 1 1
//	0 0 0 0 0
//	1 1 0 0 S
func TestFlood_MultiSource(t *testing.T) {
	grid := [][]int{
		{0, 1, 0, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0},
	}
	gg, passable := from2D(t, grid, Conn8)
	reached, err := gg.Flood([]int{gg.Index(0, 0), gg.Index(4, 2), gg.Index(0, 0)}, passable)
	if err != nil {
		t.Fatalf("Flood error: %v", err)
	}
	want := map[int]bool{0: true, 1: true, 14: true}
	for i, r := range reached {
		if r != want[i] {
			t.Errorf("cell %d reached=%v; want %v", i, r, want[i])
		}
	}
}

func TestFlood_BadSeed(t *testing.T) {
	gg, passable := from2D(t, [][]int{{1, 1}}, Conn8)
	if _, err := gg.Flood([]int{2}, passable); !errors.Is(err, ErrSeedIndex) {
		t.Errorf("seed 2: got %v; want ErrSeedIndex", err)
	}
	if _, err := gg.Flood([]int{-1}, passable); !errors.Is(err, ErrSeedIndex) {
		t.Errorf("seed -1: got %v; want ErrSeedIndex", err)
	}
}

// TestFlood_VisitsEachCellOnce counts predicate calls per cell on a fully
// passable grid; the reached flag is checked first, so a cell is tested
// at most once and never re-enqueued.
func TestFlood_VisitsEachCellOnce(t *testing.T) {
	gg, _ := NewGridGraph(20, 20, GridOptions{Conn: Conn8})
	enqueued := make([]int, gg.Len())
	passable := func(i int) bool { return true }
	reached, err := gg.Flood([]int{0}, func(i int) bool {
		if passable(i) {
			enqueued[i]++
		}
		return passable(i)
	})
	if err != nil {
		t.Fatalf("Flood error: %v", err)
	}
	for i, r := range reached {
		if !r {
			t.Fatalf("cell %d not reached on an all-passable grid", i)
		}
		if enqueued[i] > 1 {
			t.Errorf("cell %d tested %d times; want ≤ 1", i, enqueued[i])
		}
	}
}
