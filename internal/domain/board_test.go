package domain

import "testing"

func TestAdjacencyIsSymmetric(t *testing.T) {
	for p := Point(0); p < NumPoints; p++ {
		for _, n := range Neighbors(p) {
			if !Adjacent(n, p) {
				t.Fatalf("%d lists %d as neighbor but not the reverse", p, n)
			}
		}
	}
	if Adjacent(0, 24) || Adjacent(-1, 0) || Neighbors(24) != nil {
		t.Fatalf("points off the board have no neighbors")
	}
}

func TestSpokesConnectSquares(t *testing.T) {
	spokes := [][3]Point{{1, 9, 17}, {3, 11, 19}, {5, 13, 21}, {7, 15, 23}}
	for _, s := range spokes {
		if !Adjacent(s[0], s[1]) || !Adjacent(s[1], s[2]) || Adjacent(s[0], s[2]) {
			t.Fatalf("bad spoke %v", s)
		}
	}
	corners := []Point{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22}
	for _, c := range corners {
		if len(Neighbors(c)) != 2 {
			t.Fatalf("corner %d should have 2 neighbors, has %v", c, Neighbors(c))
		}
	}
}

func TestEveryPointOnTwoMills(t *testing.T) {
	for p := Point(0); p < NumPoints; p++ {
		if len(millsThrough[p]) != 2 {
			t.Fatalf("point %d lies on %d mills", p, len(millsThrough[p]))
		}
	}
	// every mill is a connected path: middle point adjacent to both ends
	for _, line := range Mills() {
		if !Adjacent(line[0], line[1]) || !Adjacent(line[1], line[2]) {
			t.Fatalf("mill %v is not a straight connected line", line)
		}
	}
}

func TestLayoutIsUnique(t *testing.T) {
	seen := map[[2]int]Point{}
	for p, rc := range Layout {
		if q, dup := seen[rc]; dup {
			t.Fatalf("points %d and %d share grid cell %v", q, p, rc)
		}
		seen[rc] = Point(p)
		if rc[0] < 0 || rc[0] > 6 || rc[1] < 0 || rc[1] > 6 {
			t.Fatalf("point %d off the 7x7 grid: %v", p, rc)
		}
	}
}

func TestColorOpponent(t *testing.T) {
	if White.Opponent() != Black || Black.Opponent() != White || None.Opponent() != None {
		t.Fatalf("unexpected opponents")
	}
}
