package domain

// Color identifies a side. None marks an empty point.
type Color uint8

const (
	None Color = iota
	White
	Black
)

// Opponent returns the other side. None has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

// String returns the single letter used by the action grammar.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Black:
		return "B"
	default:
		return "."
	}
}

// side maps a player color to its slot in per-side counters.
func (c Color) side() int {
	if c == Black {
		return 1
	}
	return 0
}

// Point is a board position, 0..23.
type Point int

// NumPoints is the number of points on the board.
const NumPoints = 24

// Board holds the contents of every point.
type Board [NumPoints]Color

// Valid reports whether p lies on the board.
func (p Point) Valid() bool { return p >= 0 && p < NumPoints }

// The board is three concentric squares, numbered clockwise from the
// top-left corner of each square:
//
//	0--------1--------2
//	|  8-----9----10  |
//	|  |  16-17-18 |  |
//	7-15-23     19-11-3
//	|  |  22-21-20 |  |
//	|  14---13----12  |
//	6--------5--------4
var adjacency = [NumPoints][]Point{
	0: {1, 7}, 1: {0, 2, 9}, 2: {1, 3}, 3: {2, 4, 11},
	4: {3, 5}, 5: {4, 6, 13}, 6: {5, 7}, 7: {6, 0, 15},
	8: {9, 15}, 9: {8, 10, 1, 17}, 10: {9, 11}, 11: {10, 12, 3, 19},
	12: {11, 13}, 13: {12, 14, 5, 21}, 14: {13, 15}, 15: {14, 8, 7, 23},
	16: {17, 23}, 17: {16, 18, 9}, 18: {17, 19}, 19: {18, 20, 11},
	20: {19, 21}, 21: {20, 22, 13}, 22: {21, 23}, 23: {22, 16, 15},
}

var mills = [16][3]Point{
	// square sides
	{0, 1, 2}, {2, 3, 4}, {4, 5, 6}, {6, 7, 0},
	{8, 9, 10}, {10, 11, 12}, {12, 13, 14}, {14, 15, 8},
	{16, 17, 18}, {18, 19, 20}, {20, 21, 22}, {22, 23, 16},
	// spokes
	{1, 9, 17}, {3, 11, 19}, {5, 13, 21}, {7, 15, 23},
}

// millsThrough lists, per point, the indexes into mills of the lines
// containing that point. Every point lies on exactly two lines.
var millsThrough = func() (idx [NumPoints][]int) {
	for i, line := range mills {
		for _, p := range line {
			idx[p] = append(idx[p], i)
		}
	}
	return idx
}()

// Layout gives the row and column of every point on a 7x7 grid.
var Layout = [NumPoints][2]int{
	{0, 0}, {0, 3}, {0, 6}, {3, 6}, {6, 6}, {6, 3}, {6, 0}, {3, 0},
	{1, 1}, {1, 3}, {1, 5}, {3, 5}, {5, 5}, {5, 3}, {5, 1}, {3, 1},
	{2, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 4}, {4, 3}, {4, 2}, {3, 2},
}

// Adjacent reports whether a and b are directly connected.
func Adjacent(a, b Point) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	for _, n := range adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Neighbors returns the points directly connected to p.
func Neighbors(p Point) []Point {
	if !p.Valid() {
		return nil
	}
	out := make([]Point, len(adjacency[p]))
	copy(out, adjacency[p])
	return out
}

// Mills returns all 16 mill lines.
func Mills() [16][3]Point { return mills }

func lineOwnedBy(b *Board, line [3]Point, c Color) bool {
	return b[line[0]] == c && b[line[1]] == c && b[line[2]] == c
}

// inMill reports whether the piece at p is part of a completed mill.
func inMill(b *Board, p Point) bool {
	c := b[p]
	if c == None {
		return false
	}
	for _, i := range millsThrough[p] {
		if lineOwnedBy(b, mills[i], c) {
			return true
		}
	}
	return false
}

// hasPieceOutsideMill reports whether c has any piece not part of a mill.
func hasPieceOutsideMill(b *Board, c Color) bool {
	for p := Point(0); p < NumPoints; p++ {
		if b[p] == c && !inMill(b, p) {
			return true
		}
	}
	return false
}
