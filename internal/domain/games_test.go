package domain

// Complete games used across the tests. Each ends with a decided winner.
var (
	// White reduces Black to two pieces by sliding in and out of a mill.
	game1 = []string{
		"W P 0", "B P 16", "W P 1", "B P 18", "W P 2", "W R 16",
		"B P 20", "W P 3", "B P 22", "W P 4", "W R 18", "B P 8",
		"W P 5", "B P 10", "W P 6", "W R 20", "B P 12", "W P 7",
		"W R 22", "B P 14", "W P 15", "B P 17", "W M 1 9", "B M 17 16",
		"W M 9 1", "W R 8", "B M 16 17", "W M 1 9", "B M 17 16", "W M 9 1",
		"W R 10", "B M 16 18", "W M 1 9", "B M 18 16", "W M 9 1", "W R 12",
	}
	// Black blockades every White piece with the last placement.
	game2 = []string{
		"W P 0", "B P 2", "W P 1", "B P 6", "W P 3", "B P 8",
		"W P 4", "B P 9", "W P 5", "B P 11", "W P 7", "B P 13",
		"W P 10", "B P 15", "W P 12", "B P 19", "W P 14", "B P 23",
	}
	// White blockades Black with its first move.
	game3 = []string{
		"W P 12", "B P 23", "W P 14", "B P 15", "W P 9", "B P 20",
		"W P 18", "B P 22", "W P 0", "B P 7", "B R 18", "W P 16",
		"B P 18", "W P 1", "B P 17", "W P 19", "B P 8", "W P 6",
		"B P 21", "B R 1", "W M 12 13",
	}
	// Black captures down to two White pieces; White flies at the end.
	game4 = []string{
		"W P 19", "B P 0", "W P 4", "B P 12", "W P 18", "B P 21",
		"W P 16", "B P 7", "W P 5", "B P 15", "W P 22", "B P 20",
		"W P 14", "B P 23", "B R 18", "W P 1", "B P 10", "W P 8",
		"B P 6", "B R 22", "W M 19 11", "B M 20 19", "W M 1 2", "B M 12 13",
		"W M 11 12", "B M 23 22", "W M 12 11", "B M 19 20", "B R 4", "W M 5 4",
		"B M 22 23", "B R 4", "W M 2 1", "B M 6 5", "B R 1", "W M 11 3",
		"B M 23 22", "B R 14", "W M 3 1", "B M 5 6", "B R 1",
	}
)

var allGames = map[string][]string{
	"game1": game1,
	"game2": game2,
	"game3": game3,
	"game4": game4,
}
