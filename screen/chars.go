package screen

// 5x5 glyphs for RenderString and RenderStringIf, one cell of spacing is left between letters.

var (
	Chars = struct{ Plus, One []Cord }{
		Plus: []Cord{
			{X: 2, Y: 1},
			{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 2, Y: 3},
		},
		One: []Cord{
			{X: 2, Y: 0},
			{X: 1, Y: 1}, {X: 2, Y: 1},
			{X: 0, Y: 2}, {X: 2, Y: 2},
			{X: 2, Y: 3},
			{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4},
		},
	}

	charMap = map[rune][]Cord{
		'A': {
			{X: 2, Y: 0},
			{X: 1, Y: 1}, {X: 3, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3},
			{X: 0, Y: 4}, {X: 4, Y: 4},
		},
		'D': {
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 0, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 4, Y: 3},
			{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4},
		},
		'E': {
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3},
			{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4},
		},
		'G': {
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1},
			{X: 0, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 4, Y: 3},
			{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4},
		},
		'M': {
			{X: 0, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 2, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 4, Y: 3},
			{X: 0, Y: 4}, {X: 4, Y: 4},
		},
		'O': {
			{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 0, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 4, Y: 3},
			{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4},
		},
		'P': {
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 0, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 0, Y: 3},
			{X: 0, Y: 4},
		},
		'R': {
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 0, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 0, Y: 3}, {X: 3, Y: 3},
			{X: 0, Y: 4}, {X: 4, Y: 4},
		},
		'S': {
			{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1},
			{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 4, Y: 3},
			{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4},
		},
		'U': {
			{X: 0, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 4, Y: 3},
			{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4},
		},
		'V': {
			{X: 0, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1}, {X: 4, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{X: 1, Y: 3}, {X: 3, Y: 3},
			{X: 2, Y: 4},
		},
	}
)
