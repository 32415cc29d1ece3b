package testcases

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:   "translate",
		Path:   segment(0, 0.5, 5, 0.5),
		Width:  12,
		Height: 6,
		CTM:    matrix.Matrix{1, 0, 0, 1, 3, 2},
		Want:   row(2, 3, 7),
	},
	{
		Name:   "scale_2x",
		Path:   segment(0, 0.25, 2.5, 0.25),
		Width:  12,
		Height: 6,
		CTM:    matrix.Scale(2, 2),
		Want:   row(0, 0, 4),
	},
	{
		Name:   "scale_translate",
		Path:   segment(0, 0.25, 2.5, 0.25),
		Width:  12,
		Height: 6,
		CTM:    matrix.Matrix{2, 0, 0, 2, 1, 1},
		Want:   row(1, 1, 5),
	},
	// Dash lengths are measured in device pixels.
	{
		Name:   "scale_dash",
		Path:   segment(0, 0.25, 5, 0.25),
		Width:  12,
		Height: 6,
		Stroke: Stroke{Dash: []float64{2, 2}},
		CTM:    matrix.Scale(2, 2),
		Want:   atRow(0, 0, 1, 4, 5, 8, 9),
	},
	// Exchanging the axes turns the horizontal line into a vertical one,
	// where the E vertex is hot.
	{
		Name:   "swap_axes",
		Path:   segment(0, 0.5, 5, 0.5),
		Width:  12,
		Height: 6,
		CTM:    matrix.Matrix{0, 1, 1, 0, 0, 0},
		Want:   column(0, 0, 4),
	},
}
