package testcases

var dashCases = []TestCase{
	{
		Name:   "equal",
		Path:   segment(0, 0.5, 10, 0.5),
		Width:  12,
		Height: 2,
		Stroke: Stroke{Dash: []float64{2, 2}},
		Want:   atRow(0, 0, 1, 4, 5, 8, 9),
	},
	{
		Name:   "phase",
		Path:   segment(0, 0.5, 10, 0.5),
		Width:  12,
		Height: 2,
		Stroke: Stroke{Dash: []float64{2, 2}, DashPhase: 1},
		Want:   atRow(0, 0, 3, 4, 7, 8),
	},
	// The pattern starts at the entry point, which is on the right.
	{
		Name:   "reversed",
		Path:   segment(10, 0.5, 0, 0.5),
		Width:  12,
		Height: 2,
		Stroke: Stroke{Dash: []float64{2, 2}},
		Want:   atRow(0, 1, 2, 5, 6, 9, 10),
	},
	// [1] is used as [1 1].
	{
		Name:   "single_element",
		Path:   segment(0, 0.5, 10, 0.5),
		Width:  12,
		Height: 2,
		Stroke: Stroke{Dash: []float64{1}},
		Want:   atRow(0, 0, 2, 4, 6, 8),
	},
	// [3 1 1] is used as [3 1 1 3 1 1].
	{
		Name:   "three_element",
		Path:   segment(0, 0.5, 10, 0.5),
		Width:  12,
		Height: 2,
		Stroke: Stroke{Dash: []float64{3, 1, 1}},
		Want:   atRow(0, 0, 1, 2, 4, 8),
	},
	{
		Name:   "zero_length_dash",
		Path:   segment(0, 0.5, 10, 0.5),
		Width:  12,
		Height: 2,
		Stroke: Stroke{Dash: []float64{0, 1, 2, 1}},
		Want:   atRow(0, 1, 2, 5, 6, 9),
	},
}
