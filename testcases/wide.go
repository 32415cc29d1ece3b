package testcases

var wideCases = []TestCase{
	{
		Name:   "width3_horizontal",
		Path:   segment(0, 2.5, 5, 2.5),
		Width:  10,
		Height: 8,
		Stroke: Stroke{Width: 3},
		Want:   block(0, 1, 4, 3),
	},
	// The extra row of even widths goes below the line.
	{
		Name:   "width2_horizontal",
		Path:   segment(0, 2.5, 5, 2.5),
		Width:  10,
		Height: 8,
		Stroke: Stroke{Width: 2},
		Want:   block(0, 2, 4, 3),
	},
	{
		Name:   "width3_vertical",
		Path:   segment(3, 0, 3, 4),
		Width:  10,
		Height: 8,
		Stroke: Stroke{Width: 3},
		Want:   block(2, 0, 4, 3),
	},
	{
		Name:   "width_below_one",
		Path:   segment(0, 2.5, 5, 2.5),
		Width:  10,
		Height: 8,
		Stroke: Stroke{Width: 0.4},
		Want:   row(2, 0, 4),
	},
	{
		Name:   "width3_dash",
		Path:   segment(0, 2.5, 10, 2.5),
		Width:  12,
		Height: 6,
		Stroke: Stroke{Width: 3, Dash: []float64{2, 2}},
		Want: concat(
			atRow(1, 0, 1, 4, 5, 8, 9),
			atRow(2, 0, 1, 4, 5, 8, 9),
			atRow(3, 0, 1, 4, 5, 8, 9),
		),
	},
}
