package testcases

var basicCases = []TestCase{
	// The exit point lies on the S vertex of pixel (5, 0), which belongs
	// to the next segment.
	{
		Name:   "horizontal",
		Path:   segment(0, 0.5, 5, 0.5),
		Width:  8,
		Height: 6,
		Want:   row(0, 0, 4),
	},
	{
		Name:   "horizontal_reversed",
		Path:   segment(5, 0.5, 0, 0.5),
		Width:  8,
		Height: 6,
		Want:   row(0, 1, 5),
	},
	// The line passes through the W and E vertices of each diamond.
	{
		Name:   "horizontal_half_offset",
		Path:   segment(0.5, 1, 5.5, 1),
		Width:  8,
		Height: 6,
		Want:   row(1, 1, 5),
	},
	// The segment stops before reaching the S vertex of pixel (5, 0).
	{
		Name:   "ends_before_hot_point",
		Path:   segment(0, 0.5, 4.3, 0.5),
		Width:  8,
		Height: 6,
		Want:   row(0, 0, 4),
	},
	{
		Name:   "diagonal",
		Path:   segment(0, 0, 4, 4),
		Width:  8,
		Height: 6,
		Want:   pixels(0, 0, 1, 1, 2, 2, 3, 3),
	},
	{
		Name:   "anti_diagonal",
		Path:   segment(4, 0, 0, 4),
		Width:  8,
		Height: 6,
		Want:   pixels(4, 0, 3, 1, 2, 2, 1, 3),
	},
	// y-major: the E vertices at rows 1 and 3 are hot.
	{
		Name:   "steep",
		Path:   segment(1, 0, 3, 4),
		Width:  8,
		Height: 6,
		Want:   pixels(1, 0, 1, 1, 2, 2, 2, 3),
	},
	{
		Name:   "steep_reversed",
		Path:   segment(3, 4, 1, 0),
		Width:  8,
		Height: 6,
		Want:   pixels(1, 1, 2, 2, 2, 3, 3, 4),
	},
	// A line on the boundary between two pixel columns selects the right
	// column.
	{
		Name:   "vertical_boundary",
		Path:   segment(3, 0, 3, 4),
		Width:  8,
		Height: 6,
		Want:   column(3, 0, 3),
	},
	// Moving the line by half a pixel puts it on the E vertices of
	// column 3, which are hot for y-major lines.
	{
		Name:   "vertical_half_offset",
		Path:   segment(3.5, 0.5, 3.5, 4.5),
		Width:  8,
		Height: 6,
		Want:   column(3, 1, 4),
	},
	{
		Name:   "diagonal_half_offset",
		Path:   segment(0.5, 0.5, 4.5, 4.5),
		Width:  8,
		Height: 6,
		Want:   pixels(1, 1, 2, 2, 3, 3, 4, 4),
	},
	{
		Name:   "degenerate",
		Path:   segment(2.5, 2.5, 2.5, 2.5),
		Width:  8,
		Height: 6,
		Want:   nil,
	},
}
