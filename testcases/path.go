package testcases

import "image"

var pathCases = []TestCase{
	{
		Name:   "corner",
		Path:   polyline(0, 0.5, 5, 0.5, 5, 4.5),
		Width:  8,
		Height: 6,
		Want:   concat(row(0, 0, 4), column(5, 0, 3)),
	},
	// Every pixel of the outline is drawn exactly once.
	{
		Name:   "rectangle",
		Path:   polygon(0, 0.5, 5, 0.5, 5, 4.5, 0, 4.5),
		Width:  8,
		Height: 6,
		Want: concat(
			row(0, 0, 4),
			column(5, 0, 3),
			row(4, 1, 5),
			column(0, 1, 4),
		),
	},
	// Two collinear segments give the same pixels as one long segment.
	{
		Name:   "collinear_junction",
		Path:   polyline(0, 0, 10, 5, 20, 10),
		Width:  22,
		Height: 12,
		Want:   halfSlope(20),
	},
	// The junction lies on the E vertex of pixel (14, 7).  The vertex is
	// hot for the y-major second segment only, so both segments draw the
	// pixel.
	{
		Name:   "mixed_axis_east_vertex",
		Path:   polyline(2.75, 16, 14.5, 7, 16.75, 0.375),
		Width:  20,
		Height: 18,
		Want: []image.Point{
			{14, 7}, {13, 8}, {12, 9}, {10, 10}, {11, 10}, {9, 11}, {8, 12}, {7, 13},
			{5, 14}, {6, 14}, {4, 15}, {3, 16}, {17, 1}, {16, 2}, {16, 3}, {16, 4},
			{15, 5}, {15, 6},
		},
	},
	// The junction lies on the N-W edge of pixel (10, 1).  The y-major
	// first segment leaves the diamond through this edge and the x-major
	// second segment enters through it, so both segments draw the pixel.
	{
		Name:   "mixed_axis_exit_edge",
		Path:   polyline(5, 19.875, 9.625, 0.875, 19.375, 2.5),
		Width:  22,
		Height: 22,
		Want: []image.Point{
			{10, 1}, {9, 2}, {9, 3}, {9, 4}, {9, 5}, {8, 6}, {8, 7}, {8, 8}, {8, 9},
			{7, 10}, {7, 11}, {7, 12}, {7, 13}, {6, 14}, {6, 15}, {6, 16}, {6, 17},
			{5, 18}, {5, 19}, {5, 20}, {11, 1}, {12, 1}, {13, 1}, {14, 2}, {15, 2},
			{16, 2}, {17, 2}, {18, 2}, {19, 2},
		},
	},
}

// halfSlope lists the pixels of the segment from (0, 0) to (2n, n).
func halfSlope(n int) []image.Point {
	res := make([]image.Point, n)
	for x := range n {
		res[x] = image.Pt(x, x/2)
	}
	return res
}
