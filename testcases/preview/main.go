// seehuhn.de/go/line - aliased line rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command preview draws the test cases in the terminal.
//
// Every pixel is shown as a two-character cell.  Pixels which are drawn
// and expected are green, expected pixels which are missing are red, and
// unexpected pixels are orange.  The exit status is 1 if any test case
// does not match.
package main

import (
	"flag"
	"fmt"
	"image"
	"maps"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"seehuhn.de/go/line"
	"seehuhn.de/go/line/testcases"
)

var (
	bg      = lipgloss.NewStyle().Foreground(lipgloss.Color("#333333"))
	hit     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00d4a0"))
	missing = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3333")).Bold(true)
	extra   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6600")).Bold(true)
	title   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffcc")).Bold(true)
	legend  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func main() {
	category := flag.String("category", "", "only show this category")
	name := flag.String("name", "", "only show test cases with this name")
	flag.Parse()

	failed := 0
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if *category != "" && cat != *category {
			continue
		}
		for _, tc := range testcases.All[cat] {
			if *name != "" && tc.Name != *name {
				continue
			}
			ok, err := show(cat+"_"+tc.Name, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", cat, tc.Name, err)
				failed++
			} else if !ok {
				failed++
			}
		}
	}

	fmt.Println(legend.Render("  ██ drawn   ·· missing   ▓▓ unexpected"))
	if failed > 0 {
		fmt.Printf("%d test cases differ\n", failed)
		os.Exit(1)
	}
}

// show renders one test case and prints the pixel grid.
func show(name string, tc testcases.TestCase) (bool, error) {
	dst := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	if err := line.RenderExample(tc, dst); err != nil {
		return false, err
	}

	want := make(map[image.Point]bool, len(tc.Want))
	for _, p := range tc.Want {
		want[p] = true
	}

	ok := true
	var sb strings.Builder
	for y := range tc.Height {
		sb.WriteString("  ")
		for x := range tc.Width {
			drawn := dst.GrayAt(x, y).Y != 0
			expected := want[image.Pt(x, y)]
			switch {
			case drawn && expected:
				sb.WriteString(hit.Render("██"))
			case expected:
				sb.WriteString(missing.Render("··"))
				ok = false
			case drawn:
				sb.WriteString(extra.Render("▓▓"))
				ok = false
			default:
				sb.WriteString(bg.Render(". "))
			}
		}
		sb.WriteByte('\n')
	}

	status := "ok"
	if !ok {
		status = "MISMATCH"
	}
	fmt.Println(title.Render(fmt.Sprintf("%s (%dx%d) %s", name, tc.Width, tc.Height, status)))
	fmt.Println(sb.String())
	return ok, nil
}
