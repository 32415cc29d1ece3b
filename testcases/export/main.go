// Command export writes test case definitions to JSON, so that other
// implementations can be checked against the same expected pixels.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/line/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Path      []jsonSegment `json:"path"`
	LineWidth float64       `json:"line_width,omitempty"`
	Dash      []float64     `json:"dash,omitempty"`
	DashPhase float64       `json:"dash_phase,omitempty"`
	CTM       []float64     `json:"ctm,omitempty"`
	Want      [][2]int      `json:"want"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	segs, err := pathToJSON(tc.Path)
	if err != nil {
		return jsonTestCase{}, err
	}
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Path:      segs,
		LineWidth: tc.Stroke.Width,
		Dash:      tc.Stroke.Dash,
		DashPhase: tc.Stroke.DashPhase,
		Want:      make([][2]int, len(tc.Want)),
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	for i, p := range tc.Want {
		jtc.Want[i] = [2]int{p.X, p.Y}
	}
	return jtc, nil
}

func pathToJSON(p path.Path) ([]jsonSegment, error) {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		default:
			return nil, fmt.Errorf("unsupported path command %v", cmd)
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}
