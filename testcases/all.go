package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"basic": basicCases,
	"dash":  dashCases,
	"ctm":   ctmCases,
	"wide":  wideCases,
	"path":  pathCases,
}
