package testcases

// All contains all samples, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Sample{
	"small":      smallSamples,
	"rows":       rowSamples,
	"structured": structuredSamples,
}
