package config

// defaultWeights expresses the relative importance of skills in matching.
// Skills absent from the table weigh 1.0. Keys are canonical lowercase skill
// names.
var defaultWeights = map[string]float64{
	// Cloud / DevOps
	"aws":        3.0,
	"docker":     3.0,
	"kubernetes": 3.0,
	"ci/cd":      2.5,
	"terraform":  2.5,
	"linux":      2.5,
	"jenkins":    2.0,

	// Core SWE
	"python":          2.5,
	"java":            2.5,
	"c++":             2.5,
	"c":               2.0,
	"sql":             2.0,
	"git":             2.0,
	"version control": 2.0,
	"unit testing":    2.0,
	"code review":     1.8,

	// Data / ML
	"tensorflow": 2.0,
	"pytorch":    2.0,
	"mlflow":     2.0,
	"airflow":    2.0,

	// Process
	"agile": 1.0,
	"scrum": 1.0,
	"shell": 1.2,
	"bash":  1.2,

	// Embedded / hardware
	"verilog": 1.8,
	"fpga":    1.8,
	"nosql":   1.5,
}

// DefaultWeights returns a copy of the built-in weight table.
func DefaultWeights() map[string]float64 {
	weights := make(map[string]float64, len(defaultWeights))
	for skill, weight := range defaultWeights {
		weights[skill] = weight
	}
	return weights
}
