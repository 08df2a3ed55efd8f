// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// WeightTable maps canonical skill names to their relative importance in
// matching. It is supplied by configuration and immutable for the duration of
// a matching run.
type WeightTable map[string]float64

// baselineWeight is used for any skill absent from the table.
const baselineWeight = 1.0

// Weight returns the weight for a canonical skill, defaulting to the baseline
// of 1.0 when the skill is not in the table.
func (w WeightTable) Weight(skill string) float64 {
	if weight, ok := w[skill]; ok {
		return weight
	}
	return baselineWeight
}
