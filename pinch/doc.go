// Package pinch is the entry point of the heat-integration engine.
//
// New takes the process and utility streams together with the minimum
// approach temperature difference ΔTmin and runs the whole analysis at once:
//
//  1. Validate      : stream IDs, stream classes, temperature ranges, ΔTmin bound
//  2. cascade.Solve : problem table, utility targets, pinch temperature
//  3. cascade.AssignUtilities : resolved copies of the external streams
//  4. tq.Build / tq.Split / tq.Merge : diagram geometry
//  5. exchanger.FromMatches : sized and priced exchangers
//
// Construction is all-or-nothing: either every step succeeds and an
// Analyzer is returned, or the first error is returned and nothing is kept.
// The Analyzer is immutable afterwards; its results are frozen at
// construction time and every query returns a fresh copy, so one Analyzer
// may be shared by concurrent readers. The caller's streams are never
// modified.
//
// Validation errors wrap ErrValidation together with one specific sentinel:
//
//	ErrNilStream, ErrDuplicateStreamID, ErrMissingStreamClass,
//	ErrInfeasibleStreamRange, ErrInvalidApproachTemperature
//
// Admissible ΔTmin:
//
//	bound = maxHot − minCold                              with WithIgnoreMaximum
//	bound = min(maxHot − maxCold, minHot − minCold)       otherwise
//	0 < ΔTmin ≤ bound
//
// where hot and cold temperatures are the inlet and outlet temperatures of
// every stream of that class, utilities included.
//
// Temperatures reported by GrandCompositeCurve and PinchTemperature are on
// the cold scale: cold temperatures as they are, hot ones lowered by ΔTmin.
package pinch
