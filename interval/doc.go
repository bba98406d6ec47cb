// Package interval provides the closed numeric ranges used throughout the
// heat-integration engine, for temperatures and heat loads alike.
//
// A Range is always normalised so that Start ≤ Finish, whatever order the
// endpoints were given in. On top of that the package offers the small
// amount of range arithmetic the cascade and curve builders rely on:
//
//   - Overlap     : intersection of two ranges (width may be zero)
//   - Mergeable   : whether two ranges touch end to start
//   - FromPoints  : consecutive ranges over a sorted set of points
//   - Flatten     : sorted, de-duplicated endpoints of a set of ranges
//
// Numeric policy:
//
//	Epsilon is the single tolerance used by the engine when deciding whether
//	two floating-point values denote the same temperature or heat coordinate.
//	ApproxEqual applies it as an absolute-or-relative check so that both
//	small (°C) and large (W) magnitudes compare sensibly.
//
// Example:
//
//	a := interval.New(10, 0)  // {0, 10}
//	b := interval.New(10, 20) // {10, 20}
//	a.Mergeable(b)            // true
//	interval.Flatten([]interval.Range{a, b}) // [0 10 20]
package interval
