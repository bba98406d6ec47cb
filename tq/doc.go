// Package tq builds the heat/temperature (TQ) diagram geometry of a pinch
// analysis: composite curves, per-stream separated curves, and the split
// and merged variants used to derive heat exchangers.
//
// Every curve is a slice of Segment ordered by heat. Heat is accumulated
// from zero at the lowest temperature of each class; the cold family is
// then shifted along the heat axis so that the vertical gap between the two
// composites at the pinch equals ΔTmin.
//
// Pipeline:
//
//	Build  → Curves{Hot, Cold, HotSeparated, ColdSeparated}
//	Split  → both families cut on one shared heat grid
//	Merge  → adjacent cells with the same stream pair joined into one match
//
// Separated pieces of one temperature interval are laid in series along the
// composite segment of that interval, so every piece lies on its composite
// and stacking the pieces reproduces the composite exactly.
//
// Merge joins a run of cells only while both sides keep the same stream,
// both pieces are continuous, and the approach at the joint stays strictly
// above ΔTmin. A joint at the pinch therefore always separates two matches.
// Merging an already merged set returns the same set.
package tq
