// Package line holds the numeric line-segment geometry returned by every
// diagram-producing query of the engine.
//
// Coordinates are (heat, temperature) pairs. Within a curve, segments are
// ordered by non-decreasing heat and each Segment itself runs From the lower
// heat coordinate To the higher one.
//
// Helper transforms serve an external renderer or tabular exporter:
//
//   - ExtractX    : sorted unique heat coordinates of all endpoints
//   - YRange      : minimum and maximum temperature over all endpoints
//   - ToExcelData : parallel x/y arrays of a polyline, shared vertices once
package line
