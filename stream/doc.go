// Package stream defines the process fluid stream, the unit of thermal duty
// fed to the pinch-analysis engine.
//
// A Stream is created once through New and is immutable afterwards. Every
// stream belongs to exactly one class:
//
//   - Cold         : process stream that must be heated (input ≤ output)
//   - Hot          : process stream that must be cooled (input ≥ output)
//   - ExternalCold : cold utility, absorbs surplus heat
//   - ExternalHot  : hot utility, supplies missing heat
//
// Auto is accepted at construction and resolved to Cold or Hot by comparing
// the two temperatures. Equal temperatures are rejected with
// ErrAmbiguousType; an isothermal process stream must name its class.
//
// External streams are declared with a zero heat load. Their actual load is
// only known after the cascade has run; the engine then hands back resolved
// copies built with WithHeatLoad and never writes into the caller's values.
//
// Options:
//
//	WithID(id)                 caller supplied identifier (default: random UUID)
//	WithType(t)                stream class (default: Auto)
//	WithState(s)               phase behaviour, used to pick U values (default: Unknown)
//	WithCost(c)                utility cost per unit of heat (external streams only)
//	WithReboilerOrReactor()    doubles the exchanger cost coefficient
//
// Standard utilities (steam levels, cooling water, refrigerants) are
// provided by the constructors in utilities.go.
package stream
