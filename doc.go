// Package pyheatintegration is a pinch-analysis toolkit for process heat
// integration: from a table of hot and cold streams it finds the pinch,
// targets the minimum hot and cold utility, draws the composite and grand
// composite curves and sizes a first heat-exchanger network.
//
// Packages:
//
//	interval   closed numeric ranges with a tolerant equality policy
//	line       TQ diagram segments plus plotting helpers
//	stream     immutable process and utility streams
//	cascade    problem-table cascade, pinch temperatures, utility assignment
//	tq         composite, separated, split and merged TQ curves
//	exchanger  overall coefficients, LMTD, area and cost of a match
//	pinch      the Analyzer that ties the pipeline together
//
// The cmd/pinch binary reads a YAML or CSV stream table and prints the
// analysis as text, JSON or spreadsheet-ready columns. The examples
// directory holds two small programs driving the library directly.
//
// Quick start:
//
//	h, _ := stream.New(150, 50, 200, stream.WithType(stream.Hot))
//	c, _ := stream.New(40, 140, 250, stream.WithType(stream.Cold))
//	a, err := pinch.New([]*stream.Stream{h, c}, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(a.PinchTemperature(), a.HotUtility(), a.ColdUtility())
package pyheatintegration
