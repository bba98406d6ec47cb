package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tarao1006/pyheatintegration/line"
	"github.com/tarao1006/pyheatintegration/pinch"
)

// money rounds a cost to two decimals for display.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// num rounds a temperature or heat to four decimals and drops trailing zeros.
func num(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String()
}

func writeText(w io.Writer, a *pinch.Analyzer, ignoreUnknown bool) error {
	fmt.Fprintf(w, "minimum approach temperature difference: %s K\n", num(a.DeltaTMin()))
	fmt.Fprintf(w, "pinch temperature (cold scale): %s °C\n", num(a.PinchTemperature()))
	fmt.Fprintf(w, "hot utility: %s W\n", num(a.HotUtility()))
	fmt.Fprintf(w, "cold utility: %s W\n", num(a.ColdUtility()))

	if utils := a.Utilities(); len(utils) > 0 {
		fmt.Fprintln(w, "\nutilities:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "id\ttype\tin [°C]\tout [°C]\tload [W]\tcost")
		for _, s := range utils {
			fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%s\t%s\n",
				s.ID(), s.Type(), s.InputTemperature(), s.OutputTemperature(), num(s.HeatLoad()), money(s.Cost()*s.HeatLoad()))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "utility cost: %s\n", money(a.UtilityCost()))
	}

	fmt.Fprintln(w, "\nheat exchangers:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "hot\tcold\tduty [W]\tU [W/m2K]\tLMTD [K]\tarea [m2]\tcost")
	for _, ex := range a.HeatExchangers() {
		if !ex.Feasible {
			fmt.Fprintf(tw, "%s\t%s\t%s\t-\t-\t-\ttemperature cross\n", ex.Hot.StreamID, ex.Cold.StreamID, num(ex.Duty))
			continue
		}
		if !ex.Known {
			fmt.Fprintf(tw, "%s\t%s\t%s\t-\t%.3f\t-\t-\n", ex.Hot.StreamID, ex.Cold.StreamID, num(ex.Duty), ex.LMTD)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%.3f\t%.4f\t%s\n",
			ex.Hot.StreamID, ex.Cold.StreamID, num(ex.Duty), ex.U, ex.LMTD, ex.Area, money(ex.Cost))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	cost, err := a.HeatExchangerCost(ignoreUnknown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "heat exchanger cost: %s\n", money(cost))

	return err
}

type jsonPoint struct {
	Heat        float64 `json:"heat"`
	Temperature float64 `json:"temperature"`
}

type jsonSegment struct {
	From jsonPoint `json:"from"`
	To   jsonPoint `json:"to"`
}

type jsonDiagram struct {
	Hot  []jsonSegment `json:"hot"`
	Cold []jsonSegment `json:"cold"`
}

type jsonUtility struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	HeatLoad float64 `json:"heat_load"`
	Cost     string  `json:"cost"`
}

type jsonReport struct {
	DeltaTMin           float64                `json:"minimum_approach_temperature_difference"`
	PinchTemperature    float64                `json:"pinch_temperature"`
	HotUtility          float64                `json:"hot_utility"`
	ColdUtility         float64                `json:"cold_utility"`
	Utilities           []jsonUtility          `json:"utilities,omitempty"`
	HeatExchangerCost   string                 `json:"heat_exchanger_cost"`
	GrandCompositeCurve []jsonPoint            `json:"grand_composite_curve"`
	Diagrams            map[string]jsonDiagram `json:"diagrams"`
}

func toJSON(segs []line.Segment) []jsonSegment {
	out := make([]jsonSegment, len(segs))
	for i, s := range segs {
		out[i] = jsonSegment{
			From: jsonPoint{Heat: s.From.Heat, Temperature: s.From.Temperature},
			To:   jsonPoint{Heat: s.To.Heat, Temperature: s.To.Temperature},
		}
	}

	return out
}

func writeJSON(w io.Writer, a *pinch.Analyzer, ignoreUnknown bool) error {
	cost, err := a.HeatExchangerCost(ignoreUnknown)
	if err != nil {
		return err
	}

	rep := jsonReport{
		DeltaTMin:         a.DeltaTMin(),
		PinchTemperature:  a.PinchTemperature(),
		HotUtility:        a.HotUtility(),
		ColdUtility:       a.ColdUtility(),
		HeatExchangerCost: money(cost),
		Diagrams:          map[string]jsonDiagram{},
	}
	for _, s := range a.Utilities() {
		rep.Utilities = append(rep.Utilities, jsonUtility{
			ID: s.ID(), Type: s.Type().String(), HeatLoad: s.HeatLoad(), Cost: money(s.Cost() * s.HeatLoad()),
		})
	}
	heats, temps := a.GrandCompositeCurve()
	for i := range heats {
		rep.GrandCompositeCurve = append(rep.GrandCompositeCurve, jsonPoint{Heat: heats[i], Temperature: temps[i]})
	}
	for name, q := range diagrams(a) {
		h, c := q()
		rep.Diagrams[name] = jsonDiagram{Hot: toJSON(h), Cold: toJSON(c)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

func diagrams(a *pinch.Analyzer) map[string]func() (hot, cold []line.Segment) {
	return map[string]func() (hot, cold []line.Segment){
		"tq":           a.TQ,
		"tq_separated": a.TQSeparated,
		"tq_split":     a.TQSplit,
		"tq_merged":    a.TQMerged,
	}
}

// writeExcel emits one CSV block of x/y columns per diagram curve, the
// layout spreadsheet charts expect.
func writeExcel(w io.Writer, a *pinch.Analyzer) error {
	cw := csv.NewWriter(w)
	write := func(name string, xs, ys []float64) {
		_ = cw.Write([]string{name, "heat", "temperature"})
		for i := range xs {
			_ = cw.Write([]string{"", ftoa(xs[i]), ftoa(ys[i])})
		}
	}

	heats, temps := a.GrandCompositeCurve()
	write("grand_composite_curve", heats, temps)
	for _, name := range []string{"tq", "tq_separated", "tq_split", "tq_merged"} {
		h, c := diagrams(a)[name]()
		xs, ys := line.ToExcelData(h)
		write(name+"_hot", xs, ys)
		xs, ys = line.ToExcelData(c)
		write(name+"_cold", xs, ys)
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
