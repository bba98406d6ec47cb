package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tarao1006/pyheatintegration/stream"
)

var mandatoryColumns = []string{"input_temperature", "output_temperature", "heat_flow"}

// ParseCSV reads a stream table. Columns are matched by header name, so
// their order is free and unknown columns are ignored.
func ParseCSV(r io.Reader) ([]*stream.Stream, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("config: read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range mandatoryColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var out []*stream.Stream
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("config: read csv: %w", err)
		}
		if blank(rec) {
			continue
		}
		e, err := rowToEntry(rec, col)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s, err := e.Stream()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func rowToEntry(rec []string, col map[string]int) (StreamYAML, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}

		return strings.TrimSpace(rec[i])
	}
	number := func(name string) (float64, error) {
		v := field(name)
		if v == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", ErrInvalidRow, name, v)
		}

		return f, nil
	}

	var (
		e   StreamYAML
		err error
	)
	e.ID, e.Type, e.State = field("id"), field("type"), field("state")
	if e.InputTemperature, err = number("input_temperature"); err != nil {
		return e, err
	}
	if e.OutputTemperature, err = number("output_temperature"); err != nil {
		return e, err
	}
	if e.HeatFlow, err = number("heat_flow"); err != nil {
		return e, err
	}
	if e.Cost, err = number("cost"); err != nil {
		return e, err
	}
	if v := field("reboiler_or_reactor"); v != "" {
		if e.ReboilerOrReactor, err = strconv.ParseBool(v); err != nil {
			return e, fmt.Errorf("%w: reboiler_or_reactor %q", ErrInvalidRow, v)
		}
	}

	return e, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
