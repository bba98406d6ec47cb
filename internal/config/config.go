// Package config loads stream tables and analysis settings for the command
// line front end. YAML files carry the full settings; CSV files carry only
// the stream table in the column layout
//
//	id,input_temperature,output_temperature,heat_flow,type,state,cost,reboiler_or_reactor
//
// Only the temperature and heat_flow columns are mandatory.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tarao1006/pyheatintegration/stream"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .csv.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrMissingColumn indicates a CSV header without a mandatory column.
	ErrMissingColumn = errors.New("config: missing mandatory column")

	// ErrInvalidRow indicates a stream entry that cannot be turned into a stream.
	ErrInvalidRow = errors.New("config: invalid stream entry")
)

// Config is a loaded analysis setup.
type Config struct {
	DeltaTMin     float64
	IgnoreMaximum bool
	Streams       []*stream.Stream
}

// StreamYAML is one stream entry of a YAML file.
type StreamYAML struct {
	ID                string  `yaml:"id"`
	InputTemperature  float64 `yaml:"input_temperature"`
	OutputTemperature float64 `yaml:"output_temperature"`
	HeatFlow          float64 `yaml:"heat_flow"`
	Type              string  `yaml:"type,omitempty"`
	State             string  `yaml:"state,omitempty"`
	Cost              float64 `yaml:"cost,omitempty"`
	ReboilerOrReactor bool    `yaml:"reboiler_or_reactor,omitempty"`
}

// FileYAML is the layout of a YAML configuration file.
type FileYAML struct {
	DeltaTMin     float64      `yaml:"minimum_approach_temperature_difference"`
	IgnoreMaximum bool         `yaml:"ignore_maximum,omitempty"`
	Streams       []StreamYAML `yaml:"streams"`
}

// Load reads path as YAML or CSV depending on its extension.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	case ".csv":
		streams, err := ParseCSV(f)
		if err != nil {
			return nil, err
		}

		return &Config{Streams: streams}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ParseYAML decodes a YAML configuration.
func ParseYAML(r io.Reader) (*Config, error) {
	var file FileYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	cfg := &Config{DeltaTMin: file.DeltaTMin, IgnoreMaximum: file.IgnoreMaximum}
	for i, e := range file.Streams {
		s, err := e.Stream()
		if err != nil {
			return nil, fmt.Errorf("stream %d: %w", i+1, err)
		}
		cfg.Streams = append(cfg.Streams, s)
	}

	return cfg, nil
}

// Stream converts the entry to a validated stream.
func (e StreamYAML) Stream() (*stream.Stream, error) {
	typ, err := stream.ParseType(e.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}
	state, err := stream.ParseState(e.State)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}
	opts := []stream.Option{
		stream.WithID(e.ID),
		stream.WithType(typ),
		stream.WithState(state),
		stream.WithCost(e.Cost),
	}
	if e.ReboilerOrReactor {
		opts = append(opts, stream.WithReboilerOrReactor())
	}
	s, err := stream.New(e.InputTemperature, e.OutputTemperature, e.HeatFlow, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}

	return s, nil
}

// MarshalYAML writes cfg back in the FileYAML layout.
func MarshalYAML(cfg *Config) ([]byte, error) {
	file := FileYAML{DeltaTMin: cfg.DeltaTMin, IgnoreMaximum: cfg.IgnoreMaximum}
	for _, s := range cfg.Streams {
		file.Streams = append(file.Streams, StreamYAML{
			ID:                s.ID(),
			InputTemperature:  s.InputTemperature(),
			OutputTemperature: s.OutputTemperature(),
			HeatFlow:          s.HeatLoad(),
			Type:              s.Type().String(),
			State:             s.State().String(),
			Cost:              s.Cost(),
			ReboilerOrReactor: s.ReboilerOrReactor(),
		})
	}

	return yaml.Marshal(file)
}
