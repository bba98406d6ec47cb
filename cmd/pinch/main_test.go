package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarao1006/pyheatintegration/internal/config"
	"github.com/tarao1006/pyheatintegration/stream"
)

const fourStreamsYAML = `
minimum_approach_temperature_difference: 10
streams:
  - {id: C1, input_temperature: 40, output_temperature: 90, heat_flow: 150, state: liquid}
  - {id: C2, input_temperature: 80, output_temperature: 110, heat_flow: 180, state: liquid}
  - {id: H1, input_temperature: 125, output_temperature: 80, heat_flow: 180, state: liquid}
  - {id: H2, input_temperature: 100, output_temperature: 60, heat_flow: 160, state: liquid}
  - {id: steam, input_temperature: 150, output_temperature: 150, heat_flow: 0, type: external_hot, state: gas_condensation, cost: 2}
  - {id: water, input_temperature: 20, output_temperature: 30, heat_flow: 0, type: external_cold, state: liquid, cost: 0.5}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "streams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", writeConfig(t, fourStreamsYAML)}, &out))

	s := out.String()
	assert.Contains(t, s, "pinch temperature (cold scale): 80 °C")
	assert.Contains(t, s, "hot utility: 30 W")
	assert.Contains(t, s, "cold utility: 40 W")
	assert.Contains(t, s, "utility cost: 80.00")
	assert.Contains(t, s, "heat exchanger cost:")
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-format", "json", writeConfig(t, fourStreamsYAML)}, &out))

	var rep struct {
		PinchTemperature float64 `json:"pinch_temperature"`
		Utilities        []struct {
			ID       string  `json:"id"`
			HeatLoad float64 `json:"heat_load"`
		} `json:"utilities"`
		Diagrams map[string]json.RawMessage `json:"diagrams"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 80.0, rep.PinchTemperature)
	require.Len(t, rep.Utilities, 2)
	assert.Equal(t, "steam", rep.Utilities[0].ID)
	assert.InDelta(t, 30.0, rep.Utilities[0].HeatLoad, 1e-9)
	assert.Len(t, rep.Diagrams, 4)
}

func TestRun_Excel(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-format", "excel", writeConfig(t, fourStreamsYAML)}, &out))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "grand_composite_curve,heat,temperature\n"))
	assert.Contains(t, s, "tq_merged_cold,heat,temperature")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out), "missing file")
	assert.Error(t, run([]string{"-format", "pdf", writeConfig(t, fourStreamsYAML)}, &out))
	assert.Error(t, run([]string{"-dtmin", "50", writeConfig(t, fourStreamsYAML)}, &out))
}

// TestRun_Dump prints the effective configuration with flag overrides applied.
func TestRun_Dump(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-dump", "-dtmin", "12", writeConfig(t, fourStreamsYAML)}, &out))

	cfg, err := config.ParseYAML(&out)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.DeltaTMin)
	require.Len(t, cfg.Streams, 6)
	assert.Equal(t, "steam", cfg.Streams[4].ID())
	assert.Equal(t, stream.ExternalHot, cfg.Streams[4].Type())
	assert.Equal(t, 2.0, cfg.Streams[4].Cost())
}
