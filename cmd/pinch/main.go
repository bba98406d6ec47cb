// Command pinch runs a pinch analysis over a YAML or CSV stream file and
// prints the utility targets, the exchanger costs and the diagram data.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tarao1006/pyheatintegration/internal/config"
	"github.com/tarao1006/pyheatintegration/internal/log"
	"github.com/tarao1006/pyheatintegration/pinch"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pinch: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configFile    string
	dtMin         float64
	ignoreMaximum bool
	ignoreUnknown bool
	debug         bool
	dump          bool
	format        string
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("pinch", flag.ContinueOnError)
	fs.StringVar(&o.configFile, "config", "", "Path to a YAML or CSV stream file")
	fs.Float64Var(&o.dtMin, "dtmin", 0, "Minimum approach temperature difference in K (overrides the file)")
	fs.BoolVar(&o.ignoreMaximum, "ignore-maximum", false, "Skip the stream temperature range check")
	fs.BoolVar(&o.ignoreUnknown, "ignore-unknown", true, "Skip exchangers without a heat transfer coefficient when costing")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.dump, "dump", false, "Print the effective configuration as YAML and exit")
	fs.StringVar(&o.format, "format", "text", "Output format: text, json or excel")

	if err := fs.Parse(args); err != nil {
		return o, fs, err
	}
	if o.configFile == "" && fs.NArg() > 0 {
		o.configFile = fs.Arg(0)
	}

	return o, fs, nil
}

func run(args []string, out io.Writer) error {
	o, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.configFile == "" {
		fs.Usage()
		return fmt.Errorf("no stream file given")
	}

	if err := log.Init(o.debug); err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	if o.dtMin > 0 {
		cfg.DeltaTMin = o.dtMin
	}
	if o.ignoreMaximum {
		cfg.IgnoreMaximum = true
	}
	log.Sugar().Debugw("loaded configuration",
		"file", o.configFile,
		"streams", len(cfg.Streams),
		"dt_min", cfg.DeltaTMin,
		"ignore_maximum", cfg.IgnoreMaximum,
	)

	if o.dump {
		b, err := config.MarshalYAML(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(b)

		return err
	}

	opts := []pinch.Option{pinch.WithLogger(log.Logger())}
	if cfg.IgnoreMaximum {
		opts = append(opts, pinch.WithIgnoreMaximum())
	}
	a, err := pinch.New(cfg.Streams, cfg.DeltaTMin, opts...)
	if err != nil {
		if bounds, berr := pinch.ApproachBounds(cfg.Streams, cfg.IgnoreMaximum); berr == nil {
			log.Sugar().Infow("admissible minimum approach temperature difference",
				"min_exclusive", bounds.Start, "max", bounds.Finish)
		}
		return err
	}

	switch o.format {
	case "text":
		return writeText(out, a, o.ignoreUnknown)
	case "json":
		return writeJSON(out, a, o.ignoreUnknown)
	case "excel":
		return writeExcel(out, a)
	}

	return fmt.Errorf("unknown format %q", o.format)
}
