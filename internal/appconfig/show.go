package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"gopkg.in/yaml.v3"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}
	seed := "time-based"
	if cfg.Seed != 0 {
		seed = fmt.Sprintf("%d", cfg.Seed)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Seed:            %s\n", seed)
	fmt.Fprintf(out, "  Graph Range:     %d\n", cfg.PlotRange())
	fmt.Fprintf(out, "  Show Equation:   %v\n", cfg.ShowEquation)
	fmt.Fprintf(out, "  No Color:        %v\n", cfg.NoColor)
}

// Dump writes cfg either as YAML or as a pp pretty-print of the struct.
func Dump(out io.Writer, cfg Config, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config as yaml: %w", err)
		}
		return enc.Close()
	}
	pp.ColoringEnabled = !cfg.NoColor
	_, err := pp.Fprintln(out, cfg)
	return err
}
