// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

// TestLoad covers valid files, partial files that fall back to defaults, and
// the failure modes: bad JSON, schema violations and missing files.
func TestLoad(t *testing.T) {
	path := writeTemp(t, `{"debug": true, "seed": 42, "graphRange": 10, "showEquation": false, "logFile": "logs/p.log"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if !cfg.Debug || cfg.Seed != 42 || cfg.GraphRange != 10 || cfg.ShowEquation {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %s, got %s", path, cfg.ConfigPath)
	}
	if cfg.LogFilePath() != "logs/p.log" {
		t.Fatalf("unexpected log path %s", cfg.LogFilePath())
	}

	partial := writeTemp(t, `{"seed": 7}`)
	cfg, err = Load(partial)
	if err != nil {
		t.Fatalf("Load() with partial config failed: %v", err)
	}
	if !cfg.ShowEquation || cfg.PlotRange() != 20 || cfg.LogFilePath() != "parabolic.log" {
		t.Fatalf("expected defaults to survive partial file: %+v", cfg)
	}

	if _, err := Load(writeTemp(t, `{ "seed": `)); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	_, err = Load(writeTemp(t, `{"graphRange": 500}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for out-of-range graphRange, got %v", err)
	}

	_, err = Load(writeTemp(t, `{"hosts": []}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown key, got %v", err)
	}

	if _, err := Load("nonexistent.json"); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := Default()
	bad.GraphRange = 0
	if err := Validate(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestAccessorsFallBack(t *testing.T) {
	var cfg Config
	if cfg.LogFilePath() != "parabolic.log" {
		t.Fatalf("unexpected default log path %s", cfg.LogFilePath())
	}
	if cfg.PlotRange() != 20 {
		t.Fatalf("unexpected default range %d", cfg.PlotRange())
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Default())
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") || !strings.Contains(out, "Seed:            time-based") {
		t.Fatalf("unexpected output: %s", out)
	}

	buf.Reset()
	cfg := Default()
	cfg.Seed = 9
	ShowConfig(&buf, "config/config.json", &cfg, Config{})
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") || !strings.Contains(out, "Seed:            9") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestDump(t *testing.T) {
	cfg := Default()
	cfg.NoColor = true

	var buf bytes.Buffer
	if err := Dump(&buf, cfg, true); err != nil {
		t.Fatalf("Dump yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "graphRange: 20") {
		t.Fatalf("expected yaml output, got %s", buf.String())
	}

	buf.Reset()
	if err := Dump(&buf, cfg, false); err != nil {
		t.Fatalf("Dump pp: %v", err)
	}
	if !strings.Contains(buf.String(), "GraphRange") {
		t.Fatalf("expected pp output, got %s", buf.String())
	}
}
