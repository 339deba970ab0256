package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives one profiling run.
type Config struct {
	Iterations  int    `yaml:"iterations"`
	Vectors     int    `yaml:"vectors"`
	Fill        int    `yaml:"fill"`
	PprofAddr   string `yaml:"pprof_addr"`
	HeapProfile string `yaml:"heap_profile"`
	DumpPath    string `yaml:"dump_path"`
	LogLevel    string `yaml:"log_level"`
	Hold        bool   `yaml:"hold"`
}

// RegisterFlags registers the config fields on f, using the current values
// as defaults.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.IntVar(&c.Iterations, "iterations", 10000, "Rounds of build, fill and free.")
	f.IntVar(&c.Vectors, "vectors", 16, "Vectors carved from the slab per round.")
	f.IntVar(&c.Fill, "fill", 1024, "Bytes pushed into each vector, at most 1024.")
	f.StringVar(&c.PprofAddr, "pprof-addr", "", "Serve net/http/pprof on this address when set.")
	f.StringVar(&c.HeapProfile, "heap-profile", "mem.prof", "Write a heap profile here when set.")
	f.StringVar(&c.DumpPath, "dump", "", "Write the last round's vectors, zstd compressed, here when set.")
	f.StringVar(&c.LogLevel, "log.level", "info", "One of debug, info, warn, error.")
	f.BoolVar(&c.Hold, "hold", false, "Keep the process alive after the run so pprof can be scraped.")
}

// Validate reports the first unusable field.
func (c *Config) Validate() error {
	switch {
	case c.Iterations < 1:
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	case c.Vectors < 1:
		return fmt.Errorf("vectors must be positive, got %d", c.Vectors)
	case c.Fill < 0 || c.Fill > 1024:
		return fmt.Errorf("fill must be within [0, 1024], got %d", c.Fill)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadFile overlays the yaml file at path onto c. Unknown keys are errors.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
