package search

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lottohunt/lottohunt/internal/draw"
)

// Config holds the parameters of one search run.
type Config struct {
	Range     int // size of the number pool, draws use 1..Range
	Pick      int // numbers per combination
	BatchSize int // draws per worker between counter flushes
	Workers   int // 0 means one worker per available CPU
	Seed      int64
	Target    []uint8 // explicit target combination; drawn at random when empty
}

// DefaultConfig returns the classic 6-of-49 setup.
func DefaultConfig() Config {
	return Config{
		Range:     49,
		Pick:      6,
		BatchSize: 100000,
	}
}

// Validate rejects configurations the engine cannot run. Called once
// before any worker spawns so the hot loop never has to re-check.
func (c Config) Validate() error {
	if c.Range <= 0 {
		return fmt.Errorf("range must be positive, got %d", c.Range)
	}
	if c.Range > draw.MaxRange {
		return fmt.Errorf("range must be at most %d, got %d", draw.MaxRange, c.Range)
	}
	if c.Pick <= 0 {
		return fmt.Errorf("pick must be positive, got %d", c.Pick)
	}
	if c.Pick > c.Range {
		return fmt.Errorf("pick %d exceeds range %d", c.Pick, c.Range)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if len(c.Target) > 0 {
		if len(c.Target) != c.Pick {
			return fmt.Errorf("target has %d values, want %d", len(c.Target), c.Pick)
		}
		seen := make(map[uint8]bool, len(c.Target))
		for _, v := range c.Target {
			if int(v) < 1 || int(v) > c.Range {
				return fmt.Errorf("target value %d outside 1..%d", v, c.Range)
			}
			if seen[v] {
				return fmt.Errorf("target value %d repeated", v)
			}
			seen[v] = true
		}
	}
	return nil
}

type hclFile struct {
	Search hclSearch `hcl:"search,block"`
}

type hclSearch struct {
	Range     int   `hcl:"range,optional"`
	Pick      int   `hcl:"pick,optional"`
	BatchSize int   `hcl:"batch_size,optional"`
	Workers   int   `hcl:"workers,optional"`
	Seed      int64 `hcl:"seed,optional"`
}

// LoadConfig loads search configuration from an HCL file, e.g.
//
//	search {
//	  range      = 49
//	  pick       = 6
//	  batch_size = 100000
//	}
//
// Missing file or omitted fields fall back to DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if decoded.Search.Range != 0 {
		cfg.Range = decoded.Search.Range
	}
	if decoded.Search.Pick != 0 {
		cfg.Pick = decoded.Search.Pick
	}
	if decoded.Search.BatchSize != 0 {
		cfg.BatchSize = decoded.Search.BatchSize
	}
	if decoded.Search.Workers != 0 {
		cfg.Workers = decoded.Search.Workers
	}
	if decoded.Search.Seed != 0 {
		cfg.Seed = decoded.Search.Seed
	}

	return cfg, nil
}
