package pricelib

import (
	"fmt"

	"github.com/rezonia/price-engine/internal/config"
	"github.com/rezonia/price-engine/internal/price"
)

// EngineOptions configures rounding for an Engine
type EngineOptions struct {
	// Precision applied to currencies without their own entry
	DefaultPrecision int32
	// Precision per currency symbol, e.g. {"JPY": 0}
	Currencies map[string]int32
}

// DefaultEngineOptions returns options rounding every currency to two digits
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		DefaultPrecision: price.DefaultPrecision,
	}
}

// Engine is a Registry configured from options or a calculators file
type Engine struct {
	*Registry
}

// NewEngine creates an engine with the given options
func NewEngine(opts EngineOptions) (*Engine, error) {
	file := config.CalculatorsFile{
		Currencies: make(map[string]config.CalculatorEntry, len(opts.Currencies)),
	}
	for symbol, precision := range opts.Currencies {
		p := int(precision)
		file.Currencies[symbol] = config.CalculatorEntry{Precision: &p}
	}

	if opts.DefaultPrecision < 0 || opts.DefaultPrecision > config.MaxPrecision {
		return nil, fmt.Errorf("default precision must be between 0 and %d, got %d", config.MaxPrecision, opts.DefaultPrecision)
	}

	reg, err := file.Apply(opts.DefaultPrecision)
	if err != nil {
		return nil, err
	}
	return &Engine{Registry: reg}, nil
}

// NewDefaultEngine creates an engine with default options
func NewDefaultEngine() *Engine {
	engine, _ := NewEngine(DefaultEngineOptions())
	return engine
}

// LoadEngine creates an engine from a YAML calculators file
func LoadEngine(path string) (*Engine, error) {
	file, err := config.LoadCalculators(path)
	if err != nil {
		return nil, err
	}
	reg, err := file.Apply(price.DefaultPrecision)
	if err != nil {
		return nil, err
	}
	return &Engine{Registry: reg}, nil
}
