package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rezonia/price-engine/internal/price"
)

// CalculatorEntry describes the decorators of one calculator
type CalculatorEntry struct {
	Precision *int `yaml:"precision,omitempty"`
}

// CalculatorsFile is the calculator configuration file:
//
//	default:
//	  precision: 2
//	currencies:
//	  JPY: { precision: 0 }
//	  KWD: { precision: 3 }
type CalculatorsFile struct {
	Default    CalculatorEntry            `yaml:"default"`
	Currencies map[string]CalculatorEntry `yaml:"currencies"`
}

// LoadCalculators reads and validates a calculator configuration file
func LoadCalculators(path string) (*CalculatorsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calculators file %s: %w", path, err)
	}

	file, err := ParseCalculators(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calculators file %s: %w", path, err)
	}
	return file, nil
}

// ParseCalculators decodes and validates YAML calculator configuration
func ParseCalculators(data []byte) (*CalculatorsFile, error) {
	var file CalculatorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks precisions and currency symbols
func (f *CalculatorsFile) Validate() error {
	if err := f.Default.validate("default"); err != nil {
		return err
	}
	for symbol, entry := range f.Currencies {
		if _, err := price.NewCurrency(symbol); err != nil {
			return fmt.Errorf("currencies: %w", err)
		}
		if err := entry.validate(symbol); err != nil {
			return err
		}
	}
	return nil
}

func (s CalculatorEntry) validate(name string) error {
	if s.Precision == nil {
		return nil
	}
	if *s.Precision < 0 || *s.Precision > MaxPrecision {
		return fmt.Errorf("%s: precision must be between 0 and %d, got %d", name, MaxPrecision, *s.Precision)
	}
	return nil
}

// Calculator builds the calculator described by s. Without an explicit
// precision it rounds to fallback digits.
func (s CalculatorEntry) Calculator(fallback int32) *price.Calculator {
	precision := fallback
	if s.Precision != nil {
		precision = int32(*s.Precision)
	}
	return price.NewCalculator(price.NewRoundDecorator(precision))
}

// Apply builds a registry holding one calculator per configured currency
func (f *CalculatorsFile) Apply(defaultPrecision int32) (*price.Registry, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	reg := price.NewRegistry(f.Default.Calculator(defaultPrecision))
	for symbol, entry := range f.Currencies {
		reg.SetCalculator(price.MustCurrency(symbol), entry.Calculator(defaultPrecision))
	}
	return reg, nil
}

// NewRegistry builds the registry for cfg, reading cfg.CalculatorsFile when set
func NewRegistry(cfg *Config, logger *slog.Logger) (*price.Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.CalculatorsFile == "" {
		logger.Debug("no calculators file, using default rounding",
			slog.Int("precision", int(cfg.DefaultPrecision)))
		return price.NewRegistry(price.NewCalculator(price.NewRoundDecorator(cfg.DefaultPrecision))), nil
	}

	file, err := LoadCalculators(cfg.CalculatorsFile)
	if err != nil {
		return nil, err
	}

	reg, err := file.Apply(cfg.DefaultPrecision)
	if err != nil {
		return nil, err
	}

	logger.Info("calculators loaded",
		slog.String("file", cfg.CalculatorsFile),
		slog.Int("currencies", len(file.Currencies)),
	)
	return reg, nil
}

// CalculatorInfo summarizes one registered calculator
type CalculatorInfo struct {
	Currency  string `json:"currency,omitempty"`
	Precision *int32 `json:"precision,omitempty"`
	Stages    int    `json:"stages"`
}

// Describe lists the fallback calculator followed by every currency-specific one
func Describe(reg *price.Registry) []CalculatorInfo {
	infos := []CalculatorInfo{describe("", reg.DefaultCalculator())}
	for _, c := range reg.Currencies() {
		infos = append(infos, describe(c.Symbol(), reg.Calculator(c)))
	}
	return infos
}

func describe(symbol string, calc *price.Calculator) CalculatorInfo {
	info := CalculatorInfo{
		Currency: symbol,
		Stages:   len(calc.Decorators()),
	}
	if p, ok := calc.Precision(); ok {
		info.Precision = &p
	}
	return info
}
