package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/envutil"
	"github.com/amp-labs/amp-containers/sorting"
	"gopkg.in/yaml.v3"
)

// Kind selects the element type of the dataset.
type Kind string

const (
	KindInt  Kind = "int"
	KindText Kind = "text"
)

// Order selects how text datasets are compared.
type Order string

const (
	// OrderBytes compares byte-wise, folding ASCII case unless CaseSensitive
	// is set.
	OrderBytes Order = "bytes"
	// OrderFold applies full Unicode case folding.
	OrderFold Order = "fold"
	// OrderNatural orders digit runs numerically.
	OrderNatural Order = "natural"
)

const (
	defaultSize     = 10_000
	defaultSeed     = 1
	defaultRepeat   = 1
	defaultMaxValue = 1_000_000
	maxRepeat       = 1_000
)

var (
	ErrInvalidConfig   = errors.New("invalid benchmark config")
	ErrUnknownFileType = errors.New("unknown config file type")
)

// Config describes one benchmark run. Zero fields take defaults.
type Config struct {
	Strategies    []string `toml:"strategies"     yaml:"strategies"`
	Size          int      `toml:"size"           yaml:"size"`
	Seed          uint64   `toml:"seed"           yaml:"seed"`
	Kind          Kind     `toml:"kind"           yaml:"kind"`
	Order         Order    `toml:"order"          yaml:"order"`
	CaseSensitive bool     `toml:"case_sensitive" yaml:"case_sensitive"`
	Input         string   `toml:"input"          yaml:"input"`
	Workers       int      `toml:"workers"        yaml:"workers"`
	Repeat        int      `toml:"repeat"         yaml:"repeat"`
	MaxValue      int      `toml:"max_value"      yaml:"max_value"`
}

// DefaultConfig runs every strategy over generated integers.
func DefaultConfig() *Config {
	return &Config{
		Strategies:    sorting.Names(),
		Size:          defaultSize,
		Seed:          defaultSeed,
		Kind:          KindInt,
		Order:         OrderBytes,
		CaseSensitive: compare.DefaultCaseSensitive(),
		Workers:       runtime.GOMAXPROCS(0),
		Repeat:        defaultRepeat,
		MaxValue:      defaultMaxValue,
	}
}

// LoadConfig builds a config from defaults, then the file at path (YAML or
// TOML, skipped when path is empty), then SORTBENCH_* variables. The result
// is validated.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(ctx); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFileType, path)
	}

	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv(ctx context.Context) error {
	strategies := envutil.Strings(ctx, "SORTBENCH_STRATEGIES")
	size := envutil.Int[int](ctx, "SORTBENCH_SIZE")
	seed := envutil.Uint[uint64](ctx, "SORTBENCH_SEED")
	kind := envutil.Choice(ctx, "SORTBENCH_KIND", []string{string(KindInt), string(KindText)})
	order := envutil.Choice(ctx, "SORTBENCH_ORDER",
		[]string{string(OrderBytes), string(OrderFold), string(OrderNatural)})
	caseSensitive := envutil.Bool(ctx, "SORTBENCH_CASE_SENSITIVE")
	input := envutil.String(ctx, "SORTBENCH_INPUT")
	workers := envutil.Int[int](ctx, "SORTBENCH_WORKERS")
	repeat := envutil.Int[int](ctx, "SORTBENCH_REPEAT")
	maxValue := envutil.Int[int](ctx, "SORTBENCH_MAX_VALUE")

	for _, err := range []error{
		strategies.Error(), size.Error(), seed.Error(), kind.Error(), order.Error(),
		caseSensitive.Error(), workers.Error(), repeat.Error(), maxValue.Error(),
	} {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	strategies.DoWithValue(func(v []string) { c.Strategies = v })
	size.DoWithValue(func(v int) { c.Size = v })
	seed.DoWithValue(func(v uint64) { c.Seed = v })
	kind.DoWithValue(func(v string) { c.Kind = Kind(v) })
	order.DoWithValue(func(v string) { c.Order = Order(v) })
	caseSensitive.DoWithValue(func(v bool) { c.CaseSensitive = v })
	input.DoWithValue(func(v string) { c.Input = v })
	workers.DoWithValue(func(v int) { c.Workers = v })
	repeat.DoWithValue(func(v int) { c.Repeat = v })
	maxValue.DoWithValue(func(v int) { c.MaxValue = v })

	return nil
}

// Validate fills unset fields with defaults and rejects inconsistent ones.
func (c *Config) Validate() error {
	dflt := DefaultConfig()

	if len(c.Strategies) == 0 {
		c.Strategies = dflt.Strategies
	}

	if c.Kind == "" {
		c.Kind = dflt.Kind
	}

	if c.Order == "" {
		c.Order = dflt.Order
	}

	if c.Workers <= 0 {
		c.Workers = dflt.Workers
	}

	if c.Repeat <= 0 {
		c.Repeat = dflt.Repeat
	}

	for i, name := range c.Strategies {
		c.Strategies[i] = strings.ToLower(strings.TrimSpace(name))

		if _, err := sorting.New(c.Strategies[i], compare.Ordered[int]()); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	switch {
	case c.Kind != KindInt && c.Kind != KindText:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, c.Kind)
	case c.Order != OrderBytes && c.Order != OrderFold && c.Order != OrderNatural:
		return fmt.Errorf("%w: unknown order %q", ErrInvalidConfig, c.Order)
	case c.Size < 0:
		return fmt.Errorf("%w: size must not be negative", ErrInvalidConfig)
	case c.Size == 0 && c.Input == "":
		return fmt.Errorf("%w: size is required without an input corpus", ErrInvalidConfig)
	case c.Input != "" && c.Kind != KindText:
		return fmt.Errorf("%w: an input corpus requires kind %q", ErrInvalidConfig, KindText)
	case c.Repeat > maxRepeat:
		return fmt.Errorf("%w: repeat must be at most %d", ErrInvalidConfig, maxRepeat)
	}

	return nil
}

// textComparator returns the comparator selected by Order.
func (c *Config) textComparator() compare.Comparator[string] {
	switch c.Order {
	case OrderFold:
		return compare.Folded()
	case OrderNatural:
		return compare.Natural()
	default:
		if c.CaseSensitive {
			return compare.Text(compare.CaseSensitive())
		}

		return compare.Text(compare.CaseInsensitive())
	}
}
