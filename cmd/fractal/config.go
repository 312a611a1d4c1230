package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/openlist"
	"github.com/hupe1980/openlist/eval"
)

// fileConfig is the YAML document read by --config.
type fileConfig struct {
	List      listConfig   `yaml:"list"`
	Grid      gridConfig   `yaml:"grid"`
	Search    searchConfig `yaml:"search"`
	Portfolio []runConfig  `yaml:"portfolio"`
}

// listConfig selects the open list strategy and its settings.
type listConfig struct {
	Kind            openlist.Kind `yaml:"kind"`
	openlist.Config `yaml:",inline"`
}

type gridConfig struct {
	Width   int     `yaml:"width" validate:"min=1"`
	Height  int     `yaml:"height" validate:"min=1"`
	Density float64 `yaml:"density" validate:"gte=0,lt=1"`
	Seed    int64   `yaml:"seed"`
}

type searchConfig struct {
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
	MaxExpansions int           `yaml:"max_expansions" validate:"gte=0"`
	Seed          int64         `yaml:"seed"`
	Race          bool          `yaml:"race"`
}

// runConfig is one portfolio configuration.
type runConfig struct {
	Name         string     `yaml:"name"`
	RelativeTime int        `yaml:"relative_time"`
	List         listConfig `yaml:"list"`
}

var validate = validator.New()

func defaultListConfig() listConfig {
	return listConfig{Kind: openlist.KindFractal, Config: openlist.DefaultConfig()}
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		List: defaultListConfig(),
		Grid: gridConfig{Width: 20, Height: 20, Density: 0.2, Seed: 1},
		Search: searchConfig{
			Timeout: 30 * time.Second,
			Seed:    openlist.DefaultSeed,
		},
	}
}

// UnmarshalYAML fills unset portfolio list settings with the defaults.
func (r *runConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain runConfig
	p := plain{RelativeTime: 1, List: defaultListConfig()}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = runConfig(p)
	return nil
}

func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// validateFileConfig checks the parts of cfg the open list does not check
// itself.
func validateFileConfig(cfg fileConfig) error {
	if err := validate.Struct(cfg.Grid); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if err := validate.Struct(cfg.Search); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := validate.Var(string(cfg.List.Kind), "oneof=fractal tiebreaking"); err != nil {
		return fmt.Errorf("list kind %q: %w", cfg.List.Kind, err)
	}
	for _, r := range cfg.Portfolio {
		if err := validate.Var(r.Name, "required"); err != nil {
			return fmt.Errorf("portfolio name: %w", err)
		}
		if err := validate.Var(r.RelativeTime, "gt=0"); err != nil {
			return fmt.Errorf("portfolio %q relative_time: %w", r.Name, err)
		}
		if err := validate.Var(string(r.List.Kind), "oneof=fractal tiebreaking"); err != nil {
			return fmt.Errorf("portfolio %q kind: %w", r.Name, err)
		}
	}
	return nil
}

// factory completes lc with the evaluators and builds an open list factory.
// Tie-breaking lists break ties by g, fractal lists by plateau depth.
func (lc listConfig) factory(h eval.Evaluator, optFns ...openlist.Option) (*openlist.Factory, error) {
	cfg := lc.Config
	cfg.Evaluators = []eval.Evaluator{h}
	cfg.TypeEvaluators = nil

	if lc.Kind == openlist.KindTieBreaking {
		cfg.TypeEvaluators = []eval.Evaluator{eval.NewG()}
		return openlist.NewTieBreakingFactory(cfg, optFns...)
	}
	return openlist.NewFactory(cfg, optFns...)
}
