package openlist

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/internal/bucket"
)

// QueueType selects how entries are evicted from a bucket.
type QueueType = bucket.Policy

const (
	// FIFO serves the oldest entry of a bucket first.
	FIFO = bucket.FIFO
	// LIFO serves the newest entry of a bucket first.
	LIFO = bucket.LIFO
	// Random serves a uniformly drawn entry.
	Random = bucket.Random
)

// ParseQueueType parses "FIFO", "LIFO" or "RANDOM" (case-insensitive).
func ParseQueueType(s string) (QueueType, error) { return bucket.ParsePolicy(s) }

// DefaultMaxDepth is the default of Config.MaxDepth.
const DefaultMaxDepth = 1000000

// Config is the finished configuration of a tie-breaking or fractal open
// list. All values are fixed for the lifetime of a list.
type Config struct {
	// Evaluators produce the primary key, compared lexicographically with
	// smaller values preferred.
	Evaluators []eval.Evaluator `yaml:"-" validate:"min=1"`

	// TypeEvaluators produce the type key that partitions a primary key into
	// type buckets. When empty, NewFactory installs an eval.Depth over
	// Evaluators.
	TypeEvaluators []eval.Evaluator `yaml:"-"`

	// QueueType is the eviction policy applied at every bucket pop.
	QueueType QueueType `yaml:"queue_type" validate:"oneof=0 1 2"`

	// PreferredOnly makes Insert drop entries not reached by a preferred
	// operator.
	PreferredOnly bool `yaml:"pref_only"`

	// UnsafePruning also drops entries the first evaluator deems dead ends
	// even when its dead ends are not reliable.
	UnsafePruning bool `yaml:"unsafe_pruning"`

	// Stochastic selects uniformly among qualifying type buckets instead of
	// taking the first.
	Stochastic bool `yaml:"stochastic"`

	// MaxDepth is the maximum plateau depth. It is validated but not
	// enforced by any list.
	MaxDepth int `yaml:"max_depth" validate:"gt=0"`

	// RecordDepth makes the default depth type evaluator keep a histogram.
	RecordDepth bool `yaml:"record"`
}

// DefaultConfig returns the default configuration over evals.
func DefaultConfig(evals ...eval.Evaluator) Config {
	return Config{
		Evaluators:    evals,
		QueueType:     FIFO,
		UnsafePruning: true,
		Stochastic:    true,
		MaxDepth:      DefaultMaxDepth,
	}
}

var validate = validator.New()

// Validate checks c and returns a *ConfigError describing the first
// violation.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ConfigError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Value: fe.Value(),
			cause: err,
		}
	}
	return &ConfigError{cause: err}
}

// withDefaultTypeEvaluators returns c with a depth type evaluator installed
// if no type evaluators are configured.
func (c Config) withDefaultTypeEvaluators() Config {
	if len(c.TypeEvaluators) == 0 {
		c.TypeEvaluators = []eval.Evaluator{eval.NewDepth(c.Evaluators, c.RecordDepth)}
	}
	return c
}
