package openlist

// Kind names an open list strategy a Factory can build.
type Kind string

const (
	// KindFractal builds Fractal lists.
	KindFractal Kind = "fractal"
	// KindTieBreaking builds TieBreaking lists.
	KindTieBreaking Kind = "tiebreaking"
)

// Factory builds independent open lists for the two entry shapes of the
// planner from one validated configuration.
//
// Every list created by a factory owns its hierarchy, records and dimensions.
// Evaluators are configuration values and are shared between the lists,
// including any mutable state they keep: the default depth type evaluator
// holds one per-state depth table and histogram for all lists of the
// factory. A source passed with WithRand is shared as well; use WithSeed or
// WithRandFunc to give every list its own generator.
type Factory struct {
	kind   Kind
	cfg    Config
	optFns []Option
}

// NewFactory validates cfg and returns a factory for fractal open lists.
// If cfg has no type evaluators, an eval.Depth over cfg.Evaluators is
// installed (recording a histogram if cfg.RecordDepth is set). That
// evaluator is shared by all lists of the factory; create one factory per
// search when depth information must not mix.
func NewFactory(cfg Config, optFns ...Option) (*Factory, error) {
	return newFactory(KindFractal, cfg, optFns)
}

// NewTieBreakingFactory validates cfg and returns a factory for typed
// tie-breaking open lists. Type evaluators are used as given.
func NewTieBreakingFactory(cfg Config, optFns ...Option) (*Factory, error) {
	return newFactory(KindTieBreaking, cfg, optFns)
}

func newFactory(kind Kind, cfg Config, optFns []Option) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if kind == KindFractal {
		cfg = cfg.withDefaultTypeEvaluators()
	}
	return &Factory{
		kind:   kind,
		cfg:    cfg,
		optFns: optFns,
	}, nil
}

// Kind returns the strategy built by the factory.
func (f *Factory) Kind() Kind { return f.kind }

// Config returns the configuration the factory builds from.
func (f *Factory) Config() Config { return f.cfg }

// NewStateOpenList creates a fresh open list of states.
func (f *Factory) NewStateOpenList() OpenList[StateEntry] {
	return build[StateEntry](f, "state")
}

// NewEdgeOpenList creates a fresh open list of state/operator edges.
func (f *Factory) NewEdgeOpenList() OpenList[EdgeEntry] {
	return build[EdgeEntry](f, "edge")
}

func build[E any](f *Factory, entry string) OpenList[E] {
	switch f.kind {
	case KindTieBreaking:
		l, err := NewTieBreaking[E](f.cfg, f.optFns...)
		if err != nil {
			// cfg was validated by the factory.
			panic(err)
		}
		l.logger = l.logger.WithEntry(entry)
		return l
	default:
		l, err := NewFractal[E](f.cfg, f.optFns...)
		if err != nil {
			panic(err)
		}
		l.logger = l.logger.WithEntry(entry)
		return l
	}
}
