package eval

// EvalContext is the stock Context implementation. It memoizes evaluator
// results per instance and is not safe for concurrent use.
type EvalContext struct {
	state     StateID
	parent    StateID
	hasParent bool
	g         int
	preferred bool
	cache     map[Evaluator]Result
}

var _ Context = (*EvalContext)(nil)

// ContextOption configures an EvalContext.
type ContextOption func(*EvalContext)

// WithParent records the state the entry was generated from.
func WithParent(parent StateID) ContextOption {
	return func(c *EvalContext) {
		c.parent = parent
		c.hasParent = true
	}
}

// WithG sets the path cost of the entry.
func WithG(g int) ContextOption {
	return func(c *EvalContext) {
		c.g = g
	}
}

// WithPreferred marks the entry as generated by a preferred operator.
func WithPreferred(preferred bool) ContextOption {
	return func(c *EvalContext) {
		c.preferred = preferred
	}
}

// NewContext creates a context for state.
func NewContext(state StateID, optFns ...ContextOption) *EvalContext {
	c := &EvalContext{state: state}
	for _, fn := range optFns {
		if fn != nil {
			fn(c)
		}
	}
	return c
}

// Result implements Context.
func (c *EvalContext) Result(e Evaluator) Result {
	if r, ok := c.cache[e]; ok {
		return r
	}
	r := e.Evaluate(c)
	if c.cache == nil {
		c.cache = make(map[Evaluator]Result, 2)
	}
	c.cache[e] = r
	return r
}

// IsCached reports whether e has already been evaluated for this entry.
func (c *EvalContext) IsCached(e Evaluator) bool {
	_, ok := c.cache[e]
	return ok
}

// IsPreferred implements Context.
func (c *EvalContext) IsPreferred() bool { return c.preferred }

// State implements Context.
func (c *EvalContext) State() StateID { return c.state }

// Parent implements Context.
func (c *EvalContext) Parent() (StateID, bool) { return c.parent, c.hasParent }

// G implements Context.
func (c *EvalContext) G() int { return c.g }
