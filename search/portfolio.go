package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/openlist"
)

// Run is one configuration of a portfolio.
type Run struct {
	// Name identifies the configuration in results and logs.
	Name string
	// RelativeTime is the share of the budget this run is entitled to.
	RelativeTime int
	// New builds a fresh search, including its open list and evaluators.
	New func() (*Eager, error)
}

// RunResult is the outcome of one portfolio configuration.
type RunResult struct {
	Name    string
	Timeout time.Duration
	Result  Result
}

// PortfolioResult is the outcome of a portfolio.
type PortfolioResult struct {
	Status Status
	Runs   []RunResult
	// Best is the cheapest solution found, nil if none.
	Best *RunResult
}

// PortfolioOption configures RunPortfolio and Race.
type PortfolioOption func(*portfolioOptions)

type portfolioOptions struct {
	logger *openlist.Logger
	now    func() time.Time
}

// WithPortfolioLogger configures structured logging. Pass nil to disable
// logging.
func WithPortfolioLogger(l *openlist.Logger) PortfolioOption {
	return func(o *portfolioOptions) {
		o.logger = l
	}
}

func applyPortfolioOptions(optFns []PortfolioOption) portfolioOptions {
	o := portfolioOptions{now: time.Now}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = openlist.NoopLogger()
	}
	return o
}

// RunPortfolio runs the configurations one after another within budget.
// Each run gets the share remaining*RelativeTime/remainingRelativeTime of the
// time left when it starts, so the last run uses up whatever remains. The
// portfolio stops at the first run that solves the task or proves it
// unsolvable.
func RunPortfolio(ctx context.Context, budget time.Duration, runs []Run, optFns ...PortfolioOption) (PortfolioResult, error) {
	if err := validateRuns(runs); err != nil {
		return PortfolioResult{}, err
	}
	o := applyPortfolioOptions(optFns)

	deadline := o.now().Add(budget)
	var out PortfolioResult
	for pos, run := range runs {
		if ctx.Err() != nil {
			break
		}
		timeout := sliceTimeout(deadline.Sub(o.now()), runs, pos)
		if timeout <= 0 {
			break
		}

		s, err := run.New()
		if err != nil {
			return out, fmt.Errorf("portfolio config %q: %w", run.Name, err)
		}

		runCtx, cancel := context.WithTimeout(ctx, timeout)
		res, err := s.Run(runCtx)
		cancel()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return out, fmt.Errorf("portfolio config %q: %w", run.Name, err)
		}

		rr := RunResult{Name: run.Name, Timeout: timeout, Result: res}
		out.Runs = append(out.Runs, rr)
		o.logger.LogPortfolioRun(ctx, run.Name, timeout, res.Status.String())
		if res.Status.Final() {
			break
		}
	}

	out.finish()
	return out, nil
}

// Race runs all configurations concurrently until the budget is spent or one
// of them settles the task, which cancels the others. The searches built by
// the runs must not share open lists or random sources.
func Race(ctx context.Context, budget time.Duration, runs []Run, optFns ...PortfolioOption) (PortfolioResult, error) {
	if err := validateRuns(runs); err != nil {
		return PortfolioResult{}, err
	}
	o := applyPortfolioOptions(optFns)

	raceCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	searches := make([]*Eager, len(runs))
	for i, run := range runs {
		s, err := run.New()
		if err != nil {
			return PortfolioResult{}, fmt.Errorf("portfolio config %q: %w", run.Name, err)
		}
		searches[i] = s
	}

	results := make([]RunResult, len(runs))
	g, gctx := errgroup.WithContext(raceCtx)
	for i := range searches {
		g.Go(func() error {
			res, err := searches[i].Run(gctx)
			results[i] = RunResult{Name: runs[i].Name, Timeout: budget, Result: res}
			o.logger.LogPortfolioRun(ctx, runs[i].Name, budget, res.Status.String())
			if res.Status.Final() {
				cancel()
				return nil
			}
			if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("portfolio config %q: %w", runs[i].Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PortfolioResult{}, err
	}

	out := PortfolioResult{Runs: results}
	out.finish()
	return out, nil
}

func validateRuns(runs []Run) error {
	if len(runs) == 0 {
		return errors.New("portfolio has no configurations")
	}
	for _, r := range runs {
		if r.RelativeTime <= 0 {
			return fmt.Errorf("portfolio config %q: relative time must be positive", r.Name)
		}
		if r.New == nil {
			return fmt.Errorf("portfolio config %q: missing search constructor", r.Name)
		}
	}
	return nil
}

func sliceTimeout(remaining time.Duration, runs []Run, pos int) time.Duration {
	var remainingRelative int
	for _, r := range runs[pos:] {
		remainingRelative += r.RelativeTime
	}
	return time.Duration(int64(remaining) * int64(runs[pos].RelativeTime) / int64(remainingRelative))
}

// finish picks the best solution and aggregates the run statuses: a plan
// beats a proof of unsolvability, which beats an incomplete search; time and
// expansion limits only count when every run hit one.
func (p *PortfolioResult) finish() {
	for i := range p.Runs {
		r := &p.Runs[i]
		if r.Result.Status != StatusSolved {
			continue
		}
		if p.Best == nil || r.Result.Cost < p.Best.Result.Cost {
			p.Best = r
		}
	}

	seen := map[Status]bool{}
	for _, r := range p.Runs {
		seen[r.Result.Status] = true
	}
	for _, st := range []Status{StatusSolved, StatusUnsolvable, StatusUnsolvedIncomplete} {
		if seen[st] {
			p.Status = st
			return
		}
	}
	switch {
	case seen[StatusTimeoutAndLimit], seen[StatusTimeout] && seen[StatusExpansionLimit]:
		p.Status = StatusTimeoutAndLimit
	case seen[StatusExpansionLimit]:
		p.Status = StatusExpansionLimit
	default:
		p.Status = StatusTimeout
	}
}
