package search

// Status is the outcome of a search.
type Status int

const (
	// StatusSolved means a plan was found.
	StatusSolved Status = iota
	// StatusUnsolvable means the open list ran dry without unsafe pruning,
	// so the task has no solution.
	StatusUnsolvable
	// StatusUnsolvedIncomplete means the open list ran dry after entries were
	// pruned unsafely or for not being preferred.
	StatusUnsolvedIncomplete
	// StatusTimeout means the context ended before the search did.
	StatusTimeout
	// StatusExpansionLimit means the expansion limit was reached.
	StatusExpansionLimit
	// StatusTimeoutAndLimit is a portfolio outcome: some runs timed out and
	// the others hit their expansion limit.
	StatusTimeoutAndLimit
)

// String returns the status label.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusUnsolvedIncomplete:
		return "unsolved-incomplete"
	case StatusTimeout:
		return "timeout"
	case StatusExpansionLimit:
		return "expansion-limit"
	case StatusTimeoutAndLimit:
		return "timeout-and-expansion-limit"
	default:
		return "unknown"
	}
}

// Final reports whether the status settles the task, so that a portfolio
// need not try further configurations.
func (s Status) Final() bool {
	return s == StatusSolved || s == StatusUnsolvable
}
