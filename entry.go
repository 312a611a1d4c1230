package openlist

import (
	"fmt"

	"github.com/hupe1980/openlist/eval"
)

// OperatorID identifies a planning operator.
type OperatorID int32

// StateEntry is the entry shape of state open lists.
type StateEntry = eval.StateID

// EdgeEntry is the entry shape of edge open lists: a state together with the
// operator that will be applied to it on expansion.
type EdgeEntry struct {
	State    eval.StateID
	Operator OperatorID
}

func (e EdgeEntry) String() string {
	return fmt.Sprintf("(%d, op %d)", e.State, e.Operator)
}
