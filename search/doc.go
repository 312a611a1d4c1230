// Package search drives open lists: Eager is a best-first search over a Task
// with duplicate detection, and RunPortfolio / Race combine several searches
// under one time budget.
//
// Every Eager owns its open list and evaluators exclusively. Searches raced
// concurrently must therefore be built from independent evaluator instances
// (see Run.New).
package search
