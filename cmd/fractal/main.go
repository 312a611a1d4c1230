// Command fractal runs greedy best-first search on generated grid worlds
// with configurable tie-breaking open lists.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
