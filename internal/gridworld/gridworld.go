// Package gridworld provides a 4-connected grid navigation task. Open grids
// under the Manhattan heuristic form large plateaus, which makes the task a
// convenient workload for tie-breaking open lists.
package gridworld

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hupe1980/openlist"
	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/search"
)

// Moves are the operators of the task.
const (
	Up openlist.OperatorID = iota
	Down
	Left
	Right
)

var deltas = [...][2]int{Up: {0, -1}, Down: {0, 1}, Left: {-1, 0}, Right: {1, 0}}

// Grid is a rectangular map with blocked cells. A state is the cell index
// y*Width+x.
type Grid struct {
	Width, Height int
	Start, Goal   eval.StateID
	blocked       []bool
}

var _ search.Task = (*Grid)(nil)

// New creates an empty width x height grid with the start in the top-left
// and the goal in the bottom-right corner.
func New(width, height int) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		Start:   0,
		Goal:    eval.StateID(width*height - 1),
		blocked: make([]bool, width*height),
	}
}

// Random creates a grid whose cells are blocked with probability density,
// keeping start and goal free.
func Random(width, height int, density float64, seed int64) *Grid {
	g := New(width, height)
	rng := rand.New(rand.NewSource(seed))
	for i := range g.blocked {
		g.blocked[i] = rng.Float64() < density
	}
	g.blocked[g.Start] = false
	g.blocked[g.Goal] = false
	return g
}

// Parse reads a grid from rows of '.' (free), '#' (blocked), 'S' (start)
// and 'G' (goal).
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("gridworld: no rows")
	}
	g := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("gridworld: row %d has width %d, want %d", y, len(row), g.Width)
		}
		for x, c := range row {
			id := g.ID(x, y)
			switch c {
			case '.':
			case '#':
				g.blocked[id] = true
			case 'S':
				g.Start = id
			case 'G':
				g.Goal = id
			default:
				return nil, fmt.Errorf("gridworld: unexpected cell %q at (%d,%d)", c, x, y)
			}
		}
	}
	return g, nil
}

// ID returns the state of cell (x, y).
func (g *Grid) ID(x, y int) eval.StateID { return eval.StateID(y*g.Width + x) }

// XY returns the cell of state s.
func (g *Grid) XY(s eval.StateID) (x, y int) { return int(s) % g.Width, int(s) / g.Width }

// Blocked reports whether the cell of s is blocked.
func (g *Grid) Blocked(s eval.StateID) bool { return g.blocked[s] }

// Initial implements search.Task.
func (g *Grid) Initial() eval.StateID { return g.Start }

// IsGoal implements search.Task.
func (g *Grid) IsGoal(s eval.StateID) bool { return s == g.Goal }

// Successors implements search.Task. Moves that reduce the Manhattan
// distance to the goal are preferred.
func (g *Grid) Successors(s eval.StateID, buf []search.Successor) []search.Successor {
	x, y := g.XY(s)
	here := g.distance(s)
	for op, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
			continue
		}
		next := g.ID(nx, ny)
		if g.blocked[next] {
			continue
		}
		buf = append(buf, search.Successor{
			Operator:  openlist.OperatorID(op),
			State:     next,
			Cost:      1,
			Preferred: g.distance(next) < here,
		})
	}
	return buf
}

// Apply returns the state reached by applying plan from the start, and
// whether every step was legal.
func (g *Grid) Apply(plan []openlist.OperatorID) (eval.StateID, bool) {
	s := g.Start
	for _, op := range plan {
		if int(op) < 0 || int(op) >= len(deltas) {
			return s, false
		}
		x, y := g.XY(s)
		nx, ny := x+deltas[op][0], y+deltas[op][1]
		if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
			return s, false
		}
		s = g.ID(nx, ny)
		if g.blocked[s] {
			return s, false
		}
	}
	return s, true
}

func (g *Grid) distance(s eval.StateID) int {
	x, y := g.XY(s)
	gx, gy := g.XY(g.Goal)
	return abs(x-gx) + abs(y-gy)
}

// Manhattan returns the Manhattan-distance heuristic of the grid.
func (g *Grid) Manhattan() *Manhattan { return &Manhattan{grid: g} }

// Manhattan estimates the distance to the goal ignoring blocked cells.
type Manhattan struct {
	grid *Grid
}

// Name implements eval.Heuristic.
func (*Manhattan) Name() string { return "manhattan" }

// Evaluate implements eval.Evaluator.
func (m *Manhattan) Evaluate(ctx eval.Context) eval.Result {
	return eval.Result{Value: m.grid.distance(ctx.State())}
}

// DeadEndsAreReliable implements eval.Evaluator.
func (*Manhattan) DeadEndsAreReliable() bool { return true }

// InvolvedHeuristics implements eval.Evaluator.
func (m *Manhattan) InvolvedHeuristics(set eval.HeuristicSet) { set[m] = struct{}{} }

// String renders the grid.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid with the given states marked.
func (g *Grid) Render(path []eval.StateID) string {
	onPath := make(map[eval.StateID]bool, len(path))
	for _, s := range path {
		onPath[s] = true
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.ID(x, y)
			switch {
			case id == g.Start:
				sb.WriteByte('S')
			case id == g.Goal:
				sb.WriteByte('G')
			case g.blocked[id]:
				sb.WriteByte('#')
			case onPath[id]:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
