package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/openlist"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSolveOpenGrid(t *testing.T) {
	out, err := execute(t, "solve", "--width", "6", "--height", "6", "--density", "0", "--render")
	require.NoError(t, err)

	assert.Contains(t, out, "status: solved")
	assert.Contains(t, out, "plan cost: 10")
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "G")
}

func TestSolveWithConfigFile(t *testing.T) {
	path := writeConfig(t, `
list:
  kind: fractal
  queue_type: lifo
  stochastic: false
  record: true
grid:
  width: 8
  height: 8
  density: 0
search:
  timeout: 5s
`)

	out, err := execute(t, "solve", "--config", path, "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "status: solved")
	assert.Contains(t, out, "plan cost: 14")
	assert.Contains(t, out, "plateau depths:")
	assert.Contains(t, out, "openlist_inserts_total")
	assert.Contains(t, out, `outcome="inserted"`)
}

func TestSolvePortfolio(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 10
  height: 10
  density: 0
portfolio:
  - name: tiebreaking
    list:
      kind: tiebreaking
  - name: fractal
    relative_time: 2
search:
  max_expansions: 50
`)

	out, err := execute(t, "solve", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "run tiebreaking: solved")
	assert.Contains(t, out, "best: tiebreaking")
	assert.NotContains(t, out, "run fractal")
}

func TestSolveExpansionLimit(t *testing.T) {
	out, err := execute(t, "solve", "--width", "30", "--height", "30", "--density", "0", "--max-expansions", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "status: expansion-limit")
	assert.Contains(t, out, "expanded: 2")
}

func TestSolveRejectsBadInput(t *testing.T) {
	_, err := execute(t, "solve", "--queue-type", "heap")
	assert.Error(t, err)

	_, err = execute(t, "solve", "--width", "0")
	assert.ErrorContains(t, err, "grid")

	_, err = execute(t, "solve", "--kind", "bogus")
	assert.ErrorContains(t, err, "list kind")

	_, err = execute(t, "solve", "--timeout", "soon")
	assert.ErrorContains(t, err, "invalid timeout")

	_, err = execute(t, "solve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	path := writeConfig(t, "list:\n  max_depth: 0\n")
	_, err = execute(t, "solve", "--config", path)
	assert.ErrorIs(t, err, openlist.ErrInvalidConfig)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, openlist.KindFractal, cfg.List.Kind)
	assert.Equal(t, openlist.FIFO, cfg.List.QueueType)
	assert.True(t, cfg.List.Stochastic)
	assert.Equal(t, openlist.DefaultMaxDepth, cfg.List.MaxDepth)
	assert.Equal(t, 30*time.Second, cfg.Search.Timeout)
}

func TestLoadConfigPortfolioDefaults(t *testing.T) {
	path := writeConfig(t, `
portfolio:
  - name: a
    list:
      pref_only: true
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.Len(t, cfg.Portfolio, 1)
	r := cfg.Portfolio[0]
	assert.Equal(t, 1, r.RelativeTime)
	assert.Equal(t, openlist.KindFractal, r.List.Kind)
	assert.True(t, r.List.PreferredOnly)
	assert.True(t, r.List.UnsafePruning)
}
