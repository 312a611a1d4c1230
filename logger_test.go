package openlist

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDimensionIncrease(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, states := plateauTable(1, 40)
	f, err := NewFractal[StateEntry](s.config(), WithLogger(logger))
	require.NoError(t, err)
	for _, id := range states {
		f.Insert(ctxFor(id), id)
	}
	drain(f)

	out := buf.String()
	assert.Contains(t, out, "open list created")
	assert.Contains(t, out, "kind=fractal")
	assert.Contains(t, out, "increased dimension")
	// A single bucket widens on every pop, but only the first few are logged.
	assert.LessOrEqual(t, bytes.Count(buf.Bytes(), []byte("increased dimension")), 8)
}

func TestLoggerSilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	s, states := plateauTable(2, 5)
	f, err := NewFractal[StateEntry](s.config(), WithLogger(logger))
	require.NoError(t, err)
	for _, id := range states {
		f.Insert(ctxFor(id), id)
	}
	drain(f)
	f.Clear()

	assert.Empty(t, buf.String())
}

func TestFactoryLogsEntryShape(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newScoreTable()
	f, err := NewFactory(s.config(), WithLogger(logger))
	require.NoError(t, err)

	l := f.NewEdgeOpenList()
	buf.Reset()
	l.Clear()
	assert.Contains(t, buf.String(), "entry=edge")
}
