package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestJSONOutput_MergesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "lost-pets-catalog", Output: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"request_id": "r-1"}).Warn("upstream failed", map[string]any{
		"err": errors.New("status=502"),
		"":    "dropped",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "upstream failed", entry["message"])
	assert.Equal(t, "lost-pets-catalog", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "status=502", entry["err"])
	_, hasEmpty := entry[""]
	assert.False(t, hasEmpty)
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Debug, Format: FormatText, Output: &buf})

	log.Info("listening", map[string]any{"addr": ":8080"})

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, "addr=:8080")
}
