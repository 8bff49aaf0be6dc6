package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, "json"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, "text"))
}

func TestTTYOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.Success("done")
	out.Warning("careful")
	out.Info("note")
	out.Error(errors.New("broke"))

	text := buf.String()
	assert.Contains(t, text, "done")
	assert.Contains(t, text, "careful")
	assert.Contains(t, text, "note")
	assert.Contains(t, text, "broke")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Success("ignored")
	out.Info("ignored")
	assert.Empty(t, buf.String(), "success and info are no-ops in JSON mode")

	require.NoError(t, out.JSON(map[string]string{"step": "create"}))
	assert.Contains(t, buf.String(), `"step":"create"`)

	buf.Reset()
	out.Error(errors.New("broke"))
	assert.JSONEq(t, `{"error":"broke"}`, buf.String())
}
