package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProdLoggerWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(envProd, &buf)

	log.Debug("hidden")
	log.With("course_id", "c1").ErrorErr("save failed", errors.New("disk full"), "attempt", 2)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "save failed", entry["msg"])
	assert.Equal(t, "c1", entry["course_id"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestLocalLoggerIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(envLocal, &buf).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestErrNil(t *testing.T) {
	assert.Equal(t, "<nil>", Err(nil).Value.String())
}
