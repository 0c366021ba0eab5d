package diagnostics

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/segmented/internal/logger"
)

func TestCaptureRecordsMessages(t *testing.T) {
	t.Parallel()

	capture := &Capture{}
	capture.Report("first")
	capture.Report("second")
	require.Equal(t, []string{"first", "second"}, capture.Messages())

	capture.Reset()
	require.Empty(t, capture.Messages())
}

func TestNopDiscards(t *testing.T) {
	t.Parallel()

	// Must not panic.
	Nop().Report("dropped")
}

func TestLoggerSinkWritesWarnings(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	NewLoggerSink(log).Report("2 invalid child(ren) ignored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "2 invalid child(ren) ignored", entry["message"])
}

func TestLoggerSinkNilLogger(t *testing.T) {
	t.Parallel()

	NewLoggerSink(nil).Report("dropped")
}
