package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issuereport/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	for input, expected := range map[string]logging.Format{
		"":        logging.FormatAuto,
		"auto":    logging.FormatAuto,
		"console": logging.FormatConsole,
		"JSON":    logging.FormatJSON,
	} {
		f, err := logging.ParseFormat(input)
		gt.NoError(t, err)
		gt.Equal(t, f, expected)
	}

	_, err := logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for input, expected := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		l, err := logging.ParseLevel(input)
		gt.NoError(t, err)
		gt.Equal(t, l, expected)
	}

	_, err := logging.ParseLevel("verbose")
	gt.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Run("auto writes JSON to a non terminal", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelInfo, &buf, logging.FormatAuto)
		logger.Info("Issues loaded", "rows", 4)

		var entry map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
		gt.Equal(t, entry["msg"], "Issues loaded")
		gt.Equal(t, entry["rows"], any(float64(4)))
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelWarn, &buf, logging.FormatJSON)
		logger.Info("hidden")
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelInfo, &buf, logging.FormatConsole)
		logger.Info("Dashboard rendered")
		gt.S(t, buf.String()).Contains("Dashboard rendered")
	})
}
