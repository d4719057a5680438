package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local),
		Level:   logrus.WarnLevel,
		Message: "round concluded",
		Data:    logrus.Fields{"seat": 2, "match": 7},
		Caller: &runtime.Frame{
			File:     "/src/riichi/round.go",
			Line:     42,
			Function: "github.com/kevin-chtw/tw_riichi/riichi.(*Round).Conclude",
		},
	}
	out, err := (&Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:30:00 [warning] round.go:42 Conclude round concluded match=7 seat=2\n", string(out))

	entry.Caller = nil
	entry.Data = nil
	out, err = (&Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:30:00 [warning] round concluded\n", string(out))
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	l, err := Logger(dir, logrus.InfoLevel)
	require.NoError(t, err)
	l.Info("hello")
	l.Debug("hidden")

	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[info]")
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggerBadLevel(t *testing.T) {
	assert.Error(t, SetupLogger(t.TempDir(), "loud"))
}

func TestPackStruct(t *testing.T) {
	a, err := PackStruct(map[string]any{"round_wind": "EAST", "honba": 2})
	require.NoError(t, err)
	assert.Contains(t, a.GetTypeUrl(), "google.protobuf.Struct")

	fields, err := UnpackStruct(a)
	require.NoError(t, err)
	assert.Equal(t, "EAST", fields["round_wind"])
	assert.Equal(t, float64(2), fields["honba"])
}
