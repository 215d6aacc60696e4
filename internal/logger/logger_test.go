// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepGlobalLevel restores the zerolog global level changed by the constructors.
func keepGlobalLevel(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry), string(line))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewClientLogger_Level(t *testing.T) {
	tests := []struct {
		level     string
		want      zerolog.Level
		wantDebug bool
		wantInfo  bool
	}{
		{level: "", want: zerolog.DebugLevel, wantDebug: true, wantInfo: true},
		{level: "loud", want: zerolog.DebugLevel, wantDebug: true, wantInfo: true},
		{level: "debug", want: zerolog.DebugLevel, wantDebug: true, wantInfo: true},
		{level: "info", want: zerolog.InfoLevel, wantInfo: true},
		{level: "warn", want: zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			keepGlobalLevel(t)
			var buf bytes.Buffer
			l := NewClientLogger("sync", FileOptions{Level: tt.level, Fallback: &buf})

			assert.Equal(t, tt.want, zerolog.GlobalLevel())

			l.Debug().Msg("debug entry")
			l.Info().Msg("info entry")
			l.Warn().Msg("warn entry")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug entry"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info entry"))
			assert.Contains(t, out, "warn entry")
		})
	}
}

// Без пути записи уходят в Fallback, с путём только в файл.
func TestNewClientLogger_Destination(t *testing.T) {
	t.Run("fallback without path", func(t *testing.T) {
		keepGlobalLevel(t)
		var buf bytes.Buffer
		l := NewClientLogger("cli", FileOptions{Level: "info", Fallback: &buf})

		l.Info().Str("case", "c-1").Msg("saved")

		entries := decodeLines(t, buf.Bytes())
		require.Len(t, entries, 1)
		assert.Equal(t, "cli", entries[0]["role"])
		assert.Equal(t, "c-1", entries[0]["case"])
	})

	t.Run("file wins over fallback", func(t *testing.T) {
		keepGlobalLevel(t)
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "casesync.log")
		l := NewClientLogger("sync", FileOptions{Path: path, Level: "info", Fallback: &buf})

		l.Info().Msg("cycle finished")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		entries := decodeLines(t, data)
		require.Len(t, entries, 1)
		assert.Equal(t, "sync", entries[0]["role"])
		assert.Equal(t, "cycle finished", entries[0]["message"])
		assert.Empty(t, buf.String())
	})
}

func TestNewFileWriter_Settings(t *testing.T) {
	tests := []struct {
		name           string
		opts           FileOptions
		wantSize       int
		wantMaxBackups int
	}{
		{name: "defaults", opts: FileOptions{Path: "a.log"}, wantSize: 10, wantMaxBackups: 3},
		{name: "negative falls back", opts: FileOptions{Path: "a.log", MaxSizeMB: -1, MaxBackups: -5}, wantSize: 10, wantMaxBackups: 3},
		{name: "explicit", opts: FileOptions{Path: "a.log", MaxSizeMB: 50, MaxBackups: 7}, wantSize: 50, wantMaxBackups: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newFileWriter(tt.opts)
			assert.Equal(t, "a.log", w.Filename)
			assert.Equal(t, tt.wantSize, w.MaxSize)
			assert.Equal(t, tt.wantMaxBackups, w.MaxBackups)
			assert.True(t, w.Compress)
		})
	}
}

func TestNewFileWriter_RotatesAndCompresses(t *testing.T) {
	dir := t.TempDir()
	w := newFileWriter(FileOptions{Path: filepath.Join(dir, "casesync.log")})
	keepGlobalLevel(t)
	l := newLogger("sync", w, zerolog.DebugLevel)

	l.Info().Msg("before rotation")
	require.NoError(t, w.Rotate())
	l.Info().Msg("after rotation")

	// сжатие выполняется в фоне: ждём .gz и исчезновения несжатой копии
	var archive string
	require.Eventually(t, func() bool {
		files, err := os.ReadDir(dir)
		if err != nil {
			return false
		}
		archive = ""
		plain := 0
		for _, f := range files {
			switch {
			case strings.HasSuffix(f.Name(), ".log.gz"):
				archive = filepath.Join(dir, f.Name())
			case f.Name() != "casesync.log":
				plain++
			}
		}
		return archive != "" && plain == 0
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, w.Close())

	current, err := os.ReadFile(filepath.Join(dir, "casesync.log"))
	require.NoError(t, err)
	assert.Contains(t, string(current), "after rotation")
	assert.NotContains(t, string(current), "before rotation")

	f, err := os.Open(archive)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	rotated, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(rotated), "before rotation")
}

func TestNewLogger_EntryFields(t *testing.T) {
	keepGlobalLevel(t)
	var buf bytes.Buffer
	l := newLogger("control-api", &buf, zerolog.DebugLevel)

	l.Debug().Msg("listening")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "control-api", entries[0]["role"])
	assert.NotEmpty(t, entries[0]["time"])
	assert.Contains(t, entries[0]["func"], "TestNewLogger_EntryFields")
	require.NotNil(t, NewLogger("stdout"))
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "sync").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("component", "backup").Logger()

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "sync", entries[0]["role"])
	assert.Equal(t, "backup", entries[0]["component"])
	assert.Equal(t, "sync", entries[1]["role"])
	assert.NotContains(t, entries[1], "component")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("request_id", "r-42").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	req := httptest.NewRequest(http.MethodGet, "/status", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("via request")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "r-42", e["request_id"])
	}

	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
