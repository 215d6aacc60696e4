package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/case-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMirror_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "case-data.local.json")
	mirror := NewRecordMirror(path)
	assert.Equal(t, path, mirror.Path())

	record := models.NewCaseRecord()
	record.Correspondence = []models.Item{{"id": "c1", "from": "court"}}
	record.Strategy = models.Strategy{"summary": "settle", "lastModified": "2026-05-01T10:00:00Z"}

	require.NoError(t, mirror.WriteRecord(context.Background(), record))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"correspondence\"")

	got, err := mirror.ReadRecord(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(record))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestRecordMirror_ReadMissing(t *testing.T) {
	mirror := NewRecordMirror(filepath.Join(t.TempDir(), "absent.json"))

	_, err := mirror.ReadRecord(context.Background())
	require.ErrorIs(t, err, ErrMirrorNotFound)
}

func TestRecordMirror_ReadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewRecordMirror(path).ReadRecord(context.Background())
	require.ErrorIs(t, err, ErrEncodingDocument)
}

func TestRecordMirror_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mirror := NewRecordMirror(filepath.Join(t.TempDir(), "case.json"))
	require.ErrorIs(t, mirror.WriteRecord(ctx, models.NewCaseRecord()), context.Canceled)
}
