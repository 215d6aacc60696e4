package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/case-sync/models"
)

// recordMirrorFile is the default implementation of [RecordMirror]. It keeps
// an indented JSON copy of the record on the local filesystem so the record
// can be inspected and edited with ordinary tools.
type recordMirrorFile struct {
	path string
	mu   sync.Mutex
}

// NewRecordMirror constructs a [RecordMirror] writing to path.
func NewRecordMirror(path string) RecordMirror {
	return &recordMirrorFile{path: path}
}

func (m *recordMirrorFile) Path() string {
	return m.path
}

// WriteRecord replaces the mirror file. The new content is written to a
// temporary file in the same directory and renamed over the old one, so
// readers never observe a half-written document.
func (m *recordMirrorFile) WriteRecord(ctx context.Context, record models.CaseRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := record.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	var pretty bytes.Buffer
	if err = json.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	pretty.WriteByte('\n')

	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(m.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create mirror directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(m.path)+".*")
	if err != nil {
		return fmt.Errorf("create mirror temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(pretty.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write mirror file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close mirror file: %w", err)
	}

	if err = os.Rename(tmpName, m.path); err != nil {
		return fmt.Errorf("replace mirror file: %w", err)
	}

	return nil
}

// ReadRecord parses the mirror file. Returns [ErrMirrorNotFound] when the
// file does not exist.
func (m *recordMirrorFile) ReadRecord(ctx context.Context) (models.CaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.CaseRecord{}, err
	}

	m.mu.Lock()
	data, err := os.ReadFile(m.path)
	m.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return models.CaseRecord{}, ErrMirrorNotFound
	}
	if err != nil {
		return models.CaseRecord{}, fmt.Errorf("read mirror file: %w", err)
	}

	record, err := models.DecodeCaseRecord(data)
	if err != nil {
		return models.CaseRecord{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return record, nil
}
