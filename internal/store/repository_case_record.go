package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
)

// caseRecordRepository is the SQLite-backed implementation of
// [CaseRecordRepository]. The record lives in the "documents" table as one
// JSON document under the caseData name.
type caseRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewCaseRecordRepository constructs a [CaseRecordRepository] backed by the
// provided database connection and logger.
func NewCaseRecordRepository(db *DB, logger *logger.Logger) CaseRecordRepository {
	return &caseRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// LoadRecord reads the stored record. Returns [ErrDocumentNotFound] when the
// record has never been saved.
func (c *caseRecordRepository) LoadRecord(ctx context.Context) (models.RecordDocument, error) {
	log := logger.FromContext(ctx)

	var (
		body      string
		revision  int64
		updatedAt int64
	)
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.DB.QueryRowContext(ctx, getDocument, documentCaseData).Scan(&body, &revision, &updatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.RecordDocument{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "caseRecordRepository.LoadRecord").
			Msg("failed to read case record")
		return models.RecordDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record, err := models.DecodeCaseRecord([]byte(body))
	if err != nil {
		log.Err(err).
			Str("func", "caseRecordRepository.LoadRecord").
			Int64("revision", revision).
			Msg("stored case record is not valid JSON")
		return models.RecordDocument{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return models.RecordDocument{
		Record:    record,
		Revision:  revision,
		UpdatedAt: fromUnixNanos(updatedAt),
	}, nil
}

// SaveRecord upserts the record and bumps its revision.
func (c *caseRecordRepository) SaveRecord(ctx context.Context, record models.CaseRecord) (models.RecordDocument, error) {
	log := logger.FromContext(ctx)

	body, err := record.Encode()
	if err != nil {
		return models.RecordDocument{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	now := time.Now().UTC()
	var revision int64
	err = c.withRetry(ctx, func(ctx context.Context) error {
		return c.DB.QueryRowContext(ctx, upsertDocument, documentCaseData, string(body), now.UnixNano()).Scan(&revision)
	})
	if err != nil {
		log.Err(err).
			Str("func", "caseRecordRepository.SaveRecord").
			Int("items", record.Size()).
			Msg("failed to save case record")
		return models.RecordDocument{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "caseRecordRepository.SaveRecord").
		Int64("revision", revision).
		Int("items", record.Size()).
		Msg("case record saved")

	return models.RecordDocument{
		Record:    record,
		Revision:  revision,
		UpdatedAt: now,
	}, nil
}
