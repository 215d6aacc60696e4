// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/case-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, raw string) models.CaseRecord {
	t.Helper()
	rec, err := models.DecodeCaseRecord([]byte(raw))
	require.NoError(t, err)
	return rec
}

func TestNewCaseRecordValidator(t *testing.T) {
	require.NotNil(t, NewCaseRecordValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewCaseRecordValidator()
	ctx := context.Background()

	rec := models.NewCaseRecord()
	assert.NoError(t, v.Validate(ctx, rec))
	assert.NoError(t, v.Validate(ctx, &rec))
	assert.NoError(t, v.Validate(ctx, models.Item{"id": "a"}))
	assert.NoError(t, v.Validate(ctx, models.Strategy{}))

	assert.ErrorIs(t, v.Validate(ctx, (*models.CaseRecord)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "record"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, rec, "title"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.Item{"id": "a"}, FieldStrategy), ErrUnknownField)
}

func TestValidate_Record(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		fields  []string
		wantErr error
	}{
		{
			name: "valid",
			raw:  `{"timeline":[{"id":1},{"id":"2"}],"evidence":[{"id":"e1"}],"strategy":{"lastModified":"2026-02-01T10:00:00Z"}}`,
		},
		{
			name: "numeric strategy timestamp",
			raw:  `{"strategy":{"lastModified":1700000000000}}`,
		},
		{
			name: "null strategy timestamp",
			raw:  `{"strategy":{"lastModified":null}}`,
		},
		{
			name:    "null item",
			raw:     `{"evidence":[null]}`,
			wantErr: ErrNullItem,
		},
		{
			name:    "missing id",
			raw:     `{"correspondence":[{"subject":"letter"}]}`,
			wantErr: models.ErrItemWithoutID,
		},
		{
			name:    "object id",
			raw:     `{"timeline":[{"id":{"n":1}}]}`,
			wantErr: ErrInvalidItemID,
		},
		{
			name:    "duplicate after normalization",
			raw:     `{"timeline":[{"id":7},{"id":7.0}]}`,
			wantErr: ErrDuplicateItemID,
		},
		{
			name:    "bad strategy timestamp",
			raw:     `{"strategy":{"lastModified":"next tuesday"}}`,
			wantErr: ErrInvalidStrategyTimestamp,
		},
		{
			name:   "bad strategy ignored when only collections are checked",
			raw:    `{"strategy":{"lastModified":"next tuesday"}}`,
			fields: []string{FieldCollections},
		},
	}

	v := NewCaseRecordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), record(t, tt.raw), tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Item(t *testing.T) {
	v := NewCaseRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Item{"id": json.Number("42")}, FieldID))
	assert.ErrorIs(t, v.Validate(ctx, models.Item(nil)), ErrNullItem)
	assert.ErrorIs(t, v.Validate(ctx, models.Item{"id": " "}), models.ErrItemWithoutID)
	assert.ErrorIs(t, v.Validate(ctx, models.Item{"id": []any{1}}), ErrInvalidItemID)
}
