package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/case-sync/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldCollections checks that every item of every collection carries a
	// usable id and that ids are unique within a collection.
	FieldCollections = "collections"

	// FieldStrategy checks the strategy document's lastModified value when
	// present.
	FieldStrategy = "strategy"

	// FieldID checks that a single item carries a usable id.
	FieldID = "id"
)

type caseRecordValidator struct{}

// NewCaseRecordValidator returns a [Validator] for case records, single
// items and strategy documents.
func NewCaseRecordValidator() Validator {
	return &caseRecordValidator{}
}

func (v *caseRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CaseRecord:
		return v.validateRecord(value, fields...)
	case *models.CaseRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(*value, fields...)

	case models.Item:
		return v.validateItem(value, fields...)

	case models.Strategy:
		return v.validateStrategy(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *caseRecordValidator) validateRecord(record models.CaseRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollections, FieldStrategy}
	}

	for _, f := range fields {
		switch f {
		case FieldCollections:
			for _, c := range models.Collections {
				if err := validateCollection(c, record.Items(c)); err != nil {
					return err
				}
			}
		case FieldStrategy:
			if err := v.validateStrategy(record.Strategy); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *caseRecordValidator) validateItem(item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item == nil {
				return ErrNullItem
			}
			if _, err := item.ID(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidItemID, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStrategy accepts a missing document and a missing or null
// lastModified.
func (v *caseRecordValidator) validateStrategy(strategy models.Strategy) error {
	if strategy == nil {
		return nil
	}
	raw, ok := strategy["lastModified"]
	if !ok || raw == nil {
		return nil
	}
	if _, ok = strategy.LastModified(); !ok {
		return fmt.Errorf("%w: %w: %v", ErrInvalidStrategy, ErrInvalidStrategyTimestamp, raw)
	}
	return nil
}

func validateCollection(c models.Collection, items []models.Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item == nil {
			return fmt.Errorf("%s[%d]: %w", c, i, ErrNullItem)
		}
		id, err := item.ID()
		if err != nil {
			return fmt.Errorf("%s[%d]: %w: %w", c, i, ErrInvalidItemID, err)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: %w %q", c, ErrDuplicateItemID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
