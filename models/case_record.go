// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Collection names one of the itemized sections of a [CaseRecord].
type Collection string

const (
	CollectionTimeline       Collection = "timeline"
	CollectionEvidence       Collection = "evidence"
	CollectionCorrespondence Collection = "correspondence"
)

// Collections lists every itemized section in a fixed order.
var Collections = []Collection{CollectionTimeline, CollectionEvidence, CollectionCorrespondence}

// ParseCollection converts a path or JSON key into a [Collection].
func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
}

// Item is a schema-free collection entry. The only field the sync engine
// relies on is "id"; everything else is carried through untouched.
type Item map[string]any

// ID returns the normalized identity of the item. String ids are used as-is,
// integral numbers are rendered without a fraction so that 7 and 7.0 collide.
func (i Item) ID() (string, error) {
	raw, ok := i["id"]
	if !ok || raw == nil {
		return "", ErrItemWithoutID
	}

	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", ErrItemWithoutID
		}
		return v, nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return strconv.FormatInt(n, 10), nil
		}
		f, err := v.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrItemInvalidID, raw)
		}
		return formatFloatID(f), nil
	case float64:
		return formatFloatID(v), nil
	case float32:
		return formatFloatID(float64(v)), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrItemInvalidID, raw)
	}
}

func formatFloatID(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	if i == nil {
		return nil
	}
	return Item(cloneMap(i))
}

// Strategy is the non-itemized strategy document of a case.
type Strategy map[string]any

// LastModified reads the "lastModified" key. RFC 3339 strings and Unix
// milliseconds are both accepted.
func (s Strategy) LastModified() (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	return parseTimestamp(s["lastModified"])
}

// Clone returns a deep copy of the strategy document.
func (s Strategy) Clone() Strategy {
	if s == nil {
		return nil
	}
	return Strategy(cloneMap(s))
}

// CaseRecord is the synchronized document.
type CaseRecord struct {
	Timeline       []Item     `json:"timeline"`
	Evidence       []Item     `json:"evidence"`
	Correspondence []Item     `json:"correspondence"`
	Strategy       Strategy   `json:"strategy,omitempty"`
	LastModified   *time.Time `json:"lastModified,omitempty"`
}

// NewCaseRecord returns an empty record with non-nil collections.
func NewCaseRecord() CaseRecord {
	return CaseRecord{
		Timeline:       []Item{},
		Evidence:       []Item{},
		Correspondence: []Item{},
	}
}

// DecodeCaseRecord parses a persisted record. Numbers are kept as
// [json.Number] so that re-encoding reproduces them exactly.
func DecodeCaseRecord(data []byte) (CaseRecord, error) {
	record := NewCaseRecord()
	if len(bytes.TrimSpace(data)) == 0 {
		return record, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		return CaseRecord{}, fmt.Errorf("decode case record: %w", err)
	}
	record.normalize()

	return record, nil
}

// Encode renders the record as JSON. Map keys are sorted by encoding/json,
// so equal records always produce equal bytes.
func (r CaseRecord) Encode() ([]byte, error) {
	r.normalize()
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode case record: %w", err)
	}
	return data, nil
}

// Items returns the entries of collection c.
func (r CaseRecord) Items(c Collection) []Item {
	switch c {
	case CollectionTimeline:
		return r.Timeline
	case CollectionEvidence:
		return r.Evidence
	case CollectionCorrespondence:
		return r.Correspondence
	default:
		return nil
	}
}

// SetItems replaces the entries of collection c.
func (r *CaseRecord) SetItems(c Collection, items []Item) {
	if items == nil {
		items = []Item{}
	}
	switch c {
	case CollectionTimeline:
		r.Timeline = items
	case CollectionEvidence:
		r.Evidence = items
	case CollectionCorrespondence:
		r.Correspondence = items
	}
}

// Clone returns a deep copy that shares no maps or slices with r.
func (r CaseRecord) Clone() CaseRecord {
	out := NewCaseRecord()
	for _, c := range Collections {
		src := r.Items(c)
		items := make([]Item, 0, len(src))
		for _, it := range src {
			items = append(items, it.Clone())
		}
		out.SetItems(c, items)
	}
	out.Strategy = r.Strategy.Clone()
	if r.LastModified != nil {
		ts := *r.LastModified
		out.LastModified = &ts
	}
	return out
}

// Size is the total number of items across all collections.
func (r CaseRecord) Size() int {
	return len(r.Timeline) + len(r.Evidence) + len(r.Correspondence)
}

// Fingerprint is a sha256 over the canonical encoding of the record.
func (r CaseRecord) Fingerprint() (string, error) {
	data, err := r.Encode()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether both records encode to the same document.
func (r CaseRecord) Equal(other CaseRecord) bool {
	a, errA := r.Encode()
	b, errB := other.Encode()
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}

func (r *CaseRecord) normalize() {
	for _, c := range Collections {
		if r.Items(c) == nil {
			r.SetItems(c, []Item{})
		}
	}
	if r.LastModified != nil {
		ts := r.LastModified.UTC()
		r.LastModified = &ts
	}
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Item:
		return Item(cloneMap(t))
	case Strategy:
		return Strategy(cloneMap(t))
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func parseTimestamp(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return time.Time{}, false
			}
			ms = int64(f)
		}
		return time.UnixMilli(ms), true
	case float64:
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case int:
		return time.UnixMilli(int64(v)), true
	default:
		return time.Time{}, false
	}
}

// RecordDocument is the persisted form of the local record.
type RecordDocument struct {
	Record    CaseRecord
	Revision  int64
	UpdatedAt time.Time
}
