// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/case-sync/internal/validators"
	"github.com/MKhiriev/case-sync/models"
)

// conflictResolver is the concrete implementation of ConflictResolver.
// It performs a purely in-memory comparison of the two records; no storage
// layer or logger is required because the operation has no side effects.
type conflictResolver struct{}

// NewConflictResolver constructs a ConflictResolver ready for use.
func NewConflictResolver() ConflictResolver {
	return &conflictResolver{}
}

// Resolve implements ConflictResolver.
//
// For every collection it builds an id index of both sides and makes two
// passes:
//
//   - Pass 1 (over remote): every remote item is kept. Under local-wins and
//     merge a local item with the same id replaces it.
//   - Pass 2 (over local): local-only items are added under local-wins and
//     merge and dropped under remote-wins.
//
// Each collection is then sorted by id so the result does not depend on the
// order of either input.
func (r *conflictResolver) Resolve(local, remote models.CaseRecord, policy models.ConflictPolicy) (models.CaseRecord, error) {
	if !policy.Valid() {
		return models.CaseRecord{}, fmt.Errorf("%w: %q", models.ErrUnknownConflictPolicy, policy)
	}

	merged := models.NewCaseRecord()
	for _, c := range models.Collections {
		localIndex, err := indexItems(c, local.Items(c))
		if err != nil {
			return models.CaseRecord{}, fmt.Errorf("local record: %w", err)
		}
		remoteIndex, err := indexItems(c, remote.Items(c))
		if err != nil {
			return models.CaseRecord{}, fmt.Errorf("remote record: %w", err)
		}

		result := make(map[string]models.Item, len(localIndex)+len(remoteIndex))

		// ── Pass 1: remote items ────────────────────────────────────────────
		for id, remoteItem := range remoteIndex {
			localItem, existsLocally := localIndex[id]
			if existsLocally && policy != models.PolicyRemoteWins {
				result[id] = localItem.Clone()
				continue
			}
			result[id] = remoteItem.Clone()
		}

		// ── Pass 2: local-only items ────────────────────────────────────────
		if policy != models.PolicyRemoteWins {
			for id, localItem := range localIndex {
				if _, existsRemotely := remoteIndex[id]; existsRemotely {
					continue
				}
				result[id] = localItem.Clone()
			}
		}

		merged.SetItems(c, sortedItems(result))
	}

	merged.Strategy = resolveStrategy(local.Strategy, remote.Strategy, policy).Clone()
	merged.LastModified = latest(local, remote)

	return merged, nil
}

// Rebase implements ConflictResolver. Items added or changed between base and
// current overwrite onto, items deleted between base and current are removed
// from onto. The strategy follows current if it was edited.
func (r *conflictResolver) Rebase(base, current, onto models.CaseRecord) (models.CaseRecord, error) {
	out := models.NewCaseRecord()
	for _, c := range models.Collections {
		baseIndex, err := indexItems(c, base.Items(c))
		if err != nil {
			return models.CaseRecord{}, fmt.Errorf("base record: %w", err)
		}
		currentIndex, err := indexItems(c, current.Items(c))
		if err != nil {
			return models.CaseRecord{}, fmt.Errorf("current record: %w", err)
		}
		ontoIndex, err := indexItems(c, onto.Items(c))
		if err != nil {
			return models.CaseRecord{}, fmt.Errorf("candidate record: %w", err)
		}

		result := make(map[string]models.Item, len(ontoIndex)+len(currentIndex))
		for id, item := range ontoIndex {
			result[id] = item.Clone()
		}
		for id, item := range currentIndex {
			if before, ok := baseIndex[id]; ok && itemsEqual(before, item) {
				continue
			}
			result[id] = item.Clone()
		}
		for id := range baseIndex {
			if _, ok := currentIndex[id]; !ok {
				delete(result, id)
			}
		}

		out.SetItems(c, sortedItems(result))
	}

	if strategiesEqual(base.Strategy, current.Strategy) {
		out.Strategy = onto.Strategy.Clone()
	} else {
		out.Strategy = current.Strategy.Clone()
	}
	out.LastModified = latest(current, onto)

	return out, nil
}

var recordValidator = validators.NewCaseRecordValidator()

// ValidateRecord checks the id preconditions of every collection and the
// strategy timestamp.
func ValidateRecord(record models.CaseRecord) error {
	if err := recordValidator.Validate(context.Background(), record); err != nil {
		return fmt.Errorf("%w: %w", ErrMergeAmbiguous, err)
	}
	return nil
}

func indexItems(c models.Collection, items []models.Item) (map[string]models.Item, error) {
	index := make(map[string]models.Item, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: %s[%d] is null", ErrMergeAmbiguous, c, i)
		}
		id, err := item.ID()
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrMergeAmbiguous, c, i, err)
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate id %q", ErrMergeAmbiguous, c, id)
		}
		index[id] = item
	}
	return index, nil
}

func sortedItems(index map[string]models.Item) []models.Item {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)

	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, index[id])
	}
	return items
}

// compareIDs orders numeric ids numerically before all other ids, which are
// ordered lexicographically.
func compareIDs(a, b string) int {
	na, aNumeric := numericID(a)
	nb, bNumeric := numericID(b)
	switch {
	case aNumeric && bNumeric:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aNumeric:
		return -1
	case bNumeric:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func numericID(id string) (float64, bool) {
	f, err := strconv.ParseFloat(id, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func resolveStrategy(local, remote models.Strategy, policy models.ConflictPolicy) models.Strategy {
	switch policy {
	case models.PolicyLocalWins:
		if local != nil {
			return local
		}
		return remote
	case models.PolicyRemoteWins:
		if remote != nil {
			return remote
		}
		return local
	}

	localTS, localOK := local.LastModified()
	remoteTS, remoteOK := remote.LastModified()
	switch {
	case local == nil:
		return remote
	case remote == nil:
		return local
	case localOK && remoteOK:
		if remoteTS.After(localTS) {
			return remote
		}
		return local
	case remoteOK:
		return remote
	default:
		return local
	}
}

func latest(a, b models.CaseRecord) *time.Time {
	switch {
	case a.LastModified == nil && b.LastModified == nil:
		return nil
	case a.LastModified == nil:
		ts := *b.LastModified
		return &ts
	case b.LastModified == nil:
		ts := *a.LastModified
		return &ts
	}
	ts := *a.LastModified
	if b.LastModified.After(ts) {
		ts = *b.LastModified
	}
	return &ts
}

func itemsEqual(a, b models.Item) bool {
	return valuesEqual(map[string]any(a), map[string]any(b))
}

func strategiesEqual(a, b models.Strategy) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return valuesEqual(map[string]any(a), map[string]any(b))
}

// valuesEqual compares two schema-free documents by their JSON encoding, so
// that a json.Number and a float64 holding the same value are equal.
func valuesEqual(a, b map[string]any) bool {
	left, errA := json.Marshal(a)
	right, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(left, right)
}
