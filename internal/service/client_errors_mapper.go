// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/case-sync/internal/adapter"
)

// mapGatewayError translates a gateway error into the sync error taxonomy.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrRemoteUnavailable),
		errors.Is(err, ErrPushConflict),
		errors.Is(err, ErrMergeAmbiguous):
		return err

	case errors.Is(err, adapter.ErrInvalidDocument):
		return fmt.Errorf("%w: %w", ErrMergeAmbiguous, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrPushConflict, err)

	case errors.Is(err, adapter.ErrRemoteUnreachable),
		errors.Is(err, adapter.ErrCommandFailed),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNothingStaged),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
}
