package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/case-sync/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapGatewayError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unreachable", adapter.ErrRemoteUnreachable, ErrRemoteUnavailable},
		{"command failed", &adapter.CommandError{Args: []string{"git", "fetch"}, Err: adapter.ErrCommandFailed}, ErrRemoteUnavailable},
		{"not found", adapter.ErrNotFound, ErrRemoteUnavailable},
		{"forbidden", adapter.ErrForbidden, ErrRemoteUnavailable},
		{"timeout", context.DeadlineExceeded, ErrRemoteUnavailable},
		{"invalid document", fmt.Errorf("show: %w", adapter.ErrInvalidDocument), ErrMergeAmbiguous},
		{"conflict", adapter.ErrConflict, ErrPushConflict},
		{"already mapped", fmt.Errorf("%w: x", ErrPushConflict), ErrPushConflict},
		{"unknown", errors.New("weird"), ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapGatewayError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapGatewayError(nil))
}
