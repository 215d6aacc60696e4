// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
)

// apiController forwards commands to a running process over its control
// API.
type apiController struct {
	client *utils.HTTPClient
}

// NewAPIController returns a [Controller] talking to the control API at
// address (host:port or a full URL).
func NewAPIController(address string, timeout time.Duration) (Controller, error) {
	base := strings.TrimRight(address, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid control API address %q: %w", address, err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(base).SetTimeout(timeout)

	return &apiController{client: client}, nil
}

// APIError carries a non-2xx control API response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("control API: %d %s", e.Status, e.Message)
}

func (c *apiController) do(ctx context.Context, method, path string, body, result any) error {
	var apiErr utils.ErrorResponse
	req := c.client.R().SetContext(ctx).SetError(&apiErr)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("control API %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newAPIError(resp.StatusCode(), apiErr)
	}
	return nil
}

func newAPIError(status int, body utils.ErrorResponse) *APIError {
	msg := body.Error
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}

func (c *apiController) SyncNow(ctx context.Context) (models.CycleResult, error) {
	result := models.CycleResult{Trigger: models.TriggerManual}
	err := c.do(ctx, http.MethodPost, "/api/sync", nil, &result)
	return result, err
}

func (c *apiController) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	err := c.do(ctx, http.MethodGet, "/api/sync/status", nil, &status)
	return status, err
}

func (c *apiController) SetPolicy(ctx context.Context, policy models.ConflictPolicy) error {
	return c.do(ctx, http.MethodPut, "/api/sync/policy", map[string]string{"policy": string(policy)}, nil)
}

func (c *apiController) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	var backups []models.BackupInfo
	err := c.do(ctx, http.MethodGet, "/api/backups", nil, &backups)
	return backups, err
}

func (c *apiController) CreateBackup(ctx context.Context) (models.BackupInfo, error) {
	var info models.BackupInfo
	err := c.do(ctx, http.MethodPost, "/api/backups", nil, &info)
	return info, err
}

// RestoreBackup decodes the record itself so that numeric ids keep their
// exact representation.
func (c *apiController) RestoreBackup(ctx context.Context, key string) (models.CaseRecord, error) {
	var apiErr utils.ErrorResponse
	path := "/api/backups/" + url.PathEscape(key) + "/restore"

	resp, err := c.client.R().SetContext(ctx).SetError(&apiErr).Post(path)
	if err != nil {
		return models.CaseRecord{}, fmt.Errorf("control API %s %s: %w", http.MethodPost, path, err)
	}
	if resp.IsError() {
		return models.CaseRecord{}, newAPIError(resp.StatusCode(), apiErr)
	}
	return models.DecodeCaseRecord(resp.Body())
}

func (c *apiController) Close() error {
	return nil
}
