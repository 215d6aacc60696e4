package adapter

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
	"github.com/go-resty/resty/v2"
)

const commitMessageHeader = "X-Commit-Message"

// httpFileStoreGateway implements [RemoteGateway] over a plain HTTP file
// store: GET/HEAD/PUT on {base}/files/{path}. Concurrent writers are
// detected through ETags. The gateway remembers the ETag of the version the
// last pull or push observed and sends it as If-Match, so a PUT over a newer
// remote version fails with 409 or 412.
type httpFileStoreGateway struct {
	client     *utils.HTTPClient
	recordPath string

	mu       sync.Mutex
	baseETag string
	staged   []byte
	stagedID string

	logger *logger.Logger
}

// NewHTTPFileStoreGateway constructs an HTTP implementation of
// [RemoteGateway]. It normalises and validates the base URL from
// cfg.Address and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPFileStoreGateway(cfg config.ClientRemote, logger *logger.Logger) (RemoteGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpFileStoreGateway{
		client:     client,
		recordPath: strings.TrimLeft(cfg.RecordPath, "/"),
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func filePath(path string) string {
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/files/" + strings.Join(segments, "/")
}

func (h *httpFileStoreGateway) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// FetchStatus implements [RemoteGateway]. It issues a HEAD request for the
// record: behind means the remote ETag differs from the last observed one,
// ahead means a staged candidate has not been pushed yet.
func (h *httpFileStoreGateway) FetchStatus(ctx context.Context) (models.RemoteStatus, error) {
	resp, err := h.request(ctx).Head(filePath(h.recordPath))
	if err != nil {
		return models.RemoteStatus{}, fmt.Errorf("%w: fetch status: %w", ErrRemoteUnreachable, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ahead := h.staged != nil
	if resp.StatusCode() == http.StatusNotFound {
		return models.RemoteStatus{Ahead: ahead}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteStatus{}, err
	}

	etag := resp.Header().Get("ETag")
	behind := etag == "" || etag != h.baseETag

	return models.RemoteStatus{Ahead: ahead, Behind: behind}, nil
}

// PullRecord implements [RemoteGateway]. The ETag of the pulled version
// becomes the precondition of the next push.
func (h *httpFileStoreGateway) PullRecord(ctx context.Context) (models.CaseRecord, error) {
	resp, err := h.request(ctx).Get(filePath(h.recordPath))
	if err != nil {
		return models.CaseRecord{}, fmt.Errorf("%w: pull record: %w", ErrRemoteUnreachable, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		h.mu.Lock()
		h.baseETag = ""
		h.mu.Unlock()
		return models.NewCaseRecord(), nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CaseRecord{}, err
	}

	record, err := models.DecodeCaseRecord(resp.Body())
	if err != nil {
		return models.CaseRecord{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	h.mu.Lock()
	h.baseETag = resp.Header().Get("ETag")
	h.mu.Unlock()

	return record, nil
}

// StageAndCommit implements [RemoteGateway]. The file store has no local
// history, so the candidate is kept in memory until Push.
func (h *httpFileStoreGateway) StageAndCommit(_ context.Context, record models.CaseRecord, message string) (models.CommitRef, error) {
	data, err := encodeIndented(record)
	if err != nil {
		return models.CommitRef{}, err
	}

	sum := sha256.Sum256(data)
	id := hex.EncodeToString(sum[:])

	h.mu.Lock()
	h.staged = data
	h.stagedID = id
	h.mu.Unlock()

	return models.CommitRef{ID: id, Message: message, CreatedAt: time.Now().UTC()}, nil
}

// FastForward implements [RemoteGateway]. PullRecord already records the
// pulled ETag as the base, so there is nothing to move.
func (h *httpFileStoreGateway) FastForward(context.Context) error {
	return nil
}

// Push implements [RemoteGateway]. It PUTs the staged candidate with
// If-Match set to the last observed ETag (If-None-Match: * when the remote
// had no record).
func (h *httpFileStoreGateway) Push(ctx context.Context, ref models.CommitRef) (models.PushResult, error) {
	h.mu.Lock()
	staged, stagedID, baseETag := h.staged, h.stagedID, h.baseETag
	h.mu.Unlock()

	if staged == nil || (ref.ID != "" && ref.ID != stagedID) {
		return models.PushSucceeded, ErrNothingStaged
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(commitMessageHeader, ref.Message).
		SetBody(staged)
	if baseETag != "" {
		req.SetHeader("If-Match", baseETag)
	} else {
		req.SetHeader("If-None-Match", "*")
	}

	resp, err := req.Put(filePath(h.recordPath))
	if err != nil {
		return models.PushSucceeded, fmt.Errorf("%w: push: %w", ErrRemoteUnreachable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			h.logger.Warn().Str("func", "httpFileStoreGateway.Push").Str("commit", ref.ID).Msg("push rejected, remote advanced")
			return models.PushConflict, nil
		}
		return models.PushSucceeded, err
	}

	h.mu.Lock()
	h.baseETag = resp.Header().Get("ETag")
	if bytes.Equal(h.staged, staged) {
		h.staged, h.stagedID = nil, ""
	}
	h.mu.Unlock()

	return models.PushSucceeded, nil
}

// ReadFile implements [RemoteGateway].
func (h *httpFileStoreGateway) ReadFile(ctx context.Context, path string) ([]byte, error) {
	resp, err := h.request(ctx).Get(filePath(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrRemoteUnreachable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// WriteFile implements [RemoteGateway]. Auxiliary files are written
// unconditionally.
func (h *httpFileStoreGateway) WriteFile(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrBadRequest)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Put(filePath(path))
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrRemoteUnreachable, path, err)
	}
	return mapHTTPError(resp)
}

// Ping implements [RemoteGateway]. Any HTTP response counts as reachable.
func (h *httpFileStoreGateway) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Head(filePath(h.recordPath))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnreachable, err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return mapHTTPError(resp)
	}
	return nil
}
