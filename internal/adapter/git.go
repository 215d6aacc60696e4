package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
)

// gitGateway implements [RemoteGateway] over a local clone of the repository
// that holds the record. Every operation shells out to git through the
// configured [CommandRunner]; operations are serialized because they share
// one working tree and index.
type gitGateway struct {
	runner CommandRunner

	dir        string
	remote     string
	branch     string
	recordPath string

	mu sync.Mutex
	// files written by WriteFile, flushed with the next commit
	pending map[string][]byte

	logger *logger.Logger
}

// NewGitGateway constructs a git-backed [RemoteGateway]. cfg.RepoDir must be
// a working tree with cfg.Name configured as a remote.
func NewGitGateway(cfg config.ClientRemote, runner CommandRunner, logger *logger.Logger) (RemoteGateway, error) {
	if cfg.RepoDir == "" || cfg.Name == "" || cfg.Branch == "" || cfg.RecordPath == "" {
		return nil, fmt.Errorf("git gateway requires repo dir, remote name, branch and record path")
	}
	if runner == nil {
		runner = NewExecRunner()
	}

	return &gitGateway{
		runner:     runner,
		dir:        cfg.RepoDir,
		remote:     cfg.Name,
		branch:     cfg.Branch,
		recordPath: filepath.ToSlash(cfg.RecordPath),
		pending:    make(map[string][]byte),
		logger:     logger,
	}, nil
}

func (g *gitGateway) remoteRef() string {
	return g.remote + "/" + g.branch
}

// git runs a repository-local command. Failures map to [ErrCommandFailed].
func (g *gitGateway) git(ctx context.Context, args ...string) ([]byte, error) {
	out, err := g.runner.Run(ctx, g.dir, "git", args...)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}
	return out, nil
}

// gitRemote runs a command that talks to the remote. Failures map to
// [ErrRemoteUnreachable].
func (g *gitGateway) gitRemote(ctx context.Context, args ...string) ([]byte, error) {
	out, err := g.runner.Run(ctx, g.dir, "git", args...)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrRemoteUnreachable, err)
	}
	return out, nil
}

// FetchStatus implements [RemoteGateway]. It fetches the remote branch and
// counts commits on either side of HEAD...remote/branch.
func (g *gitGateway) FetchStatus(ctx context.Context) (models.RemoteStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.gitRemote(ctx, "fetch", "--quiet", g.remote, g.branch); err != nil {
		g.logger.Err(err).Str("func", "gitGateway.FetchStatus").Msg("fetch failed")
		return models.RemoteStatus{}, err
	}

	return g.status(ctx)
}

func (g *gitGateway) status(ctx context.Context) (models.RemoteStatus, error) {
	if !g.remoteBranchExists(ctx) {
		// nothing published yet: everything local is ahead
		return models.RemoteStatus{Ahead: true}, nil
	}

	out, err := g.git(ctx, "rev-list", "--left-right", "--count", "HEAD..."+g.remoteRef())
	if err != nil {
		return models.RemoteStatus{}, err
	}

	ahead, behind, err := parseLeftRightCount(out)
	if err != nil {
		return models.RemoteStatus{}, fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}

	return models.RemoteStatus{Ahead: ahead > 0, Behind: behind > 0}, nil
}

func (g *gitGateway) remoteBranchExists(ctx context.Context) bool {
	_, err := g.git(ctx, "rev-parse", "--verify", "--quiet", "refs/remotes/"+g.remoteRef())
	return err == nil
}

func parseLeftRightCount(out []byte) (int, int, error) {
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(string(out)))
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse ahead count: %w", err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse behind count: %w", err)
	}
	return ahead, behind, nil
}

// PullRecord implements [RemoteGateway]. It reads the record blob from the
// fetched remote branch without touching the working tree.
func (g *gitGateway) PullRecord(ctx context.Context) (models.CaseRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := g.show(ctx, g.recordPath)
	if errors.Is(err, ErrNotFound) {
		return models.NewCaseRecord(), nil
	}
	if err != nil {
		return models.CaseRecord{}, err
	}

	record, err := models.DecodeCaseRecord(data)
	if err != nil {
		return models.CaseRecord{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return record, nil
}

func (g *gitGateway) show(ctx context.Context, path string) ([]byte, error) {
	out, err := g.runner.Run(ctx, g.dir, "git", "show", g.remoteRef()+":"+filepath.ToSlash(path))
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && isMissingPath(cmdErr.Stderr) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}
	return out, nil
}

// StageAndCommit implements [RemoteGateway]. When the remote branch is ahead
// it is merged first: fast-forward when local has nothing new, otherwise a
// merge keeping the local tree, since record already contains the resolved
// remote edits. The record and any pending files are then written, staged
// and committed.
func (g *gitGateway) StageAndCommit(ctx context.Context, record models.CaseRecord, message string) (models.CommitRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	status, err := g.status(ctx)
	if err != nil {
		return models.CommitRef{}, err
	}

	merging := false
	switch {
	case status.Behind && !status.Ahead:
		if _, err = g.git(ctx, "merge", "--ff-only", "--quiet", g.remoteRef()); err != nil {
			return models.CommitRef{}, err
		}
	case status.Behind && status.Ahead:
		if _, err = g.git(ctx, "merge", "-s", "ours", "--no-commit", "--no-ff", g.remoteRef()); err != nil {
			return models.CommitRef{}, err
		}
		merging = true
	}

	data, err := encodeIndented(record)
	if err != nil {
		g.abortMerge(ctx, merging)
		return models.CommitRef{}, err
	}

	files := map[string][]byte{g.recordPath: data}
	for path, content := range g.pending {
		files[path] = content
	}
	paths := make([]string, 0, len(files))
	for path, content := range files {
		if err = g.writeWorktreeFile(path, content); err != nil {
			g.abortMerge(ctx, merging)
			return models.CommitRef{}, err
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if _, err = g.git(ctx, append([]string{"add", "--"}, paths...)...); err != nil {
		g.abortMerge(ctx, merging)
		return models.CommitRef{}, err
	}

	staged, err := g.git(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		g.abortMerge(ctx, merging)
		return models.CommitRef{}, err
	}

	if len(bytes.TrimSpace(staged)) > 0 || merging {
		if _, err = g.git(ctx, "commit", "--quiet", "-m", message); err != nil {
			g.abortMerge(ctx, merging)
			return models.CommitRef{}, err
		}
	} else {
		g.logger.Debug().Str("func", "gitGateway.StageAndCommit").Msg("record unchanged, nothing to commit")
	}
	g.pending = make(map[string][]byte)

	head, err := g.git(ctx, "rev-parse", "HEAD")
	if err != nil {
		return models.CommitRef{}, err
	}

	return models.CommitRef{
		ID:        strings.TrimSpace(string(head)),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (g *gitGateway) abortMerge(ctx context.Context, merging bool) {
	if !merging {
		return
	}
	if _, err := g.git(ctx, "merge", "--abort"); err != nil {
		g.logger.Err(err).Str("func", "gitGateway.abortMerge").Msg("failed to abort merge")
	}
}

func (g *gitGateway) writeWorktreeFile(path string, data []byte) error {
	full := filepath.Join(g.dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}
	return nil
}

// FastForward implements [RemoteGateway]. HEAD moves to the last fetched
// remote head only when local has no commits of its own; otherwise it is a
// no-op and the next StageAndCommit merges as usual.
func (g *gitGateway) FastForward(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	status, err := g.status(ctx)
	if err != nil {
		return err
	}
	if !status.Behind || status.Ahead {
		return nil
	}

	if _, err = g.git(ctx, "merge", "--ff-only", "--quiet", g.remoteRef()); err != nil {
		g.logger.Err(err).Str("func", "gitGateway.FastForward").Msg("fast-forward failed")
		return err
	}
	g.logger.Debug().Str("func", "gitGateway.FastForward").Msg("local branch fast-forwarded")

	return nil
}

// Push implements [RemoteGateway].
func (g *gitGateway) Push(ctx context.Context, ref models.CommitRef) (models.PushResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.runner.Run(ctx, g.dir, "git", "push", "--porcelain", g.remote, "HEAD:"+g.branch)
	if err == nil {
		g.logger.Info().Str("func", "gitGateway.Push").Str("commit", ref.ID).Msg("pushed")
		return models.PushSucceeded, nil
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && isPushRejected(cmdErr.Stderr) {
		g.logger.Warn().Str("func", "gitGateway.Push").Str("commit", ref.ID).Msg("push rejected, remote advanced")
		return models.PushConflict, nil
	}

	g.logger.Err(err).Str("func", "gitGateway.Push").Str("commit", ref.ID).Msg("push failed")
	return models.PushSucceeded, fmt.Errorf("%w: %w", ErrRemoteUnreachable, err)
}

// ReadFile implements [RemoteGateway]. Reads come from the last fetched
// state of the remote branch.
func (g *gitGateway) ReadFile(ctx context.Context, path string) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.show(ctx, path)
}

// WriteFile implements [RemoteGateway]. The file is committed and pushed
// together with the next record commit.
func (g *gitGateway) WriteFile(_ context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrBadRequest)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending[filepath.ToSlash(path)] = bytes.Clone(data)
	return nil
}

// Ping implements [RemoteGateway].
func (g *gitGateway) Ping(ctx context.Context) error {
	_, err := g.gitRemote(ctx, "ls-remote", "--heads", g.remote, g.branch)
	return err
}

func encodeIndented(record models.CaseRecord) ([]byte, error) {
	data, err := record.Encode()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err = json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
