// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote side of the case record sync.
//
// The primary abstraction is [RemoteGateway], which decouples the sync engine
// from the remote's storage semantics. Two implementations ship with the
// package: a git repository gateway ([NewGitGateway]) that drives the git
// command line through a [CommandRunner], and an HTTP file store gateway
// ([NewHTTPFileStoreGateway]) that uses ETags for optimistic concurrency.
//
// Error values defined in errors.go are returned (wrapped) by both
// implementations so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRemoteUnreachable] for network failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/case-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_gateway_mock.go -package=mock

// RemoteGateway defines transport-agnostic access to the remote copy of the
// case record. The sync engine relies only on ahead/behind/conflict; any
// repository-specific behaviour stays behind this interface.
type RemoteGateway interface {
	// FetchStatus compares local and remote head state without transferring
	// the record.
	FetchStatus(ctx context.Context) (models.RemoteStatus, error)

	// PullRecord retrieves the remote's current record. A remote that holds
	// no record yet yields an empty one.
	PullRecord(ctx context.Context) (models.CaseRecord, error)

	// StageAndCommit persists record as the new local-side candidate. message
	// is recorded as provenance.
	StageAndCommit(ctx context.Context, record models.CaseRecord, message string) (models.CommitRef, error)

	// FastForward brings the local side up to the last fetched remote head
	// when the local side has nothing of its own. Used after a cycle that
	// adopted the remote record unchanged and therefore pushes nothing.
	FastForward(ctx context.Context) error

	// Push publishes the committed candidate. [models.PushConflict] is
	// returned (with a nil error) when the remote advanced concurrently.
	Push(ctx context.Context, ref models.CommitRef) (models.PushResult, error)

	// ReadFile reads an auxiliary file from the remote.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile publishes an auxiliary file. Depending on the implementation
	// the file is written immediately or together with the next commit.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Ping is a cheap reachability probe.
	Ping(ctx context.Context) error
}

// CommandRunner executes an external command in dir and returns its
// standard output.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}
