// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync process runtime.
//
// It wires storage, the remote gateway, services, background workers and the
// control API into a single process lifecycle, and offers a [Controller]
// for one-shot CLI commands that either drives the services in-process or
// talks to an already running process over its control API.
package client
