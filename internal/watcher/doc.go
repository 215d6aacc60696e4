// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher imports edits made to the JSON mirror file by outside
// tools back into the local case record.
package watcher
