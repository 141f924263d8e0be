// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the overlay state backends. The chain matches
// them only for logging; every load error means "fall through to the next
// backend" regardless of its cause.
var (
	// ErrRemoteStatus is returned when the remote store answers with a
	// non-2xx HTTP status.
	ErrRemoteStatus = errors.New("remote state store returned non-2xx status")

	// ErrRemoteEmptyState is returned when the remote row exists but holds
	// no state payload. Treated as absence, not corruption.
	ErrRemoteEmptyState = errors.New("remote state store holds no state")

	// ErrAllBackendsFailed is returned by a chain save after every
	// configured backend rejected the write. The in-memory document stays
	// authoritative; callers log and continue serving.
	ErrAllBackendsFailed = errors.New("all state backends failed to save")
)
