// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OverlayEntry is the persisted mutable state of a single organization.
// All fields are optional: an entry written by an older version of the
// service may carry only a subset, and absent fields leave the record's
// in-memory defaults untouched during reconciliation.
type OverlayEntry struct {
	// Status is the operator-assigned verification status.
	Status *string `json:"status,omitempty"`

	// Notes is the most recent note text.
	Notes *string `json:"notes,omitempty"`

	// NoteTaker is the author of the most recent note.
	NoteTaker *string `json:"note_taker,omitempty"`

	// NoteHistory is the full append-only note history.
	NoteHistory []NoteEntry `json:"note_history,omitempty"`
}

// OverlayDocument maps organization id strings to their overlay entries.
// It is the sole unit of persistence: one document covers the entire
// catalog and is always read and written as a whole.
type OverlayDocument map[string]OverlayEntry

// Clone returns a shallow per-entry copy of the document. Note history
// slices are copied so that appends on the original do not leak into the
// snapshot handed to a persistence backend.
func (d OverlayDocument) Clone() OverlayDocument {
	if d == nil {
		return OverlayDocument{}
	}

	out := make(OverlayDocument, len(d))
	for key, entry := range d {
		cloned := entry
		if entry.NoteHistory != nil {
			cloned.NoteHistory = make([]NoteEntry, len(entry.NoteHistory))
			copy(cloned.NoteHistory, entry.NoteHistory)
		}
		out[key] = cloned
	}

	return out
}
