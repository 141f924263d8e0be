// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// StatusPending is the verification status assigned to every organization
// that has not been touched by an operator yet.
const StatusPending = "Pending"

// OrganizationRecord is a single catalog entry. The descriptive fields are
// loaded once from the source dataset and never change afterwards; the
// verification fields (Status, Notes, NoteTaker, NoteHistory) are the
// mutable overlay applied on top of them.
//
// Descriptive fields use pointers so that a value absent from the source
// dataset serializes as JSON null rather than as an empty string.
type OrganizationRecord struct {
	// ID is the stable 1-based identifier assigned from row order at load
	// time. It is unique across the catalog and survives process restarts
	// as long as the source dataset does not reorder.
	ID int64 `json:"id"`

	// Name is the organization's display name.
	Name *string `json:"name"`

	// Address is the street address, when the dataset provides one.
	Address *string `json:"address"`

	// Phone is the contact phone number.
	Phone *string `json:"phone"`

	// Email is the contact email address.
	Email *string `json:"email"`

	// Website is the organization's web address, protocol optional.
	Website *string `json:"website"`

	// County is the normalized county name used for filtering.
	County *string `json:"county"`

	// Zipcode is the postal code, kept as a string to preserve leading
	// zeros present in the source data.
	Zipcode *string `json:"zipcode"`

	// Lat and Lon are the geographic coordinates. Either may be nil when
	// the source value was missing or not numeric.
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`

	// Status is the operator-assigned verification status.
	// Defaults to [StatusPending].
	Status string `json:"status"`

	// Notes is the most recent note text entered by an operator.
	Notes string `json:"notes"`

	// NoteTaker is the author of the most recent note.
	NoteTaker string `json:"note_taker"`

	// NoteHistory is the append-only chronological list of every note
	// recorded for this organization.
	NoteHistory []NoteEntry `json:"note_history"`
}

// OverlayKey returns the string form of the record's ID used as the key in
// an [OverlayDocument].
func (r *OrganizationRecord) OverlayKey() string {
	return strconv.FormatInt(r.ID, 10)
}
