// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog loads the immutable organization dataset from its CSV
// source, normalizes field values, assigns stable identifiers, and splits
// the records into with-location and without-location partitions.
//
// The loaded records are shared by pointer between the full list and the
// two partitions, so overlay mutations applied later are visible through
// every view of the catalog.
package catalog

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/org-atlas/models"
)

// Catalog holds the full record list and its two location partitions.
// The partitions are disjoint, order-preserving, and together cover All.
type Catalog struct {
	All             []*models.OrganizationRecord
	WithLocation    []*models.OrganizationRecord
	WithoutLocation []*models.OrganizationRecord
}

// Candidate column names per canonical field, in priority order. The first
// candidate with a non-null value wins for each row.
var (
	nameColumns    = []string{"ORGANIZATION", "Organization", "organization", "NAME", "Name", "name"}
	addressColumns = []string{"ADDRESS", "Address", "address"}
	phoneColumns   = []string{"PHONE", "Phone", "phone"}
	emailColumns   = []string{"EMAIL", "Email", "email"}
	websiteColumns = []string{"WEBSITE", "Website", "website"}
	countyColumns  = []string{"county", "COUNTY", "County"}
	zipcodeColumns = []string{"zipcode", "ZIPCODE", "Zipcode", "ZIP", "Zip"}
	latColumns     = []string{"lat", "latitude", "LAT", "Lat", "Latitude"}
	lonColumns     = []string{"lon", "longitude", "LON", "Lon", "lng", "LNG", "Longitude"}
)

// Load reads the CSV dataset at path and builds the catalog. Row order is
// preserved and ids are assigned 1-based from row order.
//
// An unreadable or malformed file is a hard error: the caller must treat it
// as fatal rather than serve an empty catalog. Malformed individual values
// (non-numeric coordinates, null-like strings) are coerced to null instead.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file %s has no header row", path)
	}

	header := rows[0]
	columns := resolveColumns(header)

	cat := &Catalog{}
	for i, row := range rows[1:] {
		record := buildRecord(int64(i+1), row, columns)
		cat.All = append(cat.All, record)

		if HasValidCoords(record) {
			cat.WithLocation = append(cat.WithLocation, record)
		} else {
			cat.WithoutLocation = append(cat.WithoutLocation, record)
		}
	}

	return cat, nil
}

// HasValidCoords reports whether the record has both coordinates present,
// finite, and within the valid geographic ranges.
func HasValidCoords(r *models.OrganizationRecord) bool {
	if r.Lat == nil || r.Lon == nil {
		return false
	}

	lat, lon := *r.Lat, *r.Lon
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// resolvedColumns maps each canonical field to the indexes of its candidate
// columns that exist in the header, in priority order. Resolution happens
// once per load; per-row lookups only walk the surviving indexes.
type resolvedColumns struct {
	name    []int
	address []int
	phone   []int
	email   []int
	website []int
	county  []int
	zipcode []int
	lat     []int
	lon     []int
}

func resolveColumns(header []string) resolvedColumns {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, taken := byName[name]; !taken {
			byName[name] = i
		}
	}

	indexesFor := func(candidates []string) []int {
		var idxs []int
		for _, c := range candidates {
			if i, ok := byName[c]; ok {
				idxs = append(idxs, i)
			}
		}
		return idxs
	}

	return resolvedColumns{
		name:    indexesFor(nameColumns),
		address: indexesFor(addressColumns),
		phone:   indexesFor(phoneColumns),
		email:   indexesFor(emailColumns),
		website: indexesFor(websiteColumns),
		county:  indexesFor(countyColumns),
		zipcode: indexesFor(zipcodeColumns),
		lat:     indexesFor(latColumns),
		lon:     indexesFor(lonColumns),
	}
}

func buildRecord(id int64, row []string, columns resolvedColumns) *models.OrganizationRecord {
	return &models.OrganizationRecord{
		ID:          id,
		Name:        firstValue(row, columns.name),
		Address:     firstValue(row, columns.address),
		Phone:       firstValue(row, columns.phone),
		Email:       firstValue(row, columns.email),
		Website:     firstValue(row, columns.website),
		County:      firstValue(row, columns.county),
		Zipcode:     firstValue(row, columns.zipcode),
		Lat:         coerceCoord(firstValue(row, columns.lat)),
		Lon:         coerceCoord(firstValue(row, columns.lon)),
		Status:      models.StatusPending,
		Notes:       "",
		NoteTaker:   "",
		NoteHistory: []models.NoteEntry{},
	}
}

// firstValue returns the first non-null normalized value among the given
// column indexes, or nil when every candidate is null-like.
func firstValue(row []string, idxs []int) *string {
	for _, i := range idxs {
		if i >= len(row) {
			continue
		}
		if v := normalizeValue(row[i]); v != nil {
			return v
		}
	}

	return nil
}

// normalizeValue trims the raw cell and maps null-like markers to nil.
// "nan", "none", "null" and the empty string (case-insensitive, after
// trimming) all denote an absent value in the source dataset.
func normalizeValue(raw string) *string {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "", "nan", "none", "null":
		return nil
	}

	return &v
}

// coerceCoord converts a normalized cell to a float64 coordinate. A missing
// or non-numeric value becomes nil, never an error: the record simply lands
// in the without-location partition.
func coerceCoord(v *string) *float64 {
	if v == nil {
		return nil
	}

	f, err := strconv.ParseFloat(*v, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}

	return &f
}
