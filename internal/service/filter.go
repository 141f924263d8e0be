package service

import (
	"sort"
	"strings"

	"github.com/MKhiriev/org-atlas/models"
)

// FilterParams narrows a record list. Zero values mean "no restriction"
// for their dimension; set dimensions compose by conjunction.
type FilterParams struct {
	// Counties is an exact-match set of county names (case-sensitive
	// against the normalized county value). Nil or empty = no restriction.
	Counties map[string]struct{}

	// Status filters by normalized status bucket. Empty = no restriction.
	Status string

	// Search is a case-insensitive substring matched against name,
	// address, county, phone, and email. Empty = no restriction.
	Search string
}

// Filter returns the records matching every set dimension of params,
// preserving input order.
func Filter(records []*models.OrganizationRecord, params FilterParams) []*models.OrganizationRecord {
	normalizedStatus := ""
	if params.Status != "" {
		normalizedStatus = NormalizeStatus(params.Status)
	}
	search := strings.ToLower(strings.TrimSpace(params.Search))

	var out []*models.OrganizationRecord
	for _, record := range records {
		if len(params.Counties) > 0 {
			if record.County == nil {
				continue
			}
			if _, ok := params.Counties[*record.County]; !ok {
				continue
			}
		}

		if normalizedStatus != "" && NormalizeStatus(record.Status) != normalizedStatus {
			continue
		}

		if search != "" && !matchesSearch(record, search) {
			continue
		}

		out = append(out, record)
	}

	return out
}

// NormalizeStatus folds the many spellings operators use into the three
// canonical buckets: pending, in-progress, done. Unknown values pass
// through lowercased as their own bucket; an empty value means pending.
func NormalizeStatus(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "pending", "todo", "to-do", "new":
		return "pending"
	case "in-progress", "in progress", "in_progress", "progress", "working":
		return "in-progress"
	case "done", "completed", "complete", "verified":
		return "done"
	}

	return v
}

// Counties returns the deduplicated non-null county names present in
// records, sorted case-insensitively.
func Counties(records []*models.OrganizationRecord) []string {
	seen := make(map[string]struct{})
	var counties []string
	for _, record := range records {
		if record.County == nil {
			continue
		}
		if _, ok := seen[*record.County]; ok {
			continue
		}
		seen[*record.County] = struct{}{}
		counties = append(counties, *record.County)
	}

	sort.Slice(counties, func(i, j int) bool {
		a, b := strings.ToLower(counties[i]), strings.ToLower(counties[j])
		if a == b {
			return counties[i] < counties[j]
		}
		return a < b
	})

	return counties
}

func matchesSearch(record *models.OrganizationRecord, loweredQuery string) bool {
	for _, field := range []*string{record.Name, record.Address, record.County, record.Phone, record.Email} {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*field), loweredQuery) {
			return true
		}
	}

	return false
}
