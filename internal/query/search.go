// internal/query/search.go
package query

import (
	"strings"

	"jobboard/internal/models"
)

// Sort option names accepted in FilterSpec.SortBy.
const (
	SortRecent     = "recent"
	SortSalaryHigh = "salary-high"
	SortCompany    = "company"
)

// TypeAll is the sentinel meaning "no type filter".
const TypeAll = "all"

var validSortOptions = map[string]bool{
	SortRecent: true, SortSalaryHigh: true, SortCompany: true,
}

// FilterSpec is the set of predicates and the sort mode applied to a job
// listing. Empty fields mean "no predicate"; malformed values degrade the
// same way rather than erroring.
type FilterSpec struct {
	Query    string `json:"searchQuery"`
	Location string `json:"locationFilter"`
	Type     string `json:"typeFilter"`
	SortBy   string `json:"sortBy"`
}

// Normalize returns a copy of f with defaults applied: whitespace-only
// predicates cleared and an empty sort mode mapped to SortRecent. An
// unrecognized sort mode is preserved as-is; Search treats it as "no
// sort applied".
func (f FilterSpec) Normalize() FilterSpec {
	f.Query = strings.TrimSpace(f.Query)
	f.Location = strings.TrimSpace(f.Location)
	f.Type = strings.TrimSpace(f.Type)
	f.SortBy = strings.TrimSpace(f.SortBy)
	if f.SortBy == "" {
		f.SortBy = SortRecent
	}
	return f
}

// ValidSort reports whether sortBy names a known sort mode.
func ValidSort(sortBy string) bool {
	return validSortOptions[sortBy]
}

// Search filters jobs by the AND of the active predicates in f, then
// applies f's sort mode. The input slice is never mutated; the result is
// a fresh slice. Deterministic for identical inputs.
func Search(jobs []models.Job, f FilterSpec) []models.Job {
	f = f.Normalize()

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, f) {
			filtered = append(filtered, job)
		}
	}

	sortJobs(filtered, f.SortBy)
	return filtered
}

func matches(job models.Job, f FilterSpec) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Company), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) {
			return false
		}
	}

	if f.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.Type != "" && f.Type != TypeAll && string(job.Type) != f.Type {
		return false
	}

	return true
}
