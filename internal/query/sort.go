// internal/query/sort.go
package query

import (
	"sort"
	"strings"

	"jobboard/internal/models"
)

// sortJobs orders jobs in place according to sortBy. All modes use a
// stable sort so equal elements keep their filtered order. Unknown modes
// leave the order untouched (degrade, never error).
func sortJobs(jobs []models.Job, sortBy string) {
	switch sortBy {
	case SortRecent:
		// Featured-first partition, not a true recency sort: Posted is a
		// display label and cannot be parsed.
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Featured && !jobs[j].Featured
		})
	case SortSalaryHigh:
		sort.SliceStable(jobs, func(i, j int) bool {
			return salaryFigure(jobs[i].Salary) > salaryFigure(jobs[j].Salary)
		})
	case SortCompany:
		sort.SliceStable(jobs, func(i, j int) bool {
			return strings.Compare(jobs[i].Company, jobs[j].Company) < 0
		})
	}
}

// salaryFigure extracts every digit rune of a salary string and reads
// the concatenation as one integer. For a range like
// "₹12,00,000 - ₹16,00,000" this conflates both bounds into a single
// figure; the transform is lossy and kept intentionally so sorting
// matches the documented behavior. A string with no digits yields 0.
func salaryFigure(salary string) int64 {
	var digits strings.Builder
	for _, r := range salary {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	var n int64
	for _, r := range digits.String() {
		n = n*10 + int64(r-'0')
		if n < 0 { // overflow on absurd inputs, clamp
			return 1<<63 - 1
		}
	}
	return n
}
