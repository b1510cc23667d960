// Package matching holds the job search predicate and the compatibility
// scorer. Everything here is pure: no I/O, no clocks, no shared state.
package matching

import (
	"strings"

	"jobmate/board-service/internal/model"
)

// Matches reports whether job belongs in the results for criteria.
//
// Text and location are case-insensitive substring checks; category and type
// are exact matches unless the selector holds its sentinel value.
// SalaryRange is deliberately not consulted.
func Matches(job model.Job, c model.SearchCriteria) bool {
	return matchesText(job, c.Search) &&
		matchesLocation(job, c.Location) &&
		matchesSelector(job.Category, c.Category, model.AllCategories) &&
		matchesSelector(job.Type, c.Type, model.AllTypes) &&
		(!c.Remote || job.Remote)
}

// FilterJobs returns the jobs matching c in their original order.
// The input slice is left untouched.
func FilterJobs(jobs []model.Job, c model.SearchCriteria) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if Matches(job, c) {
			out = append(out, job)
		}
	}
	return out
}

func matchesText(job model.Job, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return containsFold(job.Title, q) ||
		containsFold(job.Company, q) ||
		containsFold(job.Description, q)
}

func matchesLocation(job model.Job, location string) bool {
	if location == "" {
		return true
	}
	return containsFold(job.Location, strings.ToLower(location))
}

func matchesSelector(value, selected, sentinel string) bool {
	return selected == sentinel || value == selected
}

// containsFold reports whether lowerNeedle occurs in s, ignoring case.
// The needle must already be lower-cased.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
