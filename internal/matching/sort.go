package matching

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"jobmate/board-service/internal/model"
)

// SortBy selects the ordering applied to search results.
type SortBy string

const (
	SortNone     SortBy = ""
	SortMatch    SortBy = "match"
	SortDate     SortBy = "date"
	SortDistance SortBy = "distance"
)

// ParseSortBy validates a raw sort key. The empty string keeps input order.
func ParseSortBy(s string) (SortBy, bool) {
	switch sb := SortBy(s); sb {
	case SortNone, SortMatch, SortDate, SortDistance:
		return sb, true
	}
	return SortNone, false
}

// SortJobs returns a stably sorted copy of jobs.
//
//	match:    precomputed score, highest first; jobs without one count as 0
//	date:     posted date, newest first
//	distance: nearest first; jobs without a parsable distance go last
func SortJobs(jobs []model.Job, by SortBy) []model.Job {
	out := slices.Clone(jobs)
	switch by {
	case SortMatch:
		slices.SortStableFunc(out, func(a, b model.Job) int {
			return cmp.Compare(scoreOf(b), scoreOf(a))
		})
	case SortDate:
		// ISO dates order lexically.
		slices.SortStableFunc(out, func(a, b model.Job) int {
			return cmp.Compare(b.PostedDate, a.PostedDate)
		})
	case SortDistance:
		slices.SortStableFunc(out, func(a, b model.Job) int {
			da, okA := ParseMiles(a.Distance)
			db, okB := ParseMiles(b.Distance)
			switch {
			case okA && okB:
				return cmp.Compare(da, db)
			case okA:
				return -1
			case okB:
				return 1
			}
			return 0
		})
	}
	return out
}

// WithinDistance reports whether job is no further than maxMiles away.
// Jobs whose distance is unknown or unreadable always pass.
func WithinDistance(job model.Job, maxMiles float64) bool {
	d, ok := ParseMiles(job.Distance)
	if !ok {
		return true
	}
	return d <= maxMiles
}

// FilterByDistance keeps the jobs within maxMiles, in order.
func FilterByDistance(jobs []model.Job, maxMiles float64) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if WithinDistance(job, maxMiles) {
			out = append(out, job)
		}
	}
	return out
}

// ParseMiles reads the leading number of a distance such as "0.8 miles".
func ParseMiles(distance string) (float64, bool) {
	s := strings.TrimSpace(distance)
	end := 0
	for end < len(s) && (s[end] == '.' || s[end] == '-' && end == 0 || s[end] >= '0' && s[end] <= '9') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func scoreOf(job model.Job) int {
	if job.AIMatchScore == nil {
		return 0
	}
	return *job.AIMatchScore
}
