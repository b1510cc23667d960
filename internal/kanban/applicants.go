package kanban

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jobmate/board-service/internal/model"
)

// AnyValue disables the job or status selector of ApplicantCriteria.
const AnyValue = "all"

// ApplicantCriteria is the employer's applicant filter.
type ApplicantCriteria struct {
	JobID  string `form:"job"`
	Search string `form:"search"`
	Status string `form:"status"`
}

// ApplicantSort orders the employer's applicant list.
type ApplicantSort string

const (
	SortAIRanking ApplicantSort = "ai-ranking"
	SortAIMatch   ApplicantSort = "ai-match"
	SortApplied   ApplicantSort = "date"
	SortName      ApplicantSort = "name"
)

// ParseApplicantSort accepts "" (keep order) and the known sort keys.
func ParseApplicantSort(s string) (ApplicantSort, bool) {
	switch v := ApplicantSort(s); v {
	case "", SortAIRanking, SortAIMatch, SortApplied, SortName:
		return v, true
	}
	return "", false
}

// FilterApplicants keeps the applications matching every set selector.
// Empty selectors behave like AnyValue.
func FilterApplicants(apps []model.Application, c ApplicantCriteria) []model.Application {
	search := strings.ToLower(c.Search)
	out := make([]model.Application, 0, len(apps))
	for _, a := range apps {
		if c.JobID != "" && c.JobID != AnyValue && a.JobID != c.JobID {
			continue
		}
		if c.Status != "" && c.Status != AnyValue && a.Status != c.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.ApplicantName), search) &&
			!strings.Contains(strings.ToLower(a.ApplicantEmail), search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SortApplicants returns a sorted copy of apps. Ties keep their input order.
// Both AI sorts rank by match score, missing scores counting as zero.
func SortApplicants(apps []model.Application, by ApplicantSort) []model.Application {
	out := slices.Clone(apps)
	switch by {
	case SortAIRanking, SortAIMatch:
		slices.SortStableFunc(out, func(a, b model.Application) int {
			return scoreOf(b) - scoreOf(a)
		})
	case SortApplied:
		slices.SortStableFunc(out, func(a, b model.Application) int {
			return strings.Compare(b.AppliedDate, a.AppliedDate)
		})
	case SortName:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b model.Application) int {
			return col.CompareString(a.ApplicantName, b.ApplicantName)
		})
	}
	return out
}

// BoardStats counts applications per board column.
type BoardStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Reviewing   int `json:"reviewing"`
	Interviewed int `json:"interviewed"`
	Hired       int `json:"hired"`
	Rejected    int `json:"rejected"`
}

// CountByStatus tallies apps into BoardStats.
func CountByStatus(apps []model.Application) BoardStats {
	s := BoardStats{Total: len(apps)}
	for _, a := range apps {
		switch Status(a.Status) {
		case StatusPending:
			s.Pending++
		case StatusReviewing:
			s.Reviewing++
		case StatusInterviewed:
			s.Interviewed++
		case StatusHired:
			s.Hired++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}

func scoreOf(a model.Application) int {
	if a.AIMatchScore == nil {
		return 0
	}
	return *a.AIMatchScore
}
