package matching

import (
	"fmt"
	"math"
	"strings"

	"jobmate/board-service/internal/model"
)

const (
	skillWeight      = 0.4
	experienceWeight = 0.3
	locationWeight   = 0.3

	// ApplyThreshold is the inclusive overall score from which applying is advised.
	ApplyThreshold = 65

	neutralSkillMatch = 50
	defaultYears      = 5

	locationExact   = 100
	locationRemote  = 90
	locationUnknown = 60

	bonusMatchScore = 80
	maxReasons      = 3
	maxConcerns     = 2
)

// experienceBuckets maps an experience band to representative years.
// Order matters: the first contained band wins.
var experienceBuckets = []struct {
	band  string
	years float64
}{
	{"1-3", 2},
	{"3-5", 4},
	{"5-10", 7},
}

// ScoreCompatibility rates how well candidate fits job.
//
// Component scores stay unrounded until the result is assembled, so the
// verdict is taken on the exact weighted sum.
func ScoreCompatibility(job model.Job, candidate model.CandidateContext) model.Recommendation {
	skill := skillMatch(job.Skills, candidate.Skills)
	experience := experienceMatch(candidate.Experience)
	location := locationScore(job, candidate.Location)

	overall := skill*skillWeight + experience*experienceWeight + location*locationWeight
	shouldApply := overall >= ApplyThreshold

	var reasons, concerns []string

	switch {
	case skill >= 70:
		reasons = append(reasons, fmt.Sprintf("Strong skill match (%d%% of required skills)", round(skill)))
	case skill >= 50:
		reasons = append(reasons, fmt.Sprintf("Good skill match (%d%% of required skills)", round(skill)))
	default:
		concerns = append(concerns, fmt.Sprintf("Limited skill overlap (%d%% match)", round(skill)))
	}

	switch {
	case experience >= 80:
		reasons = append(reasons, "Your experience level is ideal for this role")
	case experience >= 60:
		reasons = append(reasons, "Your experience is well-suited for this position")
	default:
		concerns = append(concerns, "This role may require more experience than you have")
	}

	switch {
	case location >= 90:
		reasons = append(reasons, "Perfect location match or remote opportunity")
	case location >= 70:
		reasons = append(reasons, "Good location compatibility")
	default:
		concerns = append(concerns, "Location may require significant commuting")
	}

	if job.AIMatchScore != nil && *job.AIMatchScore >= bonusMatchScore {
		reasons = append(reasons, "High AI compatibility score for your profile")
	}
	if shouldApply && len(reasons) < 2 {
		reasons = append(reasons, "Company culture appears to align with your preferences")
	}
	if !shouldApply && len(concerns) < 2 {
		concerns = append(concerns, "Consider developing additional skills before applying")
	}

	return model.Recommendation{
		OverallScore:    round(overall),
		ShouldApply:     shouldApply,
		Reasons:         capped(reasons, maxReasons),
		Concerns:        capped(concerns, maxConcerns),
		SkillMatch:      round(skill),
		ExperienceMatch: round(experience),
		LocationScore:   round(location),
	}
}

// skillMatch is the share of job skills covered by candidate skills, as a
// percentage. Each candidate skill that fuzzily hits any job skill counts once.
func skillMatch(jobSkills, candidateSkills []string) float64 {
	if len(jobSkills) == 0 {
		return neutralSkillMatch
	}
	matched := 0
	for _, skill := range candidateSkills {
		for _, jobSkill := range jobSkills {
			if FuzzySkillMatch(skill, jobSkill) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(jobSkills)) * 100
}

// FuzzySkillMatch reports whether either skill contains the other, ignoring case.
func FuzzySkillMatch(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(lb, la) || strings.Contains(la, lb)
}

// ExperienceYears maps an experience band such as "3-5 years" to years.
func ExperienceYears(band string) float64 {
	for _, b := range experienceBuckets {
		if strings.Contains(band, b.band) {
			return b.years
		}
	}
	return defaultYears
}

func experienceMatch(band string) float64 {
	return math.Min(100, ExperienceYears(band)/5*100)
}

func locationScore(job model.Job, preferred string) float64 {
	switch {
	case preferred != "" && containsFold(job.Location, strings.ToLower(preferred)):
		return locationExact
	case job.Remote:
		return locationRemote
	default:
		return locationUnknown
	}
}

// round rounds half up, the way the web client displays scores.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func capped(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
