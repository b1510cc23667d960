package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/model"
)

func intPtr(v int) *int { return &v }

func fixtureJobs() []model.Job {
	return []model.Job{
		{
			ID: "1", Title: "Senior Frontend Developer", Company: "TechStart Local",
			Location: "Downtown District", Type: model.TypeFullTime, Category: "Technology",
			Description: "Next-generation web applications with React.",
			Skills:      []string{"React", "TypeScript", "JavaScript", "CSS", "Git"},
			PostedDate:  "2024-01-15", Distance: "0.8 miles", AIMatchScore: intPtr(95),
		},
		{
			ID: "2", Title: "Marketing Coordinator", Company: "Local Marketing Agency",
			Location: "Arts Quarter", Type: model.TypeFullTime, Category: "Marketing",
			Description: "Creative marketing role focused on local business growth.",
			PostedDate:  "2024-01-14", Distance: "1.2 miles", AIMatchScore: intPtr(78),
		},
		{
			ID: "3", Title: "Barista - Morning Shift", Company: "Corner Coffee Co.",
			Location: "University District", Type: model.TypePartTime, Category: "Hospitality",
			Description: "Join our friendly coffee shop team!",
			PostedDate:  "2024-01-13", Distance: "0.3 miles", AIMatchScore: intPtr(88),
		},
		{
			ID: "4", Title: "UX Designer", Company: "Design Studio",
			Location: "Creative District", Type: model.TypeContract, Category: "Design",
			Description: "Remote-friendly contract for local digital projects.", Remote: true,
			PostedDate:  "2024-01-12", Distance: "2.1 miles", AIMatchScore: intPtr(72),
		},
		{
			// Sparse listing: no skills, no requirements, no distance, no score.
			ID: "5", Title: "Volunteer Coordinator", Location: "",
			Type: model.TypePartTime, Category: "Education", PostedDate: "2024-01-11",
		},
	}
}

func ids(jobs []model.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

// ── Identity filter ───────────────────────────────────────────────────────

func TestFilterJobs_DefaultCriteriaKeepsEverything(t *testing.T) {
	jobs := fixtureJobs()
	got := matching.FilterJobs(jobs, model.DefaultCriteria())
	assert.Equal(t, jobs, got)
}

func TestFilterJobs_EmptyInput(t *testing.T) {
	got := matching.FilterJobs(nil, model.DefaultCriteria())
	assert.Empty(t, got)
}

func TestFilterJobs_DoesNotMutateInput(t *testing.T) {
	jobs := fixtureJobs()
	before := fixtureJobs()
	_ = matching.FilterJobs(jobs, model.SearchCriteria{Search: "designer", Category: model.AllCategories, Type: model.AllTypes})
	assert.Equal(t, before, jobs)
}

// ── Sub-predicates ────────────────────────────────────────────────────────

func TestMatches(t *testing.T) {
	react := fixtureJobs()[0]
	sparse := fixtureJobs()[4]

	testCases := []struct {
		name     string
		job      model.Job
		criteria model.SearchCriteria
		want     bool
	}{
		{
			name:     "query is case-insensitive on title",
			job:      react,
			criteria: model.SearchCriteria{Search: "REACT", Category: model.AllCategories, Type: model.AllTypes},
			want:     true,
		},
		{
			name:     "query matches company",
			job:      react,
			criteria: model.SearchCriteria{Search: "techstart", Category: model.AllCategories, Type: model.AllTypes},
			want:     true,
		},
		{
			name:     "query matches description",
			job:      react,
			criteria: model.SearchCriteria{Search: "web applications", Category: model.AllCategories, Type: model.AllTypes},
			want:     true,
		},
		{
			name:     "query does not look at skills",
			job:      react,
			criteria: model.SearchCriteria{Search: "typescript", Category: model.AllCategories, Type: model.AllTypes},
			want:     false,
		},
		{
			name:     "location substring ignores case",
			job:      react,
			criteria: model.SearchCriteria{Location: "downtown", Category: model.AllCategories, Type: model.AllTypes},
			want:     true,
		},
		{
			name:     "location mismatch",
			job:      react,
			criteria: model.SearchCriteria{Location: "Arts", Category: model.AllCategories, Type: model.AllTypes},
			want:     false,
		},
		{
			name:     "empty job location never matches a location filter",
			job:      sparse,
			criteria: model.SearchCriteria{Location: "District", Category: model.AllCategories, Type: model.AllTypes},
			want:     false,
		},
		{
			name:     "category exact match",
			job:      react,
			criteria: model.SearchCriteria{Category: "Technology", Type: model.AllTypes},
			want:     true,
		},
		{
			name:     "category is case-sensitive",
			job:      react,
			criteria: model.SearchCriteria{Category: "technology", Type: model.AllTypes},
			want:     false,
		},
		{
			name:     "type exact match",
			job:      react,
			criteria: model.SearchCriteria{Category: model.AllCategories, Type: model.TypeFullTime},
			want:     true,
		},
		{
			name:     "type is case-sensitive",
			job:      react,
			criteria: model.SearchCriteria{Category: model.AllCategories, Type: "Full-Time"},
			want:     false,
		},
		{
			name:     "remote-only excludes on-site jobs",
			job:      react,
			criteria: model.SearchCriteria{Category: model.AllCategories, Type: model.AllTypes, Remote: true},
			want:     false,
		},
		{
			name:     "salary range is never enforced",
			job:      react,
			criteria: model.SearchCriteria{Category: model.AllCategories, Type: model.AllTypes, SalaryRange: "$150,000+"},
			want:     true,
		},
		{
			name:     "sparse job passes default criteria",
			job:      sparse,
			criteria: model.DefaultCriteria(),
			want:     true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matching.Matches(tc.job, tc.criteria))
		})
	}
}

func TestFilterJobs_RemoteOnlyReturnsRemoteJobs(t *testing.T) {
	c := model.DefaultCriteria()
	c.Remote = true
	got := matching.FilterJobs(fixtureJobs(), c)
	assert.Equal(t, []string{"4"}, ids(got))
	for _, j := range got {
		assert.True(t, j.Remote)
	}
}

func TestFilterJobs_CombinedCriteriaKeepOrder(t *testing.T) {
	c := model.DefaultCriteria()
	c.Location = "district"
	got := matching.FilterJobs(fixtureJobs(), c)
	assert.Equal(t, []string{"1", "3", "4"}, ids(got))

	c.Type = model.TypePartTime
	got = matching.FilterJobs(fixtureJobs(), c)
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestWithDefaults(t *testing.T) {
	c := model.SearchCriteria{Search: "x"}.WithDefaults()
	assert.Equal(t, model.AllCategories, c.Category)
	assert.Equal(t, model.AllTypes, c.Type)

	kept := model.SearchCriteria{Category: "Design", Type: model.TypeContract}.WithDefaults()
	assert.Equal(t, "Design", kept.Category)
	assert.Equal(t, model.TypeContract, kept.Type)
}
