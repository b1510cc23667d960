// Package model defines the shared data structures of the board service.
package model

import (
	"encoding/json"
	"time"
)

// Sentinel selector values meaning "no filter applied".
const (
	AllCategories = "All Categories"
	AllTypes      = "All Types"
)

// Employment types a job can be posted with.
const (
	TypeFullTime = "full-time"
	TypePartTime = "part-time"
	TypeContract = "contract"
	TypeRemote   = "remote"
)

// Categories lists the category selector values, sentinel first.
var Categories = []string{
	AllCategories,
	"Technology",
	"Marketing",
	"Design",
	"Healthcare",
	"Hospitality",
	"Transportation",
	"Education",
	"Finance",
	"Retail",
}

// JobTypes lists the employment-type selector values, sentinel first.
var JobTypes = []string{
	AllTypes,
	TypeFullTime,
	TypePartTime,
	TypeContract,
	TypeRemote,
}

// Job is a posted listing. It is immutable once created.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Distance     string   `json:"distance,omitempty"`
	Remote       bool     `json:"remote"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	PostedDate   string   `json:"postedDate"`
	AIMatchScore *int     `json:"aiMatchScore,omitempty"`
	EmployerID   string   `json:"employerId,omitempty"`
}

// SearchCriteria is the state of the search/filter controls.
// SalaryRange is carried for the client but never enforced.
type SearchCriteria struct {
	Search      string `json:"search" form:"search"`
	Location    string `json:"location" form:"location"`
	Category    string `json:"category" form:"category"`
	Type        string `json:"type" form:"type"`
	Remote      bool   `json:"remote" form:"remote"`
	SalaryRange string `json:"salaryRange" form:"salaryRange"`
}

// DefaultCriteria returns criteria that let every job through.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{Category: AllCategories, Type: AllTypes}
}

// WithDefaults fills unset selectors with their sentinel values. Transports
// call it because an omitted query parameter arrives as "".
func (c SearchCriteria) WithDefaults() SearchCriteria {
	if c.Category == "" {
		c.Category = AllCategories
	}
	if c.Type == "" {
		c.Type = AllTypes
	}
	return c
}

// CandidateContext is the read-only candidate snapshot handed to the scorer.
type CandidateContext struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Location   string   `json:"location"`
}

// Recommendation is the "Should I apply?" verdict for one job and one candidate.
type Recommendation struct {
	OverallScore    int      `json:"overallScore"`
	ShouldApply     bool     `json:"shouldApply"`
	Reasons         []string `json:"reasons"`
	Concerns        []string `json:"concerns"`
	SkillMatch      int      `json:"skillMatch"`
	ExperienceMatch int      `json:"experienceMatch"`
	LocationScore   int      `json:"locationScore"`
}

// ScoredJob pairs a job with the recommendation computed for it.
type ScoredJob struct {
	Job            Job            `json:"job"`
	Recommendation Recommendation `json:"recommendation"`
}

// Preferences are the seeker's saved search preferences.
type Preferences struct {
	JobTypes    []string `json:"jobTypes"`
	SalaryRange string   `json:"salaryRange"`
	Remote      bool     `json:"remote"`
	Categories  []string `json:"categories"`
}

// SeekerProfile is a job seeker's profile as captured at onboarding.
type SeekerProfile struct {
	UserID      string      `json:"userId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Skills      []string    `json:"skills"`
	Experience  string      `json:"experience"`
	Education   string      `json:"education"`
	Preferences Preferences `json:"preferences"`
}

// Candidate projects the profile onto the scorer's input.
func (p SeekerProfile) Candidate() CandidateContext {
	return CandidateContext{
		Skills:     p.Skills,
		Experience: p.Experience,
		Location:   p.Location,
	}
}

// Application is a seeker's application to a job, as seen by both sides.
type Application struct {
	ID             string          `json:"id"`
	JobID          string          `json:"jobId"`
	EmployerID     string          `json:"employerId"`
	ApplicantID    string          `json:"applicantId"`
	ApplicantName  string          `json:"applicantName"`
	ApplicantEmail string          `json:"applicantEmail"`
	Status         string          `json:"status"`
	AppliedDate    string          `json:"appliedDate"`
	Notes          *string         `json:"notes"`
	CoverLetter    *string         `json:"coverLetter"`
	AIMatchScore   *int            `json:"aiMatchScore"`
	Skills         []string        `json:"skills"`
	Experience     string          `json:"experience"`
	Location       string          `json:"location"`
	HistoryLog     json.RawMessage `json:"historyLog"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Subscription tracks a user's plan and job-post credits.
type Subscription struct {
	UserID      string `json:"userId"`
	PlanID      string `json:"planId"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	Credits     int    `json:"credits"`
	UsedCredits int    `json:"usedCredits"`
	AutoRenew   bool   `json:"autoRenew"`
}

// Remaining returns the unspent job-post credits.
func (s Subscription) Remaining() int { return s.Credits - s.UsedCredits }

// PlatformStats are the admin dashboard counters. Users are the seekers with a
// profile plus the employers that have posted or subscribed.
type PlatformStats struct {
	TotalUsers        int `json:"totalUsers"`
	JobSeekers        int `json:"jobSeekers"`
	Employers         int `json:"employers"`
	TotalJobs         int `json:"totalJobs"`
	ActiveJobs        int `json:"activeJobs"`
	TotalApplications int `json:"totalApplications"`
	OpenApplications  int `json:"openApplications"`
}
