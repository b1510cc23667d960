// Package billing keeps the subscription bookkeeping: plan catalogue, credit
// packages and job-post credit accounting. No payment is processed.
package billing

// Plan audiences.
const (
	AudienceEmployer = "employer"
	AudienceSeeker   = "job-seeker"
)

// PayPerPost is the plan assigned to employers who only ever bought credits.
const PayPerPost = "pay-per-post"

// Unlimited marks a plan quota without an upper bound.
const Unlimited = -1

// Plan is a subscription tier.
type Plan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Audience        string   `json:"type"`
	Price           int      `json:"price"`
	Interval        string   `json:"interval"`
	JobPosts        int      `json:"jobPosts,omitempty"`
	Applications    int      `json:"applications,omitempty"`
	AIFeatures      bool     `json:"aiFeatures"`
	PrioritySupport bool     `json:"prioritySupport"`
	Analytics       bool     `json:"analytics"`
	TeamAccounts    int      `json:"teamAccounts,omitempty"`
	Popular         bool     `json:"popular,omitempty"`
	Features        []string `json:"features"`
}

// CreditPackage is a one-off bundle of job-post credits.
type CreditPackage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Bonus   int    `json:"bonus,omitempty"`
	Price   int    `json:"price"`
	Popular bool   `json:"popular,omitempty"`
}

// Total is the number of credits the package grants.
func (p CreditPackage) Total() int { return p.Credits + p.Bonus }

// EmployerPlans lists the employer tiers.
var EmployerPlans = []Plan{
	{
		ID: "employer-starter", Name: "Starter", Audience: AudienceEmployer, Price: 49, Interval: "monthly",
		JobPosts: 3, Applications: 50, TeamAccounts: 1,
		Features: []string{
			"3 job posts per month",
			"Up to 50 applications",
			"Basic applicant filtering",
			"Email notifications",
			"Standard support",
		},
	},
	{
		ID: "employer-professional", Name: "Professional", Audience: AudienceEmployer, Price: 149, Interval: "monthly",
		JobPosts: 10, Applications: 200, AIFeatures: true, Analytics: true, TeamAccounts: 3, Popular: true,
		Features: []string{
			"10 job posts per month",
			"Up to 200 applications",
			"AI-powered applicant ranking",
			"Advanced analytics dashboard",
			"Custom branding",
			"Team collaboration (3 seats)",
			"Priority email support",
		},
	},
	{
		ID: "employer-enterprise", Name: "Enterprise", Audience: AudienceEmployer, Price: 399, Interval: "monthly",
		JobPosts: Unlimited, Applications: Unlimited, AIFeatures: true, PrioritySupport: true, Analytics: true,
		TeamAccounts: Unlimited,
		Features: []string{
			"Unlimited job posts",
			"Unlimited applications",
			"Advanced AI matching & ranking",
			"Custom integrations",
			"Dedicated account manager",
			"White-label solution",
			"Unlimited team accounts",
			"24/7 phone support",
			"Custom reporting",
		},
	},
}

// SeekerPlans lists the job-seeker tiers.
var SeekerPlans = []Plan{
	{
		ID: "seeker-basic", Name: "Basic", Audience: AudienceSeeker, Price: 0, Interval: "monthly",
		Features: []string{
			"Apply to unlimited jobs",
			"Basic job recommendations",
			"Profile visibility to employers",
			"Email job alerts",
			"Basic profile analytics",
		},
	},
	{
		ID: "seeker-premium", Name: "Premium", Audience: AudienceSeeker, Price: 19, Interval: "monthly",
		AIFeatures: true, PrioritySupport: true, Popular: true,
		Features: []string{
			"Everything in Basic",
			"AI-powered job matching",
			"Resume optimization tips",
			"Priority application status",
			"Advanced profile analytics",
			"Interview preparation resources",
			"Priority customer support",
			"Early access to new jobs",
		},
	},
}

// CreditPackages lists the pay-per-post bundles.
var CreditPackages = []CreditPackage{
	{ID: "credits-5", Name: "5 Job Post Credits", Credits: 5, Price: 25},
	{ID: "credits-15", Name: "15 Job Post Credits", Credits: 15, Bonus: 3, Price: 60, Popular: true},
}

// FindPlan looks a plan up by id across both audiences.
func FindPlan(id string) (Plan, bool) {
	for _, plans := range [][]Plan{EmployerPlans, SeekerPlans} {
		for _, p := range plans {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Plan{}, false
}

// FindPackage looks a credit package up by id.
func FindPackage(id string) (CreditPackage, bool) {
	for _, p := range CreditPackages {
		if p.ID == id {
			return p, true
		}
	}
	return CreditPackage{}, false
}
