package store

import (
	"context"
	"fmt"

	"jobmate/board-service/internal/model"
)

func score(v int) *int { return &v }

// DemoJobs is the starter catalogue loaded into an empty local database.
var DemoJobs = []model.Job{
	{
		ID: "1", Title: "Senior Frontend Developer", Company: "TechStart Local",
		Location: "Downtown District", Type: model.TypeFullTime, Salary: "$80,000 - $120,000",
		Description:  "Join our innovative team building next-generation web applications. We are looking for a passionate frontend developer with expertise in React and modern web technologies.",
		Requirements: []string{"5+ years experience", "React expertise", "TypeScript", "Modern CSS"},
		Skills:       []string{"React", "TypeScript", "JavaScript", "CSS", "Git"},
		PostedDate:   "2024-01-15", Category: "Technology", Distance: "0.8 miles", AIMatchScore: score(95),
	},
	{
		ID: "2", Title: "Marketing Coordinator", Company: "Local Marketing Agency",
		Location: "Arts Quarter", Type: model.TypeFullTime, Salary: "$45,000 - $55,000",
		Description:  "Creative marketing role focused on local business growth. Perfect for someone passionate about community engagement and digital marketing strategies.",
		Requirements: []string{"2+ years marketing experience", "Social media expertise", "Content creation"},
		Skills:       []string{"Social Media", "Content Marketing", "Analytics", "Canva", "Photography"},
		PostedDate:   "2024-01-14", Category: "Marketing", Distance: "1.2 miles", AIMatchScore: score(78),
	},
	{
		ID: "3", Title: "Barista - Morning Shift", Company: "Corner Coffee Co.",
		Location: "University District", Type: model.TypePartTime, Salary: "$16 - $18/hour + tips",
		Description:  "Join our friendly coffee shop team! Perfect for students or anyone looking for flexible morning hours in a vibrant local community.",
		Requirements: []string{"Customer service experience", "Morning availability", "Friendly attitude"},
		Skills:       []string{"Customer Service", "Coffee Making", "Cash Handling", "Team Work"},
		PostedDate:   "2024-01-13", Category: "Hospitality", Distance: "0.3 miles", AIMatchScore: score(88),
	},
	{
		ID: "4", Title: "UX Designer", Company: "Design Studio",
		Location: "Creative District", Type: model.TypeContract, Salary: "$60 - $80/hour",
		Description:  "Exciting contract opportunity for a UX designer to work on local business digital transformation projects. Remote-friendly with occasional in-person collaboration.",
		Requirements: []string{"3+ years UX experience", "Portfolio required", "Local project experience preferred"},
		Skills:       []string{"Figma", "User Research", "Prototyping", "Design Systems", "Adobe Creative Suite"},
		PostedDate:   "2024-01-12", Category: "Design", Remote: true, Distance: "2.1 miles", AIMatchScore: score(72),
	},
	{
		ID: "5", Title: "Local Delivery Driver", Company: "QuickDelivery Local",
		Location: "Various Locations", Type: model.TypePartTime, Salary: "$20 - $25/hour + tips",
		Description:  "Flexible delivery driver position serving local restaurants and businesses. Perfect for earning extra income with flexible scheduling.",
		Requirements: []string{"Valid driver license", "Own vehicle", "Smartphone", "Clean driving record"},
		Skills:       []string{"Driving", "Navigation", "Customer Service", "Time Management"},
		PostedDate:   "2024-01-11", Category: "Transportation", Distance: "0.5 miles", AIMatchScore: score(65),
	},
	{
		ID: "6", Title: "Data Analyst", Company: "Local Health Network",
		Location: "Medical District", Type: model.TypeFullTime, Salary: "$65,000 - $75,000",
		Description:  "Analyze healthcare data to improve local community health outcomes. Join our mission-driven team making a real impact in our neighborhood.",
		Requirements: []string{"SQL proficiency", "Python or R", "Healthcare data experience preferred"},
		Skills:       []string{"SQL", "Python", "Excel", "Tableau", "Statistics"},
		PostedDate:   "2024-01-10", Category: "Healthcare", Distance: "1.7 miles", AIMatchScore: score(82),
	},
}

// SeedIfEmpty posts jobs when st holds no jobs yet. It reports how many
// jobs were inserted.
func SeedIfEmpty(ctx context.Context, st Store, jobs []model.Job) (int, error) {
	existing, err := st.ListJobs(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, j := range jobs {
		if _, err := st.PostJob(ctx, j, nil); err != nil {
			return 0, fmt.Errorf("seed job %s: %w", j.ID, err)
		}
	}
	return len(jobs), nil
}
