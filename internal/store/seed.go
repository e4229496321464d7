package store

import (
	"time"

	"github.com/jonathan/staffsync/internal/types"
)

// SeedProfiles returns the demo candidate database loaded at process start.
// Seed candidates are pre-verified; uploaded ones start unverified.
func SeedProfiles() []types.CandidateProfile {
	return []types.CandidateProfile{
		{
			ID:              "1",
			Name:            "Maria Rodriguez",
			Category:        types.CategoryHouseHelp,
			ExperienceYears: 5,
			Age:             34,
			MaritalStatus:   "Married",
			Skills:          []string{"Deep Cleaning", "Laundry", "Pet Friendly"},
			Bio:             "Efficient and reliable housekeeper with 5 years of experience in maintaining large households.",
			Availability:    "Full-time",
			Rating:          4.8,
			Verified:        true,
			ResumeURL:       "#",
		},
		{
			ID:              "2",
			Name:            "John Smith",
			Category:        types.CategoryGardener,
			ExperienceYears: 8,
			Age:             42,
			MaritalStatus:   "Single",
			Skills:          []string{"Landscaping", "Pruning", "Irrigation Systems"},
			Bio:             "Passionate gardener who specializes in sustainable landscaping and tropical plants.",
			Availability:    "Part-time",
			Rating:          4.9,
			Verified:        true,
			ResumeURL:       "#",
		},
		{
			ID:              "3",
			Name:            "Priya Patel",
			Category:        types.CategoryCook,
			ExperienceYears: 10,
			Age:             38,
			MaritalStatus:   "Married",
			Skills:          []string{"Indian Cuisine", "Vegetarian", "Meal Prep"},
			Bio:             "Experienced cook specializing in healthy, home-style Indian and Continental meals.",
			Availability:    "Full-time",
			Rating:          5.0,
			Verified:        true,
			ResumeURL:       "#",
		},
		{
			ID:              "4",
			Name:            "Sarah Johnson",
			Category:        types.CategoryNanny,
			ExperienceYears: 4,
			Age:             26,
			MaritalStatus:   "Single",
			Skills:          []string{"CPR Certified", "Tutoring", "Newborn Care"},
			Bio:             "Caring nanny with a background in early childhood education.",
			Availability:    "Full-time",
			Rating:          4.7,
			Verified:        true,
			ResumeURL:       "#",
		},
		{
			ID:              "5",
			Name:            "David Chen",
			Category:        types.CategoryCook,
			ExperienceYears: 15,
			Age:             45,
			MaritalStatus:   "Married",
			Skills:          []string{"Asian Cuisine", "Pastry", "Event Catering"},
			Bio:             "Professional chef with hotel experience looking for private household opportunities.",
			Availability:    "Contract",
			Rating:          4.9,
			Verified:        true,
			ResumeURL:       "#",
		},
	}
}

// SeedLeads returns the demo employer leads loaded at process start.
func SeedLeads() []types.EmployerLead {
	return []types.EmployerLead{
		{
			ID:                 "L1",
			EmployerName:       "Alice Anderson",
			ContactNumber:      "+1 555-0101",
			RequirementSummary: "Full-time Nanny for 2 kids",
			Category:           types.CategoryNanny,
			ProcessStep:        4, // WhatsApp Group Created
			PaymentDetails: types.PaymentRecord{
				PackageFee:     1200,
				AmountPaid:     600,
				Currency:       "$",
				DeclaredStatus: types.PaymentPartial,
			},
			CreatedAt: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                 "L2",
			EmployerName:       "Bob Builder",
			ContactNumber:      "+1 555-0102",
			RequirementSummary: "Part-time Gardener, Weekends",
			Category:           types.CategoryGardener,
			ProcessStep:        1, // Package Selection
			PaymentDetails: types.PaymentRecord{
				PackageFee:     400,
				AmountPaid:     0,
				Currency:       "$",
				DeclaredStatus: types.PaymentPending,
			},
			CreatedAt: time.Date(2023, time.October, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                 "L3",
			EmployerName:       "Charlie Chef",
			ContactNumber:      "+1 555-0103",
			RequirementSummary: "Live-in Cook, Asian Cuisine",
			Category:           types.CategoryCook,
			ProcessStep:        6, // Confirmation
			PaymentDetails: types.PaymentRecord{
				PackageFee:     2000,
				AmountPaid:     2000,
				Currency:       "$",
				DeclaredStatus: types.PaymentPaid,
			},
			CreatedAt: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}
