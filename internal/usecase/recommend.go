package usecase

import (
	"sort"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

// Answer defaults when a question is missing from the set. The engine
// assumes the caller collected all six but must not break when it didn't.
const (
	defaultHouseholdSize = "1"
	defaultHomeOwnership = "rent"
	defaultPriority      = "coverage"
	defaultClaimsHistory = "no"
	defaultBudget        = "100-200"
)

// RecommendationEngine turns a completed quiz answer set into an ordered
// list of coverage recommendations. Pure and stateless.
type RecommendationEngine struct{}

func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{}
}

func (e *RecommendationEngine) Generate(answers []entity.QuizAnswer) []entity.Recommendation {
	needs := multiAnswer(answers, 1)
	householdSize := singleAnswer(answers, 2, defaultHouseholdSize)
	homeOwnership := singleAnswer(answers, 3, defaultHomeOwnership)
	priority := singleAnswer(answers, 4, defaultPriority)
	_ = singleAnswer(answers, 5, defaultClaimsHistory) // claims history: collected, not scored yet
	budget := singleAnswer(answers, 6, defaultBudget)

	var recs []entity.Recommendation

	// Auto
	if contains(needs, "auto") {
		autoPriority := "secondary"
		if len(needs) == 1 {
			autoPriority = "primary"
		}
		if priority == "price" {
			recs = append(recs, entity.Recommendation{
				Name:            "Auto Essential",
				Type:            "Auto Insurance",
				Description:     "Affordable liability coverage to keep you legal and protected on the road.",
				MonthlyEstimate: "$89",
				Features:        []string{"Liability Coverage", "Uninsured Motorist", "24/7 Claims Support"},
				Priority:        autoPriority,
			})
		} else {
			recs = append(recs, entity.Recommendation{
				Name:            "Auto Premium",
				Type:            "Auto Insurance",
				Description:     "Comprehensive coverage with collision, uninsured motorist, and roadside assistance.",
				MonthlyEstimate: "$145",
				Features:        []string{"Full Coverage", "Rental Car Reimbursement", "Zero Deductible Glass", "Roadside Assistance"},
				Priority:        autoPriority,
			})
		}
	}

	// Home or renters. Note: ownership "family" skips both branches even
	// when home was selected in Q1.
	if contains(needs, "home") || homeOwnership == "rent" {
		if homeOwnership == "own" {
			estimate := "$125"
			if budget == "300+" {
				estimate = "$185"
			}
			recs = append(recs, entity.Recommendation{
				Name:            "Home Guardian",
				Type:            "Home Insurance",
				Description:     "Protect your biggest investment with comprehensive dwelling and liability coverage.",
				MonthlyEstimate: estimate,
				Features:        []string{"Dwelling Coverage", "Personal Property", "Liability Protection", "Additional Living Expenses"},
				Priority:        "primary",
			})
		} else if homeOwnership == "rent" {
			rentersPriority := "secondary"
			if contains(needs, "home") {
				rentersPriority = "primary"
			}
			recs = append(recs, entity.Recommendation{
				Name:            "Renters Shield",
				Type:            "Renters Insurance",
				Description:     "Affordable protection for your belongings and personal liability.",
				MonthlyEstimate: "$25",
				Features:        []string{"Personal Property", "Liability Coverage", "Temporary Housing", "Theft Protection"},
				Priority:        rentersPriority,
			})
		}
	}

	// Life: any household beyond "just me" qualifies; 3-4 and 5+ upgrade
	// to the family plan.
	if contains(needs, "life") || householdSize != "1" {
		isFamily := householdSize == "3-4" || householdSize == "5+"
		if isFamily {
			recs = append(recs, entity.Recommendation{
				Name:            "Family Protector",
				Type:            "Life Insurance",
				Description:     "Comprehensive term life coverage to protect your family's future and financial security.",
				MonthlyEstimate: "$75",
				Features:        []string{"$500K-$1M Coverage", "Level Premiums", "Convertible Policy", "Child Rider Available"},
				Priority:        "primary",
			})
		} else {
			recs = append(recs, entity.Recommendation{
				Name:            "Life Secure",
				Type:            "Life Insurance",
				Description:     "Affordable term life insurance to protect your loved ones.",
				MonthlyEstimate: "$45",
				Features:        []string{"$250K-$500K Coverage", "No Medical Exam Options", "Fixed Rates", "Quick Approval"},
				Priority:        "secondary",
			})
		}
	}

	// Business
	if contains(needs, "business") {
		recs = append(recs, entity.Recommendation{
			Name:            "Business Shield",
			Type:            "Business Insurance",
			Description:     "Comprehensive commercial coverage to protect your livelihood and assets.",
			MonthlyEstimate: "$199",
			Features:        []string{"General Liability", "Professional Liability", "Commercial Property", "Workers Comp Available"},
			Priority:        "primary",
		})
	}

	// Bundle goes first when two or more needs were selected.
	if len(needs) >= 2 {
		estimate := "$325"
		switch budget {
		case "50-100":
			estimate = "$149"
		case "100-200":
			estimate = "$225"
		}
		recs = append([]entity.Recommendation{{
			Name:            "Smart Bundle",
			Type:            "Bundle & Save 25%",
			Description:     "Combine your policies for maximum savings and simplified coverage management.",
			MonthlyEstimate: estimate,
			Features:        []string{"Multi-Policy Discount", "Single Deductible Option", "One Bill", "Priority Claims"},
			Priority:        "primary",
		}}, recs...)
	}

	// Primary entries first, emission order preserved within each class.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority == "primary" && recs[j].Priority != "primary"
	})

	return recs
}

func multiAnswer(answers []entity.QuizAnswer, questionID int) []string {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return a.SelectedValues
		}
	}
	return nil
}

func singleAnswer(answers []entity.QuizAnswer, questionID int, fallback string) string {
	for _, a := range answers {
		if a.QuestionID == questionID && len(a.SelectedValues) > 0 {
			return a.SelectedValues[0]
		}
	}
	return fallback
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
