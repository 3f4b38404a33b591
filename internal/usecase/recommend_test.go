package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

func answer(questionID int, values ...string) entity.QuizAnswer {
	return entity.QuizAnswer{
		QuestionID:     questionID,
		SelectedValues: values,
	}
}

func TestGenerateSingleAutoNeed(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "auto"),
		answer(2, "1"),
		answer(3, "own"),
		answer(4, "coverage"),
		answer(5, "no"),
		answer(6, "100-200"),
	})

	assert.Len(t, recs, 1)
	assert.Equal(t, "Auto Premium", recs[0].Name)
	assert.Equal(t, "$145", recs[0].MonthlyEstimate)
	assert.Equal(t, "primary", recs[0].Priority)
}

func TestGeneratePricePriorityPicksAutoEssential(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "auto"),
		answer(2, "1"),
		answer(3, "own"),
		answer(4, "price"),
		answer(5, "no"),
		answer(6, "50-100"),
	})

	assert.Len(t, recs, 1)
	assert.Equal(t, "Auto Essential", recs[0].Name)
	assert.Equal(t, "$89", recs[0].MonthlyEstimate)
	assert.Contains(t, recs[0].Features, "Liability Coverage")
}

func TestGenerateBundleGoesFirst(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "auto", "home"),
		answer(2, "1"),
		answer(3, "own"),
		answer(4, "coverage"),
		answer(5, "no"),
		answer(6, "200-300"),
	})

	assert.Len(t, recs, 3)
	assert.Equal(t, "Smart Bundle", recs[0].Name)
	assert.Equal(t, "$325", recs[0].MonthlyEstimate)
	assert.Equal(t, "primary", recs[0].Priority)

	// With two needs selected the auto plan drops to secondary, so the
	// primary Home Guardian sorts ahead of it.
	assert.Equal(t, "Home Guardian", recs[1].Name)
	assert.Equal(t, "primary", recs[1].Priority)
	assert.Equal(t, "Auto Premium", recs[2].Name)
	assert.Equal(t, "secondary", recs[2].Priority)
}

func TestGenerateBundleBudgetTiers(t *testing.T) {
	e := NewRecommendationEngine()

	tiers := map[string]string{
		"50-100":  "$149",
		"100-200": "$225",
		"200-300": "$325",
		"300+":    "$325",
	}

	for budget, estimate := range tiers {
		recs := e.Generate([]entity.QuizAnswer{
			answer(1, "auto", "life"),
			answer(6, budget),
		})
		assert.Equal(t, "Smart Bundle", recs[0].Name, "budget %s", budget)
		assert.Equal(t, estimate, recs[0].MonthlyEstimate, "budget %s", budget)
	}
}

func TestGenerateRenterWithoutHomeNeedIsSecondary(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1),
		answer(2, "1"),
		answer(3, "rent"),
		answer(4, "coverage"),
		answer(5, "no"),
		answer(6, "100-200"),
	})

	assert.Len(t, recs, 1)
	assert.Equal(t, "Renters Shield", recs[0].Name)
	assert.Equal(t, "$25", recs[0].MonthlyEstimate)
	assert.Equal(t, "secondary", recs[0].Priority)
}

func TestGenerateRenterWithHomeNeedIsPrimary(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "home"),
		answer(2, "1"),
		answer(3, "rent"),
		answer(4, "coverage"),
		answer(5, "no"),
		answer(6, "100-200"),
	})

	assert.Len(t, recs, 1)
	assert.Equal(t, "Renters Shield", recs[0].Name)
	assert.Equal(t, "primary", recs[0].Priority)
}

// Living-with-family skips both home branches even when home protection
// was selected. Known asymmetry in the rule set, preserved on purpose.
func TestGenerateFamilyOwnershipSkipsHomeCoverage(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "home"),
		answer(2, "1"),
		answer(3, "family"),
		answer(4, "coverage"),
		answer(5, "no"),
		answer(6, "100-200"),
	})

	assert.Empty(t, recs)
}

func TestGenerateHomeGuardianBudgetTier(t *testing.T) {
	e := NewRecommendationEngine()

	standard := e.Generate([]entity.QuizAnswer{
		answer(1, "home"),
		answer(2, "1"),
		answer(3, "own"),
		answer(6, "100-200"),
	})
	assert.Equal(t, "Home Guardian", standard[0].Name)
	assert.Equal(t, "$125", standard[0].MonthlyEstimate)

	premium := e.Generate([]entity.QuizAnswer{
		answer(1, "home"),
		answer(2, "1"),
		answer(3, "own"),
		answer(6, "300+"),
	})
	assert.Equal(t, "$185", premium[0].MonthlyEstimate)
}

func TestGenerateLifeRuleHouseholdVariants(t *testing.T) {
	e := NewRecommendationEngine()

	// Couple without life selected still gets the starter life plan.
	couple := e.Generate([]entity.QuizAnswer{
		answer(1),
		answer(2, "2"),
		answer(3, "own"),
	})
	assert.Len(t, couple, 1)
	assert.Equal(t, "Life Secure", couple[0].Name)
	assert.Equal(t, "$45", couple[0].MonthlyEstimate)
	assert.Equal(t, "secondary", couple[0].Priority)

	// Larger households upgrade to the family plan.
	family := e.Generate([]entity.QuizAnswer{
		answer(1),
		answer(2, "3-4"),
		answer(3, "own"),
	})
	assert.Len(t, family, 1)
	assert.Equal(t, "Family Protector", family[0].Name)
	assert.Equal(t, "$75", family[0].MonthlyEstimate)
	assert.Equal(t, "primary", family[0].Priority)
}

func TestGenerateBusinessShield(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "business"),
		answer(2, "1"),
		answer(3, "own"),
	})

	assert.Len(t, recs, 1)
	assert.Equal(t, "Business Shield", recs[0].Name)
	assert.Equal(t, "$199", recs[0].MonthlyEstimate)
	assert.Equal(t, "primary", recs[0].Priority)
}

func TestGeneratePrimaryEntriesPrecedeSecondary(t *testing.T) {
	e := NewRecommendationEngine()

	// auto+life with rent: Renters Shield fires as secondary, auto as
	// secondary (two needs), Family Protector and Smart Bundle as primary.
	recs := e.Generate([]entity.QuizAnswer{
		answer(1, "auto", "life"),
		answer(2, "5+"),
		answer(3, "rent"),
		answer(4, "coverage"),
		answer(5, "few"),
		answer(6, "100-200"),
	})

	assert.Equal(t, "Smart Bundle", recs[0].Name)

	sawSecondary := false
	for _, rec := range recs {
		if rec.Priority == "secondary" {
			sawSecondary = true
		} else {
			assert.False(t, sawSecondary, "primary %s found after a secondary entry", rec.Name)
		}
	}
	assert.True(t, sawSecondary)
}

func TestGenerateEmptyAnswerSetDoesNotPanic(t *testing.T) {
	e := NewRecommendationEngine()

	// Defaults: no needs, household 1, ownership rent -> Renters Shield.
	recs := e.Generate(nil)

	assert.Len(t, recs, 1)
	assert.Equal(t, "Renters Shield", recs[0].Name)
}

func TestGenerateNoRecommendationsIsReachable(t *testing.T) {
	e := NewRecommendationEngine()

	recs := e.Generate([]entity.QuizAnswer{
		answer(1),
		answer(2, "1"),
		answer(3, "own"),
		answer(4, "support"),
		answer(5, "many"),
		answer(6, "50-100"),
	})

	assert.Empty(t, recs)
}
