package usecase

import (
	"math"
	"strconv"
	"time"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

// Monthly base rates per coverage type. The bundle rate is already
// discounted relative to buying auto+home separately.
var baseRates = map[string]float64{
	"auto":     89,
	"home":     125,
	"life":     45,
	"health":   199,
	"business": 299,
	"bundle":   199,
}

// fallbackBaseRate covers quote types the table does not know.
const fallbackBaseRate = 150

// bundleSavingsRate is the flat bundling-incentive share shown next to
// every quote, regardless of type.
const bundleSavingsRate = 0.25

// PricingService computes premium estimates. It is a total function over
// its input: malformed fields degrade to defaults, never to an error.
// A plausible estimate always beats blocking the funnel.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

func (s *PricingService) Calculate(req entity.CoverageRequest) entity.QuoteResult {
	base, ok := baseRates[req.QuoteType]
	if !ok {
		base = fallbackBaseRate
	}

	age := parseAge(req.Age)
	monthly := int(math.Round(base * AgeFactor(age)))

	coverage := req.CoverageAmount
	if coverage == 0 {
		coverage = entity.DefaultCoverageAmount
	}
	deductible := req.Deductible
	if deductible == 0 {
		deductible = entity.DefaultDeductible
	}

	return entity.QuoteResult{
		QuoteType:        req.QuoteType,
		CoverageAmount:   coverage,
		Deductible:       deductible,
		MonthlyPremium:   monthly,
		AnnualPremium:    monthly * 12,
		PotentialSavings: int(math.Round(float64(monthly) * bundleSavingsRate)),
		ZipCode:          req.ZipCode,
		Status:           "quoted",
		ComputedAt:       time.Now(),
	}
}

// AgeFactor: under-25 surcharge 1.3, over-60 surcharge 1.2. The bounds 25
// and 60 themselves price at 1.0.
func AgeFactor(age int) float64 {
	switch {
	case age < 25:
		return 1.3
	case age > 60:
		return 1.2
	default:
		return 1.0
	}
}

func parseAge(raw string) int {
	age, err := strconv.Atoi(raw)
	if err != nil {
		return entity.DefaultQuoteAge
	}
	return age
}
