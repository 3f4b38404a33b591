package entity

import (
	"context"
	"time"
)

const (
	DefaultCoverageAmount = 500000
	DefaultDeductible     = 500
	DefaultQuoteAge       = 35
)

// CoverageRequest is what the quote form sends. Age arrives as a raw
// string because the frontend does not guarantee a number.
type CoverageRequest struct {
	QuoteType      string `json:"quoteType"`
	Age            string `json:"age"`
	ZipCode        string `json:"zipCode"`
	CoverageAmount int    `json:"coverageAmount"`
	Deductible     int    `json:"deductible"`
}

// QuoteResult is immutable once computed. CoverageAmount and Deductible
// are carried through from the request; they do not feed the premium math.
type QuoteResult struct {
	ID               string    `json:"id,omitempty"`
	QuoteType        string    `json:"quote_type"`
	CoverageAmount   int       `json:"coverage_amount"`
	Deductible       int       `json:"deductible"`
	MonthlyPremium   int       `json:"monthlyPremium"`
	AnnualPremium    int       `json:"annualPremium"`
	PotentialSavings int       `json:"potentialSavings"`
	ZipCode          string    `json:"zip_code,omitempty"`
	Status           string    `json:"status"` // pending, quoted, accepted, declined
	ComputedAt       time.Time `json:"computed_at"`
}

type QuoteRepositoryInterface interface {
	Create(ctx context.Context, quote *QuoteResult) error
}
