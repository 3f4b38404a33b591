package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type QuoteRepository struct {
	DB *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

func (r *QuoteRepository) Create(ctx context.Context, quote *entity.QuoteResult) error {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}

	query := `
		INSERT INTO insurance_quotes (
			id, quote_type, coverage_amount, deductible,
			monthly_premium, annual_premium, zip_code, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.QuoteType,
		quote.CoverageAmount,
		quote.Deductible,
		quote.MonthlyPremium,
		quote.AnnualPremium,
		quote.ZipCode,
		quote.Status,
		quote.ComputedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to store quote: %w", err)
	}

	return nil
}
