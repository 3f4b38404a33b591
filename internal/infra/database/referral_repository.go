package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type ReferralRepository struct {
	DB *sql.DB
}

func NewReferralRepository(db *sql.DB) *ReferralRepository {
	return &ReferralRepository{DB: db}
}

func (r *ReferralRepository) StatsByCode(ctx context.Context, code string) (*entity.ReferralStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'converted'),
			COUNT(*) FILTER (WHERE status != 'converted')
		FROM insurance_referrals
		WHERE agent_code = $1
	`

	stats := &entity.ReferralStats{Code: code}
	var pending int
	err := r.DB.QueryRowContext(ctx, query, code).Scan(
		&stats.TotalReferrals,
		&stats.Conversions,
		&pending,
	)
	if err == sql.ErrNoRows || (err == nil && stats.TotalReferrals == 0) {
		return nil, entity.ErrReferralNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load referral stats: %w", err)
	}

	stats.PendingRewards = pending
	stats.TotalEarned = stats.Conversions * entity.RewardPerConversion

	return stats, nil
}
