package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type ClaimRepository struct {
	DB *sql.DB
}

func NewClaimRepository(db *sql.DB) *ClaimRepository {
	return &ClaimRepository{DB: db}
}

func (r *ClaimRepository) FindByClaimNumber(ctx context.Context, claimNumber string) (*entity.Claim, error) {
	query := `
		SELECT id, claim_number, policy_type, description, status, filed_at
		FROM insurance_claims
		WHERE claim_number = $1
	`

	claim := &entity.Claim{}
	err := r.DB.QueryRowContext(ctx, query, claimNumber).Scan(
		&claim.ID,
		&claim.ClaimNumber,
		&claim.PolicyType,
		&claim.Description,
		&claim.Status,
		&claim.FiledAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrClaimNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}

	updates, err := r.updatesFor(ctx, claim.ID)
	if err != nil {
		return nil, err
	}
	claim.Updates = updates

	return claim, nil
}

func (r *ClaimRepository) updatesFor(ctx context.Context, claimID string) ([]entity.ClaimUpdate, error) {
	query := `
		SELECT status, message, created_at
		FROM insurance_claim_updates
		WHERE claim_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to load claim updates: %w", err)
	}
	defer rows.Close()

	var updates []entity.ClaimUpdate
	for rows.Next() {
		var u entity.ClaimUpdate
		if err := rows.Scan(&u.Status, &u.Message, &u.Date); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}
