package database

import (
	"context"
	"database/sql"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert keys leads on email so a returning visitor updates their record
// instead of duplicating it. Empty optional fields never overwrite values
// captured earlier.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO insurance_leads (
			id, email, name, phone, message, preferred_contact, source, status, insurance_type, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, insurance_leads.name),
			phone = COALESCE(EXCLUDED.phone, insurance_leads.phone),
			message = COALESCE(EXCLUDED.message, insurance_leads.message),
			preferred_contact = EXCLUDED.preferred_contact,
			source = EXCLUDED.source,
			insurance_type = COALESCE(EXCLUDED.insurance_type, insurance_leads.insurance_type),
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Email,
		nullString(lead.Name),
		nullString(lead.Phone),
		nullString(lead.Message),
		lead.PreferredContact,
		lead.Source,
		lead.Status,
		nullString(lead.InsuranceType),
	).Scan(
		&lead.ID,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
