package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead sources the funnel knows how to attribute. Anything else coming
// from the frontend is folded into contact_form.
var ValidLeadSources = []string{
	"contact_form", "chat", "phone", "quote", "lead_gate", "quiz", "referral",
}

type Lead struct {
	ID               string    `json:"id"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Message          string    `json:"message,omitempty"`
	PreferredContact string    `json:"preferred_contact"` // email, phone, text
	Source           string    `json:"source"`
	Status           string    `json:"status"` // new, contacted, qualified, converted
	InsuranceType    string    `json:"insurance_type,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewLead(name, email, phone, message, preferredContact, source, insuranceType string) *Lead {
	if preferredContact == "" {
		preferredContact = "email"
	}

	return &Lead{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		Phone:            phone,
		Message:          message,
		PreferredContact: preferredContact,
		Source:           NormalizeSource(source),
		Status:           "new",
		InsuranceType:    insuranceType,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

// NormalizeSource falls back to contact_form for sources the leads table
// does not know yet.
func NormalizeSource(source string) string {
	for _, s := range ValidLeadSources {
		if s == source {
			return source
		}
	}
	return "contact_form"
}

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
}
