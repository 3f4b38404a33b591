package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSource(t *testing.T) {
	assert.Equal(t, "quiz", NormalizeSource("quiz"))
	assert.Equal(t, "lead_gate", NormalizeSource("lead_gate"))
	assert.Equal(t, "contact_form", NormalizeSource("instagram"))
	assert.Equal(t, "contact_form", NormalizeSource(""))
}

func TestNewLeadDefaults(t *testing.T) {
	lead := NewLead("Jane", "jane@example.com", "", "", "", "billboard", "")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, "email", lead.PreferredContact)
	assert.Equal(t, "contact_form", lead.Source)
}

func TestClaimStatusIndex(t *testing.T) {
	claim := &Claim{Status: "payment"}
	assert.Equal(t, 4, claim.StatusIndex())

	claim.Status = "submitted"
	assert.Equal(t, 0, claim.StatusIndex())

	claim.Status = "lost-in-mail"
	assert.Equal(t, -1, claim.StatusIndex())
}
