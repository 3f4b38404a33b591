package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadCapturedPayloadMarshalling(t *testing.T) {
	payload := LeadCapturedPayload{
		LeadID:        "lead-123",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0101",
		Source:        "quiz",
		InsuranceType: "auto, home",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, body)

	var received LeadCapturedPayload
	err = json.Unmarshal(body, &received)
	assert.NoError(t, err)

	assert.Equal(t, "lead-123", received.LeadID)
	assert.Equal(t, "Jane Doe", received.Name)
	assert.Equal(t, "jane@example.com", received.Email)
	assert.Equal(t, "555-0101", received.Phone)
	assert.Equal(t, "quiz", received.Source)
	assert.Equal(t, "auto, home", received.InsuranceType)
}
