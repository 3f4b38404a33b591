package entity

import (
	"context"
	"errors"
	"time"
)

var ErrClaimNotFound = errors.New("claim not found")

// Claim pipeline stages, in processing order.
var ClaimStatusSteps = []ClaimStatusStep{
	{Key: "submitted", Label: "Claim Submitted", Description: "Your claim has been received"},
	{Key: "review", Label: "Under Review", Description: "We're reviewing your claim details"},
	{Key: "adjuster", Label: "Adjuster Assigned", Description: "An adjuster is evaluating your claim"},
	{Key: "assessment", Label: "Damage Assessment", Description: "Assessing the extent of damages"},
	{Key: "payment", Label: "Payment Processing", Description: "Your payment is being processed"},
	{Key: "resolved", Label: "Claim Resolved", Description: "Your claim has been completed"},
}

type ClaimStatusStep struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ClaimUpdate struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

type Claim struct {
	ID          string        `json:"id"`
	ClaimNumber string        `json:"claim_number"`
	PolicyType  string        `json:"policy_type"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	FiledAt     time.Time     `json:"filed_at"`
	Updates     []ClaimUpdate `json:"updates"`
}

// StatusIndex returns the claim's position in the pipeline, -1 for an
// unknown status.
func (c *Claim) StatusIndex() int {
	for i, step := range ClaimStatusSteps {
		if step.Key == c.Status {
			return i
		}
	}
	return -1
}

type ClaimRepositoryInterface interface {
	FindByClaimNumber(ctx context.Context, claimNumber string) (*Claim, error)
}
