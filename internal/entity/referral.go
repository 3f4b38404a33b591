package entity

import (
	"context"
	"errors"
)

var ErrReferralNotFound = errors.New("referral code not found")

// RewardPerConversion is the flat payout per converted referral, in dollars.
const RewardPerConversion = 50

type ReferralStats struct {
	Code           string `json:"code"`
	TotalReferrals int    `json:"totalReferrals"`
	Conversions    int    `json:"conversions"`
	PendingRewards int    `json:"pendingRewards"`
	TotalEarned    int    `json:"totalEarned"`
}

type ReferralRepositoryInterface interface {
	StatsByCode(ctx context.Context, code string) (*ReferralStats, error)
}
