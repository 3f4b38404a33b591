package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type ReferralToolkit struct {
	Link              string               `json:"referralLink"`
	QRCodeURL         string               `json:"qrCodeUrl"`
	QRDownload        string               `json:"qrDownloadUrl"`
	ShareText         string               `json:"shareText"`
	ShareSMS          string               `json:"shareSms"`
	ShareEmailSubject string               `json:"shareEmailSubject"`
	ShareEmailBody    string               `json:"shareEmailBody"`
	FacebookURL       string               `json:"facebookUrl"`
	LinkedInURL       string               `json:"linkedinUrl"`
	Stats             entity.ReferralStats `json:"stats"`
}

type ReferralUseCase struct {
	Repo    entity.ReferralRepositoryInterface
	BaseURL string
}

func NewReferralUseCase(repo entity.ReferralRepositoryInterface, baseURL string) *ReferralUseCase {
	return &ReferralUseCase{
		Repo:    repo,
		BaseURL: baseURL,
	}
}

// Toolkit builds the shareable assets for an agent code plus their stats.
// An unknown code still gets a working toolkit with zeroed stats, so new
// agents can start sharing before their first referral lands.
func (uc *ReferralUseCase) Toolkit(ctx context.Context, code string) (*ReferralToolkit, error) {
	stats, err := uc.Repo.StatsByCode(ctx, code)
	if err != nil {
		if err != entity.ErrReferralNotFound {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to load referral stats: " + err.Error(),
			}
		}
		stats = &entity.ReferralStats{Code: code}
	}

	link := fmt.Sprintf("%s?ref=%s", uc.BaseURL, url.QueryEscape(code))
	encoded := url.QueryEscape(link)
	shareText := fmt.Sprintf("I found an amazing insurance agency with 24/7 AI support! Get a free quote: %s", link)

	return &ReferralToolkit{
		Link:              link,
		QRCodeURL:         fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=%s&bgcolor=ffffff&color=102a43", encoded),
		QRDownload:        fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=400x400&data=%s&bgcolor=ffffff&color=102a43&format=png", encoded),
		ShareText:         shareText,
		ShareSMS:          fmt.Sprintf("Hey! Check out Chatman Insurance - they have AI that answers instantly, no hold times. Get a free quote here: %s", link),
		ShareEmailSubject: "Check out this insurance agency - they have 24/7 AI support!",
		ShareEmailBody:    fmt.Sprintf("Hi!\n\nI wanted to share Chatman Insurance with you. They have an AI assistant that can help you get quotes instantly, file claims 24/7, and answer any questions.\n\nNo more waiting on hold!\n\nGet your free quote here: %s\n\nTrust me, it's worth checking out!", link),
		FacebookURL: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s",
			encoded, url.QueryEscape(shareText)),
		LinkedInURL: fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s", encoded),
		Stats:       *stats,
	}, nil
}
