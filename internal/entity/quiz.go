package entity

import (
	"context"
	"time"
)

// QuizAnswer holds the selection for one question. Question 1 is the only
// multi-select; SelectedValues keeps the click order.
type QuizAnswer struct {
	QuestionID     int      `json:"questionId"`
	Answer         string   `json:"answer"` // display text, e.g. "auto, home"
	SelectedValues []string `json:"value"`
}

type Recommendation struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	MonthlyEstimate string   `json:"monthlyEstimate"` // formatted, e.g. "$89"
	Features        []string `json:"features"`
	Priority        string   `json:"priority"` // primary, secondary
}

// QuizResult is the persisted record of a completed quiz: contact fields
// plus the raw answers and the recommendations shown.
type QuizResult struct {
	ID              string           `json:"id,omitempty"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Answers         []QuizAnswer     `json:"answers"`
	Recommendations []Recommendation `json:"recommendations"`
	CreatedAt       time.Time        `json:"created_at"`
}

type QuizResultRepositoryInterface interface {
	Create(ctx context.Context, result *QuizResult) error
}
