package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type QuizResultRepository struct {
	DB *sql.DB
}

func NewQuizResultRepository(db *sql.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

// Create stores one completed quiz. Answers and recommendations go in as
// jsonb blobs; nothing downstream queries into them yet.
func (r *QuizResultRepository) Create(ctx context.Context, result *entity.QuizResult) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	query := `
		INSERT INTO insurance_quiz_results (
			id, name, email, phone, answers, recommendations, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		result.ID,
		result.Name,
		result.Email,
		result.Phone,
		answers,
		recommendations,
		result.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to store quiz result: %w", err)
	}

	return nil
}
