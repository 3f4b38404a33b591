package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type SubmitQuizInput struct {
	Name    string              `json:"name"`
	Email   string              `json:"email"`
	Phone   string              `json:"phone"`
	Answers []entity.QuizAnswer `json:"answers"`
}

type SubmitQuizOutput struct {
	ResultID        string                  `json:"result_id"`
	Recommendations []entity.Recommendation `json:"recommendations"`
}

type SubmitQuizUseCase struct {
	Engine     *RecommendationEngine
	LeadUC     *SubmitLeadUseCase
	ResultRepo entity.QuizResultRepositoryInterface
}

func NewSubmitQuizUseCase(
	engine *RecommendationEngine,
	leadUC *SubmitLeadUseCase,
	resultRepo entity.QuizResultRepositoryInterface,
) *SubmitQuizUseCase {
	return &SubmitQuizUseCase{
		Engine:     engine,
		LeadUC:     leadUC,
		ResultRepo: resultRepo,
	}
}

// Execute runs the recommendation engine over the answer set, captures the
// contact as a quiz lead, and stores the result. Only the lead insert can
// reject the request; the quiz-result table being absent is logged and
// treated as success so the recommendations still reach the user.
func (uc *SubmitQuizUseCase) Execute(ctx context.Context, input SubmitQuizInput) (*SubmitQuizOutput, error) {
	recommendations := uc.Engine.Generate(input.Answers)

	_, err := uc.LeadUC.Execute(ctx, SubmitLeadInput{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Source:           "quiz",
		PreferredContact: "phone",
		Message:          summarizeAnswers(input.Answers),
		InsuranceType:    insuranceTypeFromAnswers(input.Answers),
	})
	if err != nil {
		return nil, err
	}

	result := &entity.QuizResult{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Answers:         input.Answers,
		Recommendations: recommendations,
		CreatedAt:       time.Now(),
	}

	if uc.ResultRepo != nil {
		if err := uc.ResultRepo.Create(ctx, result); err != nil {
			// Results are still captured through the lead above.
			log.Printf("⚠️ [QUIZ] result not stored (table may not exist yet): %s", err)
		}
	}

	return &SubmitQuizOutput{
		ResultID:        result.ID,
		Recommendations: recommendations,
	}, nil
}

func summarizeAnswers(answers []entity.QuizAnswer) string {
	parts := make([]string, 0, len(answers))
	for _, a := range answers {
		parts = append(parts, fmt.Sprintf("Q%d: %s", a.QuestionID, a.Answer))
	}
	return "Quiz Answers: " + strings.Join(parts, " | ")
}

func insuranceTypeFromAnswers(answers []entity.QuizAnswer) string {
	for _, a := range answers {
		if a.QuestionID == 1 && a.Answer != "" {
			return a.Answer
		}
	}
	return "general"
}
