package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/chatman-insurance/funnel-api/internal/entity"
	"github.com/chatman-insurance/funnel-api/internal/infra/queue"
)

type SubmitLeadInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferredContact"`
	Source           string `json:"source"`
	InsuranceType    string `json:"insuranceType"`
}

type SubmitLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Queue    QueueProducerInterface
}

func NewSubmitLeadUseCase(leadRepo entity.LeadRepositoryInterface, producer QueueProducerInterface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		LeadRepo: leadRepo,
		Queue:    producer,
	}
}

// Execute validates, stores, and announces a captured lead. The queue
// publish is best-effort: a broker outage must not lose the lead or the
// response.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "email is required",
		}
	}

	lead := entity.NewLead(
		input.Name,
		input.Email,
		input.Phone,
		input.Message,
		input.PreferredContact,
		input.Source,
		input.InsuranceType,
	)

	if err := uc.LeadRepo.Upsert(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to store lead: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		err := uc.Queue.PublishLeadCaptured(ctx, queue.LeadCapturedPayload{
			LeadID:        lead.ID,
			Name:          lead.Name,
			Email:         lead.Email,
			Phone:         lead.Phone,
			Source:        lead.Source,
			InsuranceType: lead.InsuranceType,
		})
		if err != nil {
			log.Printf("⚠️ [LEAD] follow-up publish failed for %s: %s", lead.Email, err)
		}
	}

	return lead, nil
}
