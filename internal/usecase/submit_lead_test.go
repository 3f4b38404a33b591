package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chatman-insurance/funnel-api/internal/entity"
	"github.com/chatman-insurance/funnel-api/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestSubmitLeadSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitLeadUseCase(mockRepo, mockQueue)

	lead, err := uc.Execute(context.Background(), SubmitLeadInput{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "555-0101",
		Source: "quote",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, "quote", lead.Source)
	assert.Equal(t, "email", lead.PreferredContact)
	mockRepo.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

func TestSubmitLeadRequiresEmail(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	uc := NewSubmitLeadUseCase(mockRepo, mockQueue)

	_, err := uc.Execute(context.Background(), SubmitLeadInput{Name: "Jane Doe"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	mockRepo.AssertNotCalled(t, "Upsert")
}

func TestSubmitLeadUnknownSourceFallsBack(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitLeadUseCase(mockRepo, mockQueue)

	lead, err := uc.Execute(context.Background(), SubmitLeadInput{
		Email:  "jane@example.com",
		Source: "tiktok_ad",
	})

	assert.NoError(t, err)
	assert.Equal(t, "contact_form", lead.Source)
}

func TestSubmitLeadQueueFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewSubmitLeadUseCase(mockRepo, mockQueue)

	lead, err := uc.Execute(context.Background(), SubmitLeadInput{Email: "jane@example.com"})

	assert.NoError(t, err, "a broker outage must not fail the capture")
	assert.NotNil(t, lead)
}

func TestSubmitLeadRepositoryFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewSubmitLeadUseCase(mockRepo, mockQueue)

	_, err := uc.Execute(context.Background(), SubmitLeadInput{Email: "jane@example.com"})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}
