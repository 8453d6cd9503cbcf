package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-firesafety-backend/internal/domain"
	"go-firesafety-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repository
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockContactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactRepo) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContactMessage), args.Error(1)
}

func (m *MockContactRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject when required fields are empty or missing", func(t *testing.T) {
		cases := []*domain.SubmitContactRequest{
			{Email: "a@x.com", Message: "hi"},          // no name
			{Name: "A", Message: "hi"},                 // no email
			{Name: "A", Email: "a@x.com"},              // no message
			{Name: "", Email: "", Message: ""},         // all empty
			{Name: "A", Email: "a@x.com", Message: ""}, // empty string counts as missing
		}

		for _, req := range cases {
			mockRepo := new(MockContactRepo)
			uc := usecase.NewContactUsecase(mockRepo, validator.New())

			err := uc.Submit(ctx, req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		}
	})

	t.Run("Should not validate email format", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		err := uc.Submit(ctx, &domain.SubmitContactRequest{
			Name: "A", Email: "not-an-email", Message: "hi",
		})
		assert.NoError(t, err)
	})

	t.Run("Should insert with status new and pass optional fields through", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil).
			Run(func(args mock.Arguments) {
				msg := args.Get(1).(*domain.ContactMessage)
				assert.Equal(t, domain.StatusNew, msg.Status)
				assert.Equal(t, "FM-200 suppression", msg.ProjectType)
				assert.Equal(t, "+20 100 000 0000", msg.Phone)
			})
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		err := uc.Submit(ctx, &domain.SubmitContactRequest{
			Name:        "A",
			Email:       "a@x.com",
			Phone:       "+20 100 000 0000",
			ProjectType: "FM-200 suppression",
			Message:     "hi",
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should fail with configuration error when store is absent", func(t *testing.T) {
		uc := usecase.NewContactUsecase(nil, validator.New())
		err := uc.Submit(ctx, &domain.SubmitContactRequest{Name: "A", Email: "a@x.com", Message: "hi"})
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})
}

func TestUpdateStatusValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-positive ids", func(t *testing.T) {
		for _, id := range []float64{0, -1, -0.5} {
			mockRepo := new(MockContactRepo)
			uc := usecase.NewContactUsecase(mockRepo, validator.New())

			_, err := uc.UpdateStatus(ctx, id, domain.StatusRead)
			assert.ErrorIs(t, err, domain.ErrInvalidID)
			mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Should reject statuses outside the whitelist", func(t *testing.T) {
		for _, status := range []string{"archived", "deleted", "", "news"} {
			mockRepo := new(MockContactRepo)
			uc := usecase.NewContactUsecase(mockRepo, validator.New())

			_, err := uc.UpdateStatus(ctx, 1, status)
			assert.ErrorIs(t, err, domain.ErrInvalidStatus)
			mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Should normalize status case before updating", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("UpdateStatus", ctx, int64(7), domain.StatusContacted).
			Return(&domain.ContactMessage{ID: 7, Status: domain.StatusContacted}, nil)
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		msg, err := uc.UpdateStatus(ctx, 7, "CONTACTED")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusContacted, msg.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should report missing rows as success with nil message", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("UpdateStatus", ctx, int64(9999), domain.StatusRead).
			Return(nil, domain.ErrNotFound)
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		msg, err := uc.UpdateStatus(ctx, 9999, domain.StatusRead)
		assert.NoError(t, err)
		assert.Nil(t, msg)
	})

	t.Run("Should treat fractional ids as matching no row", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		msg, err := uc.UpdateStatus(ctx, 2.5, domain.StatusRead)
		assert.NoError(t, err)
		assert.Nil(t, msg)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should wrap store failures", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("UpdateStatus", ctx, int64(1), domain.StatusRead).
			Return(nil, errors.New("connection refused"))
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		_, err := uc.UpdateStatus(ctx, 1, domain.StatusRead)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass the repository result through", func(t *testing.T) {
		expected := []*domain.ContactMessage{
			{ID: 2, Name: "B", Status: domain.StatusNew},
			{ID: 1, Name: "A", Status: domain.StatusRead},
		}
		mockRepo := new(MockContactRepo)
		mockRepo.On("List", ctx).Return(expected, nil)
		uc := usecase.NewContactUsecase(mockRepo, validator.New())

		messages, err := uc.ListMessages(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, messages)
	})

	t.Run("Should fail with configuration error when store is absent", func(t *testing.T) {
		uc := usecase.NewContactUsecase(nil, validator.New())
		_, err := uc.ListMessages(ctx)
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})
}
