package v1_test

import (
	"context"
	"time"

	"go-firesafety-backend/config"
	v1 "go-firesafety-backend/internal/delivery/http/v1"
	"go-firesafety-backend/internal/domain"
	"go-firesafety-backend/internal/usecase"
	"go-firesafety-backend/pkg/auth"
	"go-firesafety-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
)

const testSecret = "operator-secret"

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

// setupRouter builds the full router over a mocked repository, so tests
// exercise the real middleware chain, validation and response shapes.
// Rate limit thresholds are high enough to never trigger across a run.
func setupRouter(repo domain.ContactRepository, adminSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	cfg := &config.Config{
		Port:                     "8080",
		FrontendURL:              "http://localhost:5173",
		AdminSecret:              adminSecret,
		AdminTokenTTLMin:         60,
		RateLimitWindowSeconds:   60,
		RateLimitSubmitThreshold: 100000,
		RateLimitGlobalThreshold: 100000,
	}

	contactUC := usecase.NewContactUsecase(repo, validator.New())
	cred := auth.NewCredential(cfg.AdminSecret, "", time.Hour)

	return v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		Credential: cred,
		Config:     cfg,
	})
}
