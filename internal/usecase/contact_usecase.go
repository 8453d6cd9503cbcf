package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-firesafety-backend/internal/domain"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. repo may be nil when
// no database connection string is configured; every operation then
// fails with domain.ErrNotConfigured before any store access.
func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Submit validates a contact form submission and persists it with status "new".
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.SubmitContactRequest) error {
	if uc.repo == nil {
		return domain.ErrNotConfigured
	}

	// name, email and message must be present and non-empty. phone and
	// projectType pass through unvalidated.
	if err := uc.validate.Struct(req); err != nil {
		return domain.ErrMissingFields
	}

	msg := &domain.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Status:      domain.StatusNew,
	}

	if err := uc.repo.Insert(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// ListMessages returns the most recent inquiries, newest first.
func (uc *contactUsecase) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	if uc.repo == nil {
		return nil, domain.ErrNotConfigured
	}

	messages, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus validates id and status, then applies the update. The id
// arrives as a float64 because JSON has a single number type; it must be
// finite and positive. The status is normalized to lowercase and checked
// against the allowed set. A missing row is not an error: the caller
// cannot distinguish "already deleted" from "never existed", so both
// report success with a nil message.
func (uc *contactUsecase) UpdateStatus(ctx context.Context, id float64, status string) (*domain.ContactMessage, error) {
	if uc.repo == nil {
		return nil, domain.ErrNotConfigured
	}

	if math.IsNaN(id) || math.IsInf(id, 0) || id <= 0 {
		return nil, domain.ErrInvalidID
	}

	status = strings.ToLower(status)
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	// Serial ids are integral, a fractional id can never match a row.
	if id != math.Trunc(id) {
		return nil, nil
	}

	msg, err := uc.repo.UpdateStatus(ctx, int64(id), status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update message status: %w", err)
	}
	return msg, nil
}
