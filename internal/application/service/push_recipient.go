package service

import (
	"berries/internal/application/dto"
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"
	"context"
	"fmt"
	"time"
)

// PushRecipientService registers where an owner's reminders are pushed to.
type PushRecipientService interface {
	// RegisterRecipient creates or replaces the push recipient of the owner.
	RegisterRecipient(ctx context.Context, ownerID string, req dto.RegisterPushRecipientRequest) error
}

type pushRecipientService struct {
	recipientRepo repository.PushRecipientRepository
	log           logger.Logger
}

// NewPushRecipientService creates a new instance of PushRecipientService implementation.
func NewPushRecipientService(recipientRepo repository.PushRecipientRepository, log logger.Logger) PushRecipientService {
	return &pushRecipientService{recipientRepo: recipientRepo, log: log}
}

func (s *pushRecipientService) RegisterRecipient(ctx context.Context, ownerID string, req dto.RegisterPushRecipientRequest) error {
	recipient := &entity.PushRecipient{
		OwnerID:     ownerID,
		RecipientID: req.RecipientID,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.recipientRepo.Upsert(ctx, recipient); err != nil {
		s.log.Error(fmt.Sprintf("Failed to register push recipient for owner %s", ownerID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Registered push recipient for owner %s", ownerID))
	return nil
}
