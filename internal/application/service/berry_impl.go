package service

import (
	"berries/internal/application/dto"
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type berryService struct {
	berryRepo repository.BerryRepository
	log       logger.Logger
	now       func() time.Time
}

// NewBerryService creates a new instance of BerryService implementation.
func NewBerryService(berryRepo repository.BerryRepository, log logger.Logger) BerryService {
	return &berryService{
		berryRepo: berryRepo,
		log:       log,
		now:       time.Now,
	}
}

// CreateBerry stores a new berry owned by the principal and returns its ID.
func (s *berryService) CreateBerry(ctx context.Context, p dto.Principal, req dto.CreateBerryRequest) (string, error) {
	if !req.Period.Valid() {
		return "", fmt.Errorf("%w: unknown period %q", appErrors.ErrInvalidArgument, req.Period)
	}

	now := s.now()
	next := NextOccurrence(req.Period, now)
	if req.FirstOccurrence != nil {
		if req.FirstOccurrence.Before(now) {
			return "", fmt.Errorf("%w: first occurrence %s is in the past", appErrors.ErrInvalidArgument, req.FirstOccurrence.Format(time.RFC3339))
		}
		next = *req.FirstOccurrence
	}

	berry := &entity.Berry{
		ID:             uuid.NewString(),
		Subject:        req.Subject,
		Period:         req.Period,
		OwnerID:        p.OwnerID,
		NextOccurrence: next,
		LastOccurrence: entity.NeverFired,
	}
	if err := s.berryRepo.Create(ctx, berry); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create berry for owner %s", p.OwnerID), err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created berry %s for owner %s, next occurrence %s", berry.ID, p.OwnerID, next.Format(time.RFC3339)))
	return berry.ID, nil
}

// GetBerry retrieves a berry visible to the principal.
func (s *berryService) GetBerry(ctx context.Context, p dto.Principal, id string) (*dto.BerryResponse, error) {
	berry, err := s.find(ctx, p, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToBerryResponse(berry)
	return &resp, nil
}

// ListBerries lists the principal's berries, or all berries for admins.
func (s *berryService) ListBerries(ctx context.Context, p dto.Principal) ([]dto.BerryResponse, error) {
	var (
		berries []*entity.Berry
		err     error
	)
	if p.Admin {
		berries, err = s.berryRepo.FindAll(ctx)
	} else {
		berries, err = s.berryRepo.FindByOwnerID(ctx, p.OwnerID)
	}
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list berries for owner %s", p.OwnerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToBerryResponseList(berries), nil
}

// UpdateBerry changes subject and period. The owner and both occurrences are never
// written. A modified count of 0 means the berry vanished between read and write.
func (s *berryService) UpdateBerry(ctx context.Context, p dto.Principal, id string, req dto.UpdateBerryRequest) (int64, error) {
	if !req.Period.Valid() {
		return 0, fmt.Errorf("%w: unknown period %q", appErrors.ErrInvalidArgument, req.Period)
	}
	if _, err := s.find(ctx, p, id); err != nil {
		return 0, err
	}

	modified, err := s.berryRepo.UpdateDetails(ctx, id, req.Subject, req.Period)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to update berry %s", id), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if modified == 0 {
		s.log.Warn(fmt.Sprintf("Berry %s vanished while updating", id))
	}
	return modified, nil
}

// DeleteBerry deletes a berry visible to the principal.
func (s *berryService) DeleteBerry(ctx context.Context, p dto.Principal, id string) error {
	if _, err := s.find(ctx, p, id); err != nil {
		return err
	}
	if _, err := s.berryRepo.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete berry %s", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted berry %s", id))
	return nil
}

// find loads a berry and hides berries of other owners behind ErrBerryNotFound.
func (s *berryService) find(ctx context.Context, p dto.Principal, id string) (*entity.Berry, error) {
	berry, err := s.berryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: berry %s", appErrors.ErrBerryNotFound, id)
		}
		s.log.Error(fmt.Sprintf("Failed to get berry %s", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if !p.CanAccess(berry.OwnerID) {
		return nil, fmt.Errorf("%w: berry %s", appErrors.ErrBerryNotFound, id)
	}
	return berry, nil
}
