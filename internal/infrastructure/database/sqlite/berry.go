package sqlite

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type berryRepository struct {
	db *gorm.DB
}

// NewBerryRepository creates a new instance of BerryRepository.
func NewBerryRepository(db *gorm.DB) repository.BerryRepository {
	return &berryRepository{db: db}
}

// FindByID retrieves a berry by its ID.
func (r *berryRepository) FindByID(ctx context.Context, id string) (*entity.Berry, error) {
	var berry entity.Berry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&berry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("berry with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find berry by id %s: %w", id, err)
	}
	return &berry, nil
}

// FindByOwnerID retrieves all berries of an owner ordered by next occurrence.
func (r *berryRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*entity.Berry, error) {
	var berries []*entity.Berry
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("next_occurrence asc, id asc").Find(&berries).Error; err != nil {
		return nil, fmt.Errorf("failed to find berries by owner_id %s: %w", ownerID, err)
	}
	return berries, nil
}

// FindAll retrieves every berry.
func (r *berryRepository) FindAll(ctx context.Context) ([]*entity.Berry, error) {
	var berries []*entity.Berry
	if err := r.db.WithContext(ctx).Order("next_occurrence asc, id asc").Find(&berries).Error; err != nil {
		return nil, fmt.Errorf("failed to find all berries: %w", err)
	}
	return berries, nil
}

// FindDueBy retrieves berries with next_occurrence <= instant.
func (r *berryRepository) FindDueBy(ctx context.Context, instant time.Time) ([]*entity.Berry, error) {
	var berries []*entity.Berry
	if err := r.db.WithContext(ctx).
		Where("next_occurrence <= ?", instant.UTC()).
		Order("next_occurrence asc, id asc").
		Find(&berries).Error; err != nil {
		return nil, fmt.Errorf("failed to find berries due by %v: %w", instant, err)
	}
	return berries, nil
}

// Create stores a new berry.
func (r *berryRepository) Create(ctx context.Context, berry *entity.Berry) error {
	normalizeBerryTimes(berry)
	if err := r.db.WithContext(ctx).Create(berry).Error; err != nil {
		return fmt.Errorf("failed to create berry for owner %s: %w", berry.OwnerID, err)
	}
	return nil
}

// UpdateDetails rewrites the owner editable columns. The schedule columns are
// left to Reschedule so an edit and a dispatch cycle never undo each other.
func (r *berryRepository) UpdateDetails(ctx context.Context, id, subject string, period constant.Period) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Berry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"subject": subject,
			"period":  period,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update berry %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Reschedule rewrites the schedule columns only.
func (r *berryRepository) Reschedule(ctx context.Context, id string, next, last time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Berry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"next_occurrence": next.UTC(),
			"last_occurrence": last.UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reschedule berry %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Delete deletes a berry by its ID.
func (r *berryRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Berry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete berry %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Timestamps are stored as text, so they must share one zone to compare correctly.
func normalizeBerryTimes(berry *entity.Berry) {
	berry.NextOccurrence = berry.NextOccurrence.UTC()
	berry.LastOccurrence = berry.LastOccurrence.UTC()
}
