package repository

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"context"
	"time"
)

// BerryRepository defines the interface for berry data operations.
type BerryRepository interface {
	// FindByID retrieves a berry by its ID.
	FindByID(ctx context.Context, id string) (*entity.Berry, error)
	// FindByOwnerID retrieves all berries of an owner ordered by next occurrence.
	FindByOwnerID(ctx context.Context, ownerID string) ([]*entity.Berry, error)
	// FindAll retrieves every berry (admin listing).
	FindAll(ctx context.Context) ([]*entity.Berry, error)
	// FindDueBy retrieves berries whose next occurrence is at or before instant,
	// ordered by next occurrence and id.
	FindDueBy(ctx context.Context, instant time.Time) ([]*entity.Berry, error)
	// Create stores a new berry.
	Create(ctx context.Context, berry *entity.Berry) error
	// UpdateDetails rewrites subject and period only and returns the number of
	// modified records, 0 when the berry no longer exists.
	UpdateDetails(ctx context.Context, id, subject string, period constant.Period) (int64, error)
	// Reschedule rewrites next and last occurrence only and returns the number of
	// modified records, 0 when the berry no longer exists.
	Reschedule(ctx context.Context, id string, next, last time.Time) (int64, error)
	// Delete deletes a berry by its ID and returns the number of deleted records.
	Delete(ctx context.Context, id string) (int64, error)
}
