package sqlite

import (
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pushRecipientRepository struct {
	db *gorm.DB
}

// NewPushRecipientRepository creates a new instance of PushRecipientRepository.
func NewPushRecipientRepository(db *gorm.DB) repository.PushRecipientRepository {
	return &pushRecipientRepository{db: db}
}

// FindByOwnerID retrieves the recipient registered for an owner.
func (r *pushRecipientRepository) FindByOwnerID(ctx context.Context, ownerID string) (*entity.PushRecipient, error) {
	var recipient entity.PushRecipient
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("push recipient for owner %s not found: %w", ownerID, err)
		}
		return nil, fmt.Errorf("failed to find push recipient for owner %s: %w", ownerID, err)
	}
	return &recipient, nil
}

// Upsert creates or replaces the recipient of an owner.
func (r *pushRecipientRepository) Upsert(ctx context.Context, recipient *entity.PushRecipient) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipient_id", "updated_at"}),
	}).Create(recipient).Error
	if err != nil {
		return fmt.Errorf("failed to upsert push recipient for owner %s: %w", recipient.OwnerID, err)
	}
	return nil
}
