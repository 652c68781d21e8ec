package repository

import (
	"berries/internal/domain/entity"
	"context"
)

// PushRecipientRepository defines the interface for push recipient data operations.
type PushRecipientRepository interface {
	// FindByOwnerID retrieves the recipient registered for an owner.
	FindByOwnerID(ctx context.Context, ownerID string) (*entity.PushRecipient, error)
	// Upsert creates or replaces the recipient of an owner.
	Upsert(ctx context.Context, recipient *entity.PushRecipient) error
}
