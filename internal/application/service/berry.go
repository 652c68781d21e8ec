package service

import (
	"berries/internal/application/dto"
	"context"
)

// BerryService defines the interface for berry-related business logic.
// Every operation acts on behalf of the authenticated principal.
type BerryService interface {
	// CreateBerry stores a new berry owned by the principal and returns its ID.
	CreateBerry(ctx context.Context, p dto.Principal, req dto.CreateBerryRequest) (string, error)
	// GetBerry retrieves a berry visible to the principal.
	GetBerry(ctx context.Context, p dto.Principal, id string) (*dto.BerryResponse, error)
	// ListBerries lists the principal's berries, or all berries for admins.
	ListBerries(ctx context.Context, p dto.Principal) ([]dto.BerryResponse, error)
	// UpdateBerry changes subject and period and returns the modified record count.
	UpdateBerry(ctx context.Context, p dto.Principal, id string, req dto.UpdateBerryRequest) (int64, error)
	// DeleteBerry deletes a berry visible to the principal.
	DeleteBerry(ctx context.Context, p dto.Principal, id string) error
}
