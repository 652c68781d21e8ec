package dto

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"time"
)

// BerryResponse is the DTO for sending berry information to the client.
type BerryResponse struct {
	ID             string          `json:"id"`
	Subject        string          `json:"subject"`
	Period         constant.Period `json:"period"`
	OwnerID        string          `json:"owner_id"`
	NextOccurrence time.Time       `json:"next_occurrence"`
	LastOccurrence time.Time       `json:"last_occurrence"`
}

// ToBerryResponse converts an entity.Berry to a BerryResponse DTO.
func ToBerryResponse(b *entity.Berry) BerryResponse {
	return BerryResponse{
		ID:             b.ID,
		Subject:        b.Subject,
		Period:         b.Period,
		OwnerID:        b.OwnerID,
		NextOccurrence: b.NextOccurrence,
		LastOccurrence: b.LastOccurrence,
	}
}

// ToBerryResponseList converts a slice of entity.Berry to a slice of BerryResponse DTOs.
func ToBerryResponseList(berries []*entity.Berry) []BerryResponse {
	list := make([]BerryResponse, len(berries))
	for i, b := range berries {
		list[i] = ToBerryResponse(b)
	}
	return list
}

// CreateBerryRequest is the DTO for creating a new berry.
type CreateBerryRequest struct {
	Subject string          `json:"subject" validate:"required,max=500"`
	Period  constant.Period `json:"period" validate:"required,oneof=daily weekly monthly"`
	// FirstOccurrence defaults to one period from now when omitted.
	FirstOccurrence *time.Time `json:"first_occurrence,omitempty"`
}

// UpdateBerryRequest is the DTO for editing a berry. The schedule itself is
// only advanced by the dispatcher.
type UpdateBerryRequest struct {
	Subject string          `json:"subject" validate:"required,max=500"`
	Period  constant.Period `json:"period" validate:"required,oneof=daily weekly monthly"`
}
