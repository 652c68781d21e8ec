package repository

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"context"
)

// TodoFilter is the conjunctive match predicate of a todo listing.
// Empty optional fields match any value.
type TodoFilter struct {
	OwnerID  string
	State    string
	Priority string
	Tag      string
}

// TodoOrdering is the single sort key and direction of a listing.
type TodoOrdering struct {
	By    constant.OrderBy
	Order constant.Order
}

// TodoRepository defines the interface for todo data operations.
type TodoRepository interface {
	// FindByID retrieves a todo of an owner.
	FindByID(ctx context.Context, ownerID, id string) (*entity.Todo, error)
	// Find retrieves a sorted slice of the todos matching filter.
	Find(ctx context.Context, filter TodoFilter, ordering TodoOrdering, skip, limit int) ([]*entity.Todo, error)
	// Count counts the todos matching filter.
	Count(ctx context.Context, filter TodoFilter) (int64, error)
	// Tags retrieves the distinct tags of an owner in ascending order.
	Tags(ctx context.Context, ownerID string) ([]string, error)
	// Create stores a new todo.
	Create(ctx context.Context, todo *entity.Todo) error
	// Update replaces title, state, priority, description, tags and updated of a stored todo.
	Update(ctx context.Context, todo *entity.Todo) (int64, error)
	// Delete deletes a todo of an owner and returns the number of deleted records.
	Delete(ctx context.Context, ownerID, id string) (int64, error)
}
