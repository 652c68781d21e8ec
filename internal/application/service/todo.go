package service

import (
	"berries/internal/application/dto"
	"context"
)

// TodoService defines the interface for todo-related business logic.
type TodoService interface {
	// CreateTodo stores a new todo of ownerID and returns its ID.
	CreateTodo(ctx context.Context, ownerID string, req dto.TodoRequest) (string, error)
	// GetTodo retrieves a todo of ownerID.
	GetTodo(ctx context.Context, ownerID, id string) (*dto.TodoResponse, error)
	// UpdateTodo replaces the editable fields of a todo and stamps its update time.
	UpdateTodo(ctx context.Context, ownerID, id string, req dto.TodoRequest) error
	// DeleteTodo deletes a todo of ownerID.
	DeleteTodo(ctx context.Context, ownerID, id string) error
	// ListTags lists the distinct tags used by ownerID.
	ListTags(ctx context.Context, ownerID string) ([]string, error)
	// ListTodos returns one filtered, sorted page of todos.
	ListTodos(ctx context.Context, criteria dto.TodoCriteria) (*dto.TodoPage, error)
}
