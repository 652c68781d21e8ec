package dto

import (
	"berries/internal/domain/entity"
	"time"
)

// TodoResponse is the DTO for sending todo information to the client.
type TodoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	State       string     `json:"state"`
	Priority    string     `json:"priority"`
	Description *string    `json:"description,omitempty"`
	Tags        []string   `json:"tags"`
	Created     time.Time  `json:"created"`
	Updated     *time.Time `json:"updated,omitempty"`
}

// ToTodoResponse converts an entity.Todo to a TodoResponse DTO.
func ToTodoResponse(t *entity.Todo) TodoResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		State:       t.State,
		Priority:    t.Priority,
		Description: t.Description,
		Tags:        tags,
		Created:     t.Created,
		Updated:     t.Updated,
	}
}

// ToTodoResponseList converts a slice of entity.Todo to a slice of TodoResponse DTOs.
func ToTodoResponseList(todos []*entity.Todo) []TodoResponse {
	list := make([]TodoResponse, len(todos))
	for i, t := range todos {
		list[i] = ToTodoResponse(t)
	}
	return list
}

// TodoRequest is the DTO for creating or replacing a todo.
type TodoRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	State       string   `json:"state" validate:"required,max=32"`
	Priority    string   `json:"priority" validate:"required,max=32"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=4000"`
	Tags        []string `json:"tags,omitempty" validate:"max=50,dive,required,max=64"`
}

// TodoPage is one page of a todo listing plus its navigation metadata.
type TodoPage struct {
	Items             []TodoResponse
	PageSize          int
	PageIndex         int
	PreviousPageIndex *int
	NextPageIndex     *int
	FirstPage         bool
	LastPage          bool
	TotalPages        int
	TotalEntries      int64
}
