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
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type todoService struct {
	todoRepo repository.TodoRepository
	log      logger.Logger
	now      func() time.Time
}

// NewTodoService creates a new instance of TodoService implementation.
func NewTodoService(todoRepo repository.TodoRepository, log logger.Logger) TodoService {
	return &todoService{
		todoRepo: todoRepo,
		log:      log,
		now:      time.Now,
	}
}

// CreateTodo stores a new todo of ownerID and returns its ID.
func (s *todoService) CreateTodo(ctx context.Context, ownerID string, req dto.TodoRequest) (string, error) {
	s.log.Info(fmt.Sprintf("Create new todo for owner %s", ownerID))
	todo := &entity.Todo{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		State:       req.State,
		Priority:    req.Priority,
		Description: req.Description,
		Tags:        tagSet(req.Tags),
		Created:     s.now().UTC(),
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create todo for owner %s", ownerID), err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return todo.ID, nil
}

// GetTodo retrieves a todo of ownerID.
func (s *todoService) GetTodo(ctx context.Context, ownerID, id string) (*dto.TodoResponse, error) {
	todo, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToTodoResponse(todo)
	return &resp, nil
}

// UpdateTodo replaces the editable fields of a todo. Created never changes and
// Updated never moves backwards.
func (s *todoService) UpdateTodo(ctx context.Context, ownerID, id string, req dto.TodoRequest) error {
	s.log.Info(fmt.Sprintf("Update todo %s for owner %s", id, ownerID))
	todo, err := s.find(ctx, ownerID, id)
	if err != nil {
		return err
	}

	updated := s.now().UTC()
	if todo.Updated != nil && updated.Before(*todo.Updated) {
		updated = *todo.Updated
	}
	todo.Title = req.Title
	todo.State = req.State
	todo.Priority = req.Priority
	todo.Description = req.Description
	todo.Tags = tagSet(req.Tags)
	todo.Updated = &updated

	modified, err := s.todoRepo.Update(ctx, todo)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to update todo %s", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if modified == 0 {
		s.log.Warn(fmt.Sprintf("Todo %s disappeared while updating", id))
		return fmt.Errorf("%w: todo %s disappeared while updating", appErrors.ErrTodoNotFound, id)
	}
	return nil
}

// DeleteTodo deletes a todo of ownerID.
func (s *todoService) DeleteTodo(ctx context.Context, ownerID, id string) error {
	s.log.Info(fmt.Sprintf("Delete todo %s for owner %s", id, ownerID))
	deleted, err := s.todoRepo.Delete(ctx, ownerID, id)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete todo %s", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: todo %s", appErrors.ErrTodoNotFound, id)
	}
	return nil
}

// ListTags lists the distinct tags used by ownerID.
func (s *todoService) ListTags(ctx context.Context, ownerID string) ([]string, error) {
	tags, err := s.todoRepo.Tags(ctx, ownerID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list tags of owner %s", ownerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return tags, nil
}

// ListTodos validates the criteria, counts the matches and returns the requested page.
func (s *todoService) ListTodos(ctx context.Context, criteria dto.TodoCriteria) (*dto.TodoPage, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}
	index, size := criteria.PageIndex(), criteria.PageSize()
	filter := criteria.Filter()

	total, err := s.todoRepo.Count(ctx, filter)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to count todos of owner %s", filter.OwnerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	page := paginate(total, index, size)
	if total > 0 && index >= page.totalPages {
		return nil, fmt.Errorf("%w: page index %d references a non existing page, maximum page index is %d",
			appErrors.ErrPageOutOfRange, index, page.totalPages-1)
	}

	todos, err := s.todoRepo.Find(ctx, filter, criteria.Ordering(), index*size, size)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list todos of owner %s", filter.OwnerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	return &dto.TodoPage{
		Items:             dto.ToTodoResponseList(todos),
		PageSize:          size,
		PageIndex:         index,
		PreviousPageIndex: page.previous,
		NextPageIndex:     page.next,
		FirstPage:         page.first,
		LastPage:          page.last,
		TotalPages:        page.totalPages,
		TotalEntries:      total,
	}, nil
}

func validateCriteria(c dto.TodoCriteria) error {
	switch {
	case c.OwnerID() == "":
		return fmt.Errorf("%w: owner must be set", appErrors.ErrInvalidArgument)
	case c.PageIndex() < 0:
		return fmt.Errorf("%w: page index must not be less than 0", appErrors.ErrInvalidArgument)
	case c.PageSize() < 1:
		return fmt.Errorf("%w: page size must not be less than 1", appErrors.ErrInvalidArgument)
	case c.PageSize() > dto.MaxPageSize:
		return fmt.Errorf("%w: page size must not be greater than %d", appErrors.ErrInvalidArgument, dto.MaxPageSize)
	case !c.OrderBy().Valid():
		return fmt.Errorf("%w: unknown sort key %q", appErrors.ErrInvalidArgument, c.OrderBy())
	case !c.Order().Valid():
		return fmt.Errorf("%w: unknown sort direction %q", appErrors.ErrInvalidArgument, c.Order())
	}
	return nil
}

func (s *todoService) find(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: todo %s", appErrors.ErrTodoNotFound, id)
		}
		s.log.Error(fmt.Sprintf("Failed to get todo %s", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return todo, nil
}

// tagSet deduplicates and sorts tags.
func tagSet(tags []string) []string {
	set := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, dup := set[tag]; dup {
			continue
		}
		set[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
