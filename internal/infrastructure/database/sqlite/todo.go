package sqlite

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new instance of TodoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// FindByID retrieves a todo of an owner.
func (r *todoRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	var todo entity.Todo
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("todo with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find todo by id %s: %w", id, err)
	}
	return &todo, nil
}

// Find retrieves one sorted page of the todos matching filter.
func (r *todoRepository) Find(ctx context.Context, filter repository.TodoFilter, ordering repository.TodoOrdering, skip, limit int) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	err := r.matching(ctx, filter).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: ordering.By.Column()},
			Desc:   ordering.Order == constant.OrderDescending,
		}).
		Offset(skip).
		Limit(limit).
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find todos of owner %s: %w", filter.OwnerID, err)
	}
	return todos, nil
}

// Count counts the todos matching filter.
func (r *todoRepository) Count(ctx context.Context, filter repository.TodoFilter) (int64, error) {
	var count int64
	if err := r.matching(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count todos of owner %s: %w", filter.OwnerID, err)
	}
	return count, nil
}

// matching builds the shared predicate of Find and Count.
func (r *todoRepository) matching(ctx context.Context, filter repository.TodoFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&entity.Todo{}).Where("owner_id = ?", filter.OwnerID)
	if filter.State != "" {
		tx = tx.Where("state = ?", filter.State)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.Tag != "" {
		tx = tx.Where("EXISTS (SELECT 1 FROM json_each(todo.tags) WHERE json_each.value = ?)", filter.Tag)
	}
	return tx
}

// Tags retrieves the distinct tags of an owner in ascending order.
func (r *todoRepository) Tags(ctx context.Context, ownerID string) ([]string, error) {
	tags := []string{}
	err := r.db.WithContext(ctx).Raw(
		`SELECT DISTINCT json_each.value FROM todo, json_each(todo.tags)
		 WHERE todo.owner_id = ? AND json_each.type = 'text'
		 ORDER BY json_each.value ASC`, ownerID,
	).Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags of owner %s: %w", ownerID, err)
	}
	return tags, nil
}

// Create stores a new todo.
func (r *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.Tags == nil {
		todo.Tags = []string{}
	}
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return fmt.Errorf("failed to create todo for owner %s: %w", todo.OwnerID, err)
	}
	return nil
}

// Update replaces the mutable fields of a todo. Created and owner are left untouched.
func (r *todoRepository) Update(ctx context.Context, todo *entity.Todo) (int64, error) {
	if todo.Tags == nil {
		todo.Tags = []string{}
	}
	result := r.db.WithContext(ctx).Model(&entity.Todo{}).
		Where("id = ? AND owner_id = ?", todo.ID, todo.OwnerID).
		Select("title", "state", "priority", "description", "tags", "updated").
		Updates(todo)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update todo %s: %w", todo.ID, result.Error)
	}
	return result.RowsAffected, nil
}

// Delete deletes a todo of an owner.
func (r *todoRepository) Delete(ctx context.Context, ownerID, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entity.Todo{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete todo %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
