package dto

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/repository"
)

// Pagination limits of todo listings.
const (
	DefaultPageSize = 25
	MaxPageSize     = 250
)

// TodoCriteria is the immutable description of a todo listing request.
// Build it with NewTodoCriteria; the zero value has no owner and is rejected.
type TodoCriteria struct {
	ownerID   string
	state     string
	priority  string
	tag       string
	pageIndex int
	pageSize  int
	orderBy   constant.OrderBy
	order     constant.Order
}

// CriteriaOption sets one optional part of a TodoCriteria.
type CriteriaOption func(*TodoCriteria)

// NewTodoCriteria returns criteria for ownerID with page 0 of size
// DefaultPageSize ordered by title descending, adjusted by opts.
func NewTodoCriteria(ownerID string, opts ...CriteriaOption) TodoCriteria {
	c := TodoCriteria{
		ownerID:  ownerID,
		pageSize: DefaultPageSize,
		orderBy:  constant.OrderByTitle,
		order:    constant.OrderDescending,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithState restricts the listing to one state. Empty matches any state.
func WithState(state string) CriteriaOption {
	return func(c *TodoCriteria) { c.state = state }
}

// WithPriority restricts the listing to one priority. Empty matches any priority.
func WithPriority(priority string) CriteriaOption {
	return func(c *TodoCriteria) { c.priority = priority }
}

// WithTag restricts the listing to todos carrying tag. Empty matches any tags.
func WithTag(tag string) CriteriaOption {
	return func(c *TodoCriteria) { c.tag = tag }
}

// WithPage selects the zero based page index and the page size.
func WithPage(index, size int) CriteriaOption {
	return func(c *TodoCriteria) {
		c.pageIndex = index
		c.pageSize = size
	}
}

// WithOrdering selects the sort key and direction.
func WithOrdering(by constant.OrderBy, order constant.Order) CriteriaOption {
	return func(c *TodoCriteria) {
		c.orderBy = by
		c.order = order
	}
}

func (c TodoCriteria) OwnerID() string           { return c.ownerID }
func (c TodoCriteria) PageIndex() int            { return c.pageIndex }
func (c TodoCriteria) PageSize() int             { return c.pageSize }
func (c TodoCriteria) OrderBy() constant.OrderBy { return c.orderBy }
func (c TodoCriteria) Order() constant.Order     { return c.order }

// Filter returns the match predicate of the criteria.
func (c TodoCriteria) Filter() repository.TodoFilter {
	return repository.TodoFilter{
		OwnerID:  c.ownerID,
		State:    c.state,
		Priority: c.priority,
		Tag:      c.tag,
	}
}

// Ordering returns the sort order of the criteria.
func (c TodoCriteria) Ordering() repository.TodoOrdering {
	return repository.TodoOrdering{By: c.orderBy, Order: c.order}
}
