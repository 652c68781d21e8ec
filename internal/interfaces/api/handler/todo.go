package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"berries/internal/application/dto"
	"berries/internal/application/service"
	"berries/internal/domain/constant"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Pagination response headers of the todo listing.
const (
	HeaderPageSize          = "X-Page-Size"
	HeaderPageIndex         = "X-Page-Index"
	HeaderFirstPage         = "X-First-Page"
	HeaderLastPage          = "X-Last-Page"
	HeaderTotalPages        = "X-Total-Pages"
	HeaderTotalEntries      = "X-Total-Entries"
	HeaderPreviousPageIndex = "X-Previous-Page-Index"
	HeaderNextPageIndex     = "X-Next-Page-Index"
)

// TodoHandler serves the todo endpoints.
type TodoHandler struct {
	todoService service.TodoService
	log         logger.Logger
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService service.TodoService, log logger.Logger) *TodoHandler {
	return &TodoHandler{todoService: todoService, log: log}
}

// Create handles POST /v1/todos.
func (h *TodoHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.TodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.todoService.CreateTodo(c.Request().Context(), p.OwnerID, req)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%s", c.Request().URL.Path, id))
	return c.NoContent(http.StatusCreated)
}

// List handles GET /v1/todos. The page metadata travels in the X-* headers,
// the body is the bare item array.
func (h *TodoHandler) List(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	criteria, err := criteriaFromQuery(c, p.OwnerID)
	if err != nil {
		return err
	}

	page, err := h.todoService.ListTodos(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	header := c.Response().Header()
	header.Set(HeaderPageSize, strconv.Itoa(page.PageSize))
	header.Set(HeaderPageIndex, strconv.Itoa(page.PageIndex))
	header.Set(HeaderFirstPage, strconv.FormatBool(page.FirstPage))
	header.Set(HeaderLastPage, strconv.FormatBool(page.LastPage))
	header.Set(HeaderTotalPages, strconv.Itoa(page.TotalPages))
	header.Set(HeaderTotalEntries, strconv.FormatInt(page.TotalEntries, 10))
	if page.PreviousPageIndex != nil {
		header.Set(HeaderPreviousPageIndex, strconv.Itoa(*page.PreviousPageIndex))
	}
	if page.NextPageIndex != nil {
		header.Set(HeaderNextPageIndex, strconv.Itoa(*page.NextPageIndex))
	}
	return c.JSON(http.StatusOK, page.Items)
}

// criteriaFromQuery reads page_size, page_index, state, priority, tag, order_by
// and order. Range checks are left to the service.
func criteriaFromQuery(c echo.Context, ownerID string) (dto.TodoCriteria, error) {
	index, err := intParam(c, "page_index", 0)
	if err != nil {
		return dto.TodoCriteria{}, err
	}
	size, err := intParam(c, "page_size", dto.DefaultPageSize)
	if err != nil {
		return dto.TodoCriteria{}, err
	}

	opts := []dto.CriteriaOption{
		dto.WithPage(index, size),
		dto.WithState(c.QueryParam("state")),
		dto.WithPriority(c.QueryParam("priority")),
		dto.WithTag(c.QueryParam("tag")),
	}
	orderBy, order := c.QueryParam("order_by"), c.QueryParam("order")
	if orderBy != "" || order != "" {
		if orderBy == "" {
			orderBy = string(constant.OrderByTitle)
		}
		if order == "" {
			order = string(constant.OrderDescending)
		}
		opts = append(opts, dto.WithOrdering(constant.OrderBy(orderBy), constant.Order(order)))
	}
	return dto.NewTodoCriteria(ownerID, opts...), nil
}

func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", appErrors.ErrInvalidArgument, name, raw)
	}
	return v, nil
}

// Tags handles GET /v1/todos/tags.
func (h *TodoHandler) Tags(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	tags, err := h.todoService.ListTags(c.Request().Context(), p.OwnerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// Get handles GET /v1/todos/:id.
func (h *TodoHandler) Get(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	todo, err := h.todoService.GetTodo(c.Request().Context(), p.OwnerID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Update handles PUT /v1/todos/:id.
func (h *TodoHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.TodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.todoService.UpdateTodo(c.Request().Context(), p.OwnerID, c.Param("id"), req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/todos/:id.
func (h *TodoHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	if err := h.todoService.DeleteTodo(c.Request().Context(), p.OwnerID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
