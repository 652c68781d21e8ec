package service

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// fakeBerryRepo is an in-memory BerryRepository.
type fakeBerryRepo struct {
	mu       sync.Mutex
	berries  map[string]*entity.Berry
	due      []*entity.Berry // when set, FindDueBy returns exactly this
	scanErr  error
	failIDs  map[string]bool // Reschedule fails for these ids
	updates  []entity.Berry
	findHook func()
}

func newFakeBerryRepo(berries ...*entity.Berry) *fakeBerryRepo {
	r := &fakeBerryRepo{berries: map[string]*entity.Berry{}, failIDs: map[string]bool{}}
	for _, b := range berries {
		copied := *b
		r.berries[b.ID] = &copied
	}
	return r
}

func (r *fakeBerryRepo) FindByID(_ context.Context, id string) (*entity.Berry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.berries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBerryRepo) list(match func(*entity.Berry) bool) []*entity.Berry {
	var out []*entity.Berry
	for _, b := range r.berries {
		if match(b) {
			copied := *b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NextOccurrence.Equal(out[j].NextOccurrence) {
			return out[i].ID < out[j].ID
		}
		return out[i].NextOccurrence.Before(out[j].NextOccurrence)
	})
	return out
}

func (r *fakeBerryRepo) FindByOwnerID(_ context.Context, ownerID string) ([]*entity.Berry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(b *entity.Berry) bool { return b.OwnerID == ownerID }), nil
}

func (r *fakeBerryRepo) FindAll(_ context.Context) ([]*entity.Berry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(*entity.Berry) bool { return true }), nil
}

func (r *fakeBerryRepo) FindDueBy(_ context.Context, instant time.Time) ([]*entity.Berry, error) {
	if r.findHook != nil {
		r.findHook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scanErr != nil {
		return nil, r.scanErr
	}
	if r.due != nil {
		return r.due, nil
	}
	return r.list(func(b *entity.Berry) bool { return !b.NextOccurrence.After(instant) }), nil
}

func (r *fakeBerryRepo) Create(_ context.Context, berry *entity.Berry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *berry
	r.berries[berry.ID] = &copied
	return nil
}

func (r *fakeBerryRepo) UpdateDetails(_ context.Context, id, subject string, period constant.Period) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.berries[id]
	if !ok {
		return 0, nil
	}
	existing.Subject = subject
	existing.Period = period
	return 1, nil
}

func (r *fakeBerryRepo) Reschedule(_ context.Context, id string, next, last time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, entity.Berry{ID: id, NextOccurrence: next, LastOccurrence: last})
	if r.failIDs[id] {
		return 0, errors.New("disk full")
	}
	existing, ok := r.berries[id]
	if !ok {
		return 0, nil
	}
	existing.NextOccurrence = next
	existing.LastOccurrence = last
	return 1, nil
}

func (r *fakeBerryRepo) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.berries[id]; !ok {
		return 0, nil
	}
	delete(r.berries, id)
	return 1, nil
}

// fakeNotifier records calls and fails on the configured call numbers (1 based).
type fakeNotifier struct {
	mu     sync.Mutex
	calls  []string
	failOn map[int]bool
	panics map[int]bool
}

func (n *fakeNotifier) Notify(_ context.Context, ownerID, message string) error {
	n.mu.Lock()
	n.calls = append(n.calls, ownerID+":"+message)
	call := len(n.calls)
	n.mu.Unlock()
	if n.panics[call] {
		panic("notifier exploded")
	}
	if n.failOn[call] {
		return errors.New("push endpoint unreachable")
	}
	return nil
}

// fakeTodoRepo is an in-memory TodoRepository with the same matching rules as SQLite.
type fakeTodoRepo struct {
	mu       sync.Mutex
	todos    []*entity.Todo
	findHits int
}

func (r *fakeTodoRepo) matches(t *entity.Todo, f repository.TodoFilter) bool {
	return t.OwnerID == f.OwnerID &&
		(f.State == "" || t.State == f.State) &&
		(f.Priority == "" || t.Priority == f.Priority) &&
		(f.Tag == "" || t.HasTag(f.Tag))
}

func (r *fakeTodoRepo) FindByID(_ context.Context, ownerID, id string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTodoRepo) Find(_ context.Context, f repository.TodoFilter, o repository.TodoOrdering, skip, limit int) ([]*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findHits++
	var matched []*entity.Todo
	for _, t := range r.todos {
		if r.matches(t, f) {
			copied := *t
			matched = append(matched, &copied)
		}
	}
	key := func(t *entity.Todo) string {
		switch o.By {
		case constant.OrderByCreated:
			return t.Created.Format(time.RFC3339Nano)
		case constant.OrderByPriority:
			return t.Priority
		case constant.OrderByState:
			return t.State
		}
		return t.Title
	}
	sort.SliceStable(matched, func(i, j int) bool {
		c := strings.Compare(key(matched[i]), key(matched[j]))
		if o.Order == constant.OrderDescending {
			return c > 0
		}
		return c < 0
	})
	if skip >= len(matched) {
		return []*entity.Todo{}, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (r *fakeTodoRepo) Count(_ context.Context, f repository.TodoFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.todos {
		if r.matches(t, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeTodoRepo) Tags(_ context.Context, ownerID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := map[string]struct{}{}
	for _, t := range r.todos {
		if t.OwnerID != ownerID {
			continue
		}
		for _, tag := range t.Tags {
			set[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *todo
	r.todos = append(r.todos, &copied)
	return nil
}

func (r *fakeTodoRepo) Update(_ context.Context, todo *entity.Todo) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == todo.ID && t.OwnerID == todo.OwnerID {
			t.Title, t.State, t.Priority = todo.Title, todo.State, todo.Priority
			t.Description, t.Tags, t.Updated = todo.Description, todo.Tags, todo.Updated
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, ownerID, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
