package sqlite

import (
	"berries/internal/domain/constant"
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	"context"
	"fmt"
	"testing"
	"time"
)

func seedTodos(t *testing.T, repo repository.TodoRepository) {
	t.Helper()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	seed := []struct {
		title, state, priority string
		tags                   []string
	}{
		{"alpha", "open", "high", []string{"t1", "t2"}},
		{"bravo", "open", "high", []string{"t2"}},
		{"charlie", "open", "low", []string{"t2"}},
		{"delta", "closed", "high", []string{"t2"}},
		{"echo", "open", "high", []string{"t3"}},
		{"foxtrot", "closed", "low", nil},
	}
	for i, s := range seed {
		todo := &entity.Todo{
			ID:       fmt.Sprintf("id-%d", i),
			OwnerID:  "owner",
			Title:    s.title,
			State:    s.state,
			Priority: s.priority,
			Tags:     s.tags,
			Created:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), todo); err != nil {
			t.Fatalf("Create(%s) error: %v", s.title, err)
		}
	}
	other := &entity.Todo{ID: "foreign", OwnerID: "someone-else", Title: "alpha", State: "open", Priority: "high", Tags: []string{"t2"}, Created: base}
	if err := repo.Create(context.Background(), other); err != nil {
		t.Fatalf("Create(foreign) error: %v", err)
	}
}

func titles(todos []*entity.Todo) []string {
	out := make([]string, len(todos))
	for i, todo := range todos {
		out[i] = todo.Title
	}
	return out
}

func TestTodoFilterCombination(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(newTestDB(t))
	seedTodos(t, repo)
	byTitle := repository.TodoOrdering{By: constant.OrderByTitle, Order: constant.OrderAscending}

	tests := []struct {
		name   string
		filter repository.TodoFilter
		want   []string
	}{
		{name: "owner only", filter: repository.TodoFilter{OwnerID: "owner"}, want: []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}},
		{name: "state", filter: repository.TodoFilter{OwnerID: "owner", State: "open"}, want: []string{"alpha", "bravo", "charlie", "echo"}},
		{name: "state priority", filter: repository.TodoFilter{OwnerID: "owner", State: "open", Priority: "high"}, want: []string{"alpha", "bravo", "echo"}},
		{name: "state priority tag", filter: repository.TodoFilter{OwnerID: "owner", State: "open", Priority: "high", Tag: "t2"}, want: []string{"alpha", "bravo"}},
		{name: "tag only", filter: repository.TodoFilter{OwnerID: "owner", Tag: "t1"}, want: []string{"alpha"}},
		{name: "no match", filter: repository.TodoFilter{OwnerID: "owner", Tag: "t9"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tt.filter, byTitle, 0, 250)
			if err != nil {
				t.Fatalf("Find error: %v", err)
			}
			if fmt.Sprint(titles(got)) != fmt.Sprint(tt.want) {
				t.Fatalf("Find = %v, want %v", titles(got), tt.want)
			}
			count, err := repo.Count(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Count error: %v", err)
			}
			if count != int64(len(tt.want)) {
				t.Fatalf("Count = %d, want %d", count, len(tt.want))
			}
		})
	}
}

func TestTodoRemovingFilterNeverShrinks(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(newTestDB(t))
	seedTodos(t, repo)

	full := repository.TodoFilter{OwnerID: "owner", State: "open", Priority: "high", Tag: "t2"}
	fullCount, err := repo.Count(ctx, full)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	broadened := []repository.TodoFilter{
		{OwnerID: "owner", Priority: "high", Tag: "t2"},
		{OwnerID: "owner", State: "open", Tag: "t2"},
		{OwnerID: "owner", State: "open", Priority: "high"},
	}
	for _, filter := range broadened {
		count, err := repo.Count(ctx, filter)
		if err != nil {
			t.Fatalf("Count error: %v", err)
		}
		if count < fullCount {
			t.Fatalf("Count(%+v) = %d, smaller than %d", filter, count, fullCount)
		}
	}
}

func TestTodoSortDirection(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(newTestDB(t))
	seedTodos(t, repo)
	filter := repository.TodoFilter{OwnerID: "owner", State: "open"}

	asc, err := repo.Find(ctx, filter, repository.TodoOrdering{By: constant.OrderByTitle, Order: constant.OrderAscending}, 0, 10)
	if err != nil {
		t.Fatalf("Find asc error: %v", err)
	}
	desc, err := repo.Find(ctx, filter, repository.TodoOrdering{By: constant.OrderByTitle, Order: constant.OrderDescending}, 0, 10)
	if err != nil {
		t.Fatalf("Find desc error: %v", err)
	}
	if len(asc) != len(desc) {
		t.Fatalf("asc has %d items, desc has %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].Title != desc[len(desc)-1-i].Title {
			t.Fatalf("asc %v is not the reverse of desc %v", titles(asc), titles(desc))
		}
	}

	byCreated, err := repo.Find(ctx, repository.TodoFilter{OwnerID: "owner"}, repository.TodoOrdering{By: constant.OrderByCreated, Order: constant.OrderDescending}, 1, 2)
	if err != nil {
		t.Fatalf("Find by created error: %v", err)
	}
	if got := fmt.Sprint(titles(byCreated)); got != "[echo delta]" {
		t.Fatalf("second page by created desc = %s, want [echo delta]", got)
	}
}

func TestTodoTagsAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoRepository(newTestDB(t))
	seedTodos(t, repo)

	tags, err := repo.Tags(ctx, "owner")
	if err != nil {
		t.Fatalf("Tags error: %v", err)
	}
	if fmt.Sprint(tags) != "[t1 t2 t3]" {
		t.Fatalf("Tags = %v, want [t1 t2 t3]", tags)
	}

	stored, err := repo.FindByID(ctx, "owner", "id-0")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	created := stored.Created
	now := created.Add(time.Hour)
	stored.Title = "alpha renamed"
	stored.Tags = []string{"t4"}
	stored.Updated = &now
	stored.Created = now.Add(time.Hour)
	if n, err := repo.Update(ctx, stored); err != nil || n != 1 {
		t.Fatalf("Update = (%d, %v), want (1, nil)", n, err)
	}

	reloaded, err := repo.FindByID(ctx, "owner", "id-0")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if reloaded.Title != "alpha renamed" || !reloaded.HasTag("t4") || reloaded.HasTag("t1") {
		t.Fatalf("reloaded todo = %+v", reloaded)
	}
	if !reloaded.Created.Equal(created) {
		t.Fatalf("Created changed from %v to %v", created, reloaded.Created)
	}
	if reloaded.Updated == nil || !reloaded.Updated.Equal(now) {
		t.Fatalf("Updated = %v, want %v", reloaded.Updated, now)
	}

	if n, err := repo.Delete(ctx, "someone-else", "id-0"); err != nil || n != 0 {
		t.Fatalf("Delete by foreign owner = (%d, %v), want (0, nil)", n, err)
	}
	if n, err := repo.Delete(ctx, "owner", "id-0"); err != nil || n != 1 {
		t.Fatalf("Delete = (%d, %v), want (1, nil)", n, err)
	}
}
