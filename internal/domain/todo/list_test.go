package todo_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

func defaultCategories() todo.CategorySet {
	return todo.NewCategorySet("Work", "Personal", "Study", "Health")
}

func newTestList(t *testing.T) *todo.List {
	t.Helper()
	l := todo.NewList(defaultCategories())
	if err := l.AddItem(1, "Test", "Desc", "Work"); err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}
	return l
}

func TestCategorySet(t *testing.T) {
	t.Parallel()

	set := todo.NewCategorySet("Work", "Health", "Work", "", "Personal")

	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if want := []string{"Health", "Personal", "Work"}; !slices.Equal(set.Names(), want) {
		t.Errorf("Names() = %v, want %v", set.Names(), want)
	}
	if !set.Contains("Work") {
		t.Error("Contains(\"Work\") = false, want true")
	}
	if set.Contains("work") {
		t.Error("Contains(\"work\") = true, want false (case-sensitive)")
	}
	if set.Contains("") {
		t.Error("Contains(\"\") = true, want false")
	}
}

func TestAddItem_InvalidCategory(t *testing.T) {
	t.Parallel()

	l := todo.NewList(defaultCategories())
	requireKind(t, l.AddItem(1, "Test", "Desc", "Gardening"), domain.ErrInvalidCategory)

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestAddItem_DuplicateID(t *testing.T) {
	t.Parallel()

	l := newTestList(t)
	requireKind(t, l.AddItem(1, "Other", "Other", "Study"), domain.ErrDuplicateItem)
}

func TestAddItem_ValidationErrorFromFactory(t *testing.T) {
	t.Parallel()

	l := todo.NewList(defaultCategories())
	err := l.AddItem(1, "", "Desc", "Work")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AddItem() error = %v, want validation error", err)
	}
}

func TestLoadExisting_SkipsCategoryCheck(t *testing.T) {
	t.Parallel()

	l := todo.NewList(todo.NewCategorySet())
	item, err := todo.NewItem(7, "Legacy", "Imported", "Archived")
	if err != nil {
		t.Fatalf("NewItem() error: %v", err)
	}
	if err := l.LoadExisting(item); err != nil {
		t.Fatalf("LoadExisting() error: %v", err)
	}
	if _, ok := l.Item(7); !ok {
		t.Error("Item(7) not found after LoadExisting")
	}
	requireKind(t, l.LoadExisting(item), domain.ErrDuplicateItem)
}

func TestMissingItemOperations(t *testing.T) {
	t.Parallel()

	l := newTestList(t)
	ops := map[string]func() error{
		"UpdateItem":          func() error { return l.UpdateItem(99, "x") },
		"RemoveItem":          func() error { return l.RemoveItem(99) },
		"RegisterProgression": func() error { return l.RegisterProgression(99, t0, pct(10)) },
	}

	for name, op := range ops {
		err := op()
		requireKind(t, err, domain.ErrItemNotFound)
		if err != nil && err.Error() != "Todo item with ID 99 not found" {
			t.Errorf("%s() message = %q", name, err.Error())
		}
	}
}

func TestRemoveItem_ProgressLock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress float64
		wantErr  bool
	}{
		{name: "untouched", progress: 0},
		{name: "exactly 50", progress: 50},
		{name: "above 50", progress: 50.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := newTestList(t)
			if tt.progress > 0 {
				if err := l.RegisterProgression(1, t0, pct(tt.progress)); err != nil {
					t.Fatalf("RegisterProgression() error: %v", err)
				}
			}

			err := l.RemoveItem(1)
			if tt.wantErr {
				requireKind(t, err, domain.ErrProgressTooHigh)
				if _, ok := l.Item(1); !ok {
					t.Error("item removed despite lock")
				}
				return
			}
			if err != nil {
				t.Fatalf("RemoveItem() error: %v", err)
			}
			for v := range l.Items() {
				if v.ID == 1 {
					t.Error("Items() still yields removed item")
				}
			}
		})
	}
}

func TestItems_OrderedByID(t *testing.T) {
	t.Parallel()

	l := todo.NewList(defaultCategories())
	for _, id := range []todo.ID{5, 2, 9, 1} {
		if err := l.AddItem(id, "T", "D", "Study"); err != nil {
			t.Fatalf("AddItem(%d) error: %v", id, err)
		}
	}

	var got []todo.ID
	for v := range l.Items() {
		got = append(got, v.ID)
	}
	if want := []todo.ID{1, 2, 5, 9}; !slices.Equal(got, want) {
		t.Errorf("Items() order = %v, want %v", got, want)
	}
	if !slices.Equal(l.IDs(), got) {
		t.Errorf("IDs() = %v, want %v", l.IDs(), got)
	}
}

func TestItems_StopsEarly(t *testing.T) {
	t.Parallel()

	l := todo.NewList(defaultCategories())
	for _, id := range []todo.ID{1, 2, 3} {
		if err := l.AddItem(id, "T", "D", "Study"); err != nil {
			t.Fatalf("AddItem(%d) error: %v", id, err)
		}
	}

	count := 0
	for range l.Items() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iterations = %d, want 1", count)
	}
}

func TestScenario_ProgressionOverflow(t *testing.T) {
	t.Parallel()

	l := newTestList(t)
	t1 := t0
	t2 := t0.Add(24 * time.Hour)

	if err := l.RegisterProgression(1, t1, pct(60)); err != nil {
		t.Fatalf("RegisterProgression(t1, 60) error: %v", err)
	}
	requireKind(t, l.RegisterProgression(1, t2, pct(50)), domain.ErrProgressOverflow)

	v, _ := l.Item(1)
	if v.TotalProgress != pct(60) {
		t.Errorf("TotalProgress = %s, want 60", v.TotalProgress)
	}
	if v.IsCompleted {
		t.Error("IsCompleted = true, want false")
	}
}

func TestScenario_CompletedThenUpdate(t *testing.T) {
	t.Parallel()

	l := newTestList(t)
	if err := l.RegisterProgression(1, t0, pct(100)); err != nil {
		t.Fatalf("RegisterProgression(100) error: %v", err)
	}
	v, _ := l.Item(1)
	if !v.IsCompleted {
		t.Error("IsCompleted = false, want true")
	}
	requireKind(t, l.UpdateItem(1, "Changed"), domain.ErrProgressTooHigh)
}
