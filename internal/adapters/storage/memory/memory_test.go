package memory_test

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

func TestNew_SeedsCategories(t *testing.T) {
	t.Parallel()

	got, err := memory.New().Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error: %v", err)
	}
	want := []string{"Health", "Personal", "Study", "Work"}
	if !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestNew_CustomCategories(t *testing.T) {
	t.Parallel()

	got, _ := memory.New("b", "a", "b").Categories(context.Background())
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestBackend_TxWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := memory.New()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := b.WithinTx(ctx, func(tx storage.Tx) error {
		if err := tx.Insert(ctx, storage.ItemRecord{ID: 3, Title: "c", Description: "c", Category: "Work"}); err != nil {
			return err
		}
		if err := tx.Insert(ctx, storage.ItemRecord{ID: 1, Title: "a", Description: "a", Category: "Work"}); err != nil {
			return err
		}
		return tx.Update(ctx, storage.ItemRecord{
			ID: 3, Title: "c", Description: "changed", Category: "Work",
			Progressions: []storage.ProgressionRecord{{At: at, Percent: 2500}},
		})
	})
	if err != nil {
		t.Fatalf("WithinTx() error: %v", err)
	}

	items, _ := b.Items(ctx)
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Fatalf("Items() = %+v, want ids [1 3]", items)
	}
	if items[1].Description != "changed" || len(items[1].Progressions) != 1 {
		t.Errorf("Items()[1] = %+v, want updated record", items[1])
	}

	maxID, _ := b.MaxID(ctx)
	if maxID != 3 {
		t.Errorf("MaxID() = %d, want 3", maxID)
	}

	_ = b.WithinTx(ctx, func(tx storage.Tx) error {
		ids, _ := tx.StoredIDs(ctx)
		if !slices.Equal(ids, []todo.ID{1, 3}) {
			t.Errorf("StoredIDs() = %v, want [1 3]", ids)
		}
		return tx.Delete(ctx, 3)
	})

	maxID, _ = b.MaxID(ctx)
	if maxID != 1 {
		t.Errorf("MaxID() after delete = %d, want 1", maxID)
	}
}

func TestBackend_ItemsReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := memory.New()
	_ = b.WithinTx(ctx, func(tx storage.Tx) error {
		return tx.Insert(ctx, storage.ItemRecord{
			ID: 1, Title: "a", Description: "a", Category: "Work",
			Progressions: []storage.ProgressionRecord{{Percent: 1000}},
		})
	})

	items, _ := b.Items(ctx)
	items[0].Progressions[0].Percent = 9999

	again, _ := b.Items(ctx)
	if again[0].Progressions[0].Percent != 1000 {
		t.Errorf("stored percent = %d, want 1000", again[0].Progressions[0].Percent)
	}
}

func TestBackend_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := memory.New()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			_ = b.WithinTx(ctx, func(tx storage.Tx) error {
				return tx.Insert(ctx, storage.ItemRecord{ID: todo.ID(i + 1), Title: "t", Description: "d", Category: "Work"})
			})
			_, _ = b.Items(ctx)
		})
	}
	wg.Wait()

	maxID, _ := b.MaxID(ctx)
	if maxID != 20 {
		t.Errorf("MaxID() = %d, want 20", maxID)
	}
}
