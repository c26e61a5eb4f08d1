package todo

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// CategorySet is the immutable set of categories an item may be filed under.
// It is rebuilt from storage every time a List is loaded.
type CategorySet struct {
	names map[string]struct{}
}

// NewCategorySet builds a set from names, ignoring blanks and duplicates.
func NewCategorySet(names ...string) CategorySet {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return CategorySet{names: set}
}

// Contains reports whether name is a valid category. Matching is exact and
// case-sensitive.
func (s CategorySet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Names returns the categories in alphabetical order.
func (s CategorySet) Names() []string {
	return slices.Sorted(maps.Keys(s.names))
}

// Len returns the number of categories.
func (s CategorySet) Len() int { return len(s.names) }

// List is the todo list aggregate, the only mutation boundary for items.
// A List is rebuilt from storage for every command and is not safe for
// concurrent use.
type List struct {
	categories CategorySet
	items      map[ID]*Item
}

// NewList returns an empty list that accepts the given categories.
func NewList(categories CategorySet) *List {
	return &List{
		categories: categories,
		items:      make(map[ID]*Item),
	}
}

// Categories returns the category set the list validates against.
func (l *List) Categories() CategorySet { return l.categories }

// LoadExisting inserts an already persisted item. The category is not
// checked again because the item was accepted when it was first added.
func (l *List) LoadExisting(item *Item) error {
	if _, exists := l.items[item.id]; exists {
		return domain.NewRuleError(domain.ErrDuplicateItem, "Todo item with ID %d already exists", item.id)
	}
	l.items[item.id] = item
	return nil
}

// AddItem validates the category and creates a new item.
func (l *List) AddItem(id ID, title, description, category string) error {
	if !l.categories.Contains(category) {
		return domain.NewRuleError(domain.ErrInvalidCategory,
			"Invalid category %q, valid categories: %s", category, strings.Join(l.categories.Names(), ", "))
	}
	if _, exists := l.items[id]; exists {
		return domain.NewRuleError(domain.ErrDuplicateItem, "Todo item with ID %d already exists", id)
	}

	item, err := NewItem(id, title, description, category)
	if err != nil {
		return err
	}
	l.items[id] = item
	return nil
}

// UpdateItem replaces the description of an existing item.
func (l *List) UpdateItem(id ID, description string) error {
	item, err := l.find(id)
	if err != nil {
		return err
	}
	return item.Update(description)
}

// RemoveItem deletes an item whose progress is at most 50 percent.
func (l *List) RemoveItem(id ID) error {
	item, err := l.find(id)
	if err != nil {
		return err
	}
	if current := item.CurrentProgress(); current > EditLockPercent {
		return domain.NewRuleError(domain.ErrProgressTooHigh,
			"Cannot remove todo item %d: progress %s%% is above %s%%", id, current, EditLockPercent)
	}
	delete(l.items, id)
	return nil
}

// RegisterProgression records progress on an existing item.
func (l *List) RegisterProgression(id ID, at time.Time, percent Percent) error {
	item, err := l.find(id)
	if err != nil {
		return err
	}
	return item.AddProgression(at, percent)
}

// Items yields a view of every item in id order. Views are built lazily as
// the sequence is consumed.
func (l *List) Items() iter.Seq[ItemView] {
	return func(yield func(ItemView) bool) {
		for _, id := range l.IDs() {
			if !yield(l.items[id].View()) {
				return
			}
		}
	}
}

// Item returns the view of a single item.
func (l *List) Item(id ID) (ItemView, bool) {
	item, ok := l.items[id]
	if !ok {
		return ItemView{}, false
	}
	return item.View(), true
}

// IDs returns all item identifiers in ascending order.
func (l *List) IDs() []ID {
	return slices.Sorted(maps.Keys(l.items))
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

func (l *List) find(id ID) (*Item, error) {
	item, ok := l.items[id]
	if !ok {
		return nil, NotFound(id)
	}
	return item, nil
}

// NotFound returns the business rule error reported for a missing item.
func NotFound(id ID) *domain.RuleError {
	return domain.NewRuleError(domain.ErrItemNotFound, "Todo item with ID %d not found", id)
}
