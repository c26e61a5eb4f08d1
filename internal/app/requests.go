package app

import (
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/app/pipeline"
)

// Commands.

// AddItemCommand creates an item under a caller-chosen id.
type AddItemCommand struct {
	ID          int64
	Title       string
	Description string
	Category    string
}

func (AddItemCommand) Name() string { return "AddItem" }
func (AddItemCommand) Policy() pipeline.Policy { return pipeline.PolicyCommand }

// Validate checks the id, title, description and category.
func (c AddItemCommand) Validate(time.Time) error {
	v := newFieldErrors()
	v.check("id", c.ID > 0, msgIDPositive)
	v.text("title", c.Title, titleRules)
	v.text("description", c.Description, addDescriptionRules)
	v.text("category", c.Category, categoryRules)
	return v.err()
}

// UpdateItemCommand replaces an item's description.
type UpdateItemCommand struct {
	ID          int64
	Description string
}

func (UpdateItemCommand) Name() string { return "UpdateItem" }
func (UpdateItemCommand) Policy() pipeline.Policy { return pipeline.PolicyCommand }

// Validate checks the id and the new description.
func (c UpdateItemCommand) Validate(time.Time) error {
	v := newFieldErrors()
	v.check("id", c.ID > 0, msgIDPositive)
	v.text("description", c.Description, updateDescriptionRules)
	return v.err()
}

// RemoveItemCommand deletes an item.
type RemoveItemCommand struct {
	ID int64
}

func (RemoveItemCommand) Name() string { return "RemoveItem" }
func (RemoveItemCommand) Policy() pipeline.Policy { return pipeline.PolicyCommand }

// Validate checks the id.
func (c RemoveItemCommand) Validate(time.Time) error {
	v := newFieldErrors()
	v.check("id", c.ID > 0, msgIDPositive)
	return v.err()
}

// RegisterProgressionCommand records progress on an item.
type RegisterProgressionCommand struct {
	ID      int64
	At      time.Time
	Percent float64
}

func (RegisterProgressionCommand) Name() string { return "RegisterProgression" }
func (RegisterProgressionCommand) Policy() pipeline.Policy { return pipeline.PolicyCommand }

// Validate checks the id, that At lies within a year back and an hour ahead
// of now, and that Percent is within 0 to 100 with at most two decimals.
// Zero passes here and is rejected by the item itself.
func (c RegisterProgressionCommand) Validate(now time.Time) error {
	v := newFieldErrors()
	v.check("id", c.ID > 0, msgIDPositive)
	v.progressionTime("dateTime", c.At, now)
	v.percent("percent", c.Percent)
	return v.err()
}

// Queries.

// ListItemsQuery returns every item.
type ListItemsQuery struct{}

func (ListItemsQuery) Name() string { return "ListItems" }
func (ListItemsQuery) Policy() pipeline.Policy { return pipeline.PolicyQuery }

// GetItemQuery returns one item.
type GetItemQuery struct {
	ID int64
}

func (GetItemQuery) Name() string { return "GetItem" }
func (GetItemQuery) Policy() pipeline.Policy { return pipeline.PolicyQuery }

// ListProgressionsQuery returns the progressions of one item.
type ListProgressionsQuery struct {
	ID int64
}

func (ListProgressionsQuery) Name() string { return "ListProgressions" }
func (ListProgressionsQuery) Policy() pipeline.Policy { return pipeline.PolicyQuery }

// CategoriesQuery returns the valid category names.
type CategoriesQuery struct{}

func (CategoriesQuery) Name() string { return "Categories" }
func (CategoriesQuery) Policy() pipeline.Policy { return pipeline.PolicyQuery }

// NextIDQuery returns the id for the next created item. It is a single
// repository read already covered by the database policy.
type NextIDQuery struct{}

func (NextIDQuery) Name() string { return "NextID" }
func (NextIDQuery) Policy() pipeline.Policy { return pipeline.PolicyNone }
