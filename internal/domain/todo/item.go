package todo

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// Item is a todo entry with an ordered progression history. Progressions are
// kept in strictly increasing time order, so insertion order is
// chronological.
type Item struct {
	id           ID
	title        string
	description  string
	category     string
	progressions []Progression
}

// NewItem creates an item with no progressions. It fails with a
// *domain.ValidationError when title, description or category is blank.
func NewItem(id ID, title, description, category string) (*Item, error) {
	if id <= 0 {
		return nil, domain.NewRuleError(domain.ErrInvalidID, "Todo item ID must be positive, got %d", id)
	}

	fields := make(map[string]string)
	if strings.TrimSpace(title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if strings.TrimSpace(category) == "" {
		fields["category"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Item{
		id:          id,
		title:       title,
		description: description,
		category:    category,
	}, nil
}

// ID returns the item identifier.
func (i *Item) ID() ID { return i.id }

// Title returns the item title.
func (i *Item) Title() string { return i.title }

// Description returns the current description.
func (i *Item) Description() string { return i.description }

// Category returns the item category.
func (i *Item) Category() string { return i.category }

// Progressions returns a copy of the progression history in time order.
func (i *Item) Progressions() []Progression { return slices.Clone(i.progressions) }

// CurrentProgress returns the sum of all progression percents.
func (i *Item) CurrentProgress() Percent {
	var total Percent
	for _, p := range i.progressions {
		total += p.percent
	}
	return total
}

// IsCompleted reports whether the item reached 100 percent.
func (i *Item) IsCompleted() bool {
	return i.CurrentProgress() >= MaxPercent
}

// Update replaces the description. Items past 50 percent are locked.
func (i *Item) Update(description string) error {
	if current := i.CurrentProgress(); current > EditLockPercent {
		return domain.NewRuleError(domain.ErrProgressTooHigh,
			"Cannot update todo item %d: progress %s%% is above %s%%", i.id, current, EditLockPercent)
	}
	if strings.TrimSpace(description) == "" {
		return &domain.ValidationError{Fields: map[string]string{"description": domain.MsgRequired}}
	}
	i.description = description
	return nil
}

// AddProgression appends a progression. The time must be strictly after the
// latest recorded progression and the running total must stay at or below
// 100 percent. On failure the item is unchanged.
func (i *Item) AddProgression(at time.Time, percent Percent) error {
	at = normalizeTime(at)

	if n := len(i.progressions); n > 0 {
		latest := i.progressions[n-1].at
		if !at.After(latest) {
			return domain.NewRuleError(domain.ErrProgressionDate,
				"Progression date %s must be after the latest progression date %s",
				at.Format(time.RFC3339Nano), latest.Format(time.RFC3339Nano))
		}
	}

	p, err := NewProgression(at, percent)
	if err != nil {
		return err
	}

	current := i.CurrentProgress()
	if current+percent > MaxPercent {
		return domain.NewRuleError(domain.ErrProgressOverflow,
			"Total progress cannot exceed 100%%: current %s%%, attempted to add %s%%", current, percent)
	}

	i.progressions = append(i.progressions, p)
	return nil
}

// View projects the item into a read-only ItemView.
func (i *Item) View() ItemView {
	views := make([]ProgressionView, 0, len(i.progressions))
	var accumulated Percent
	for _, p := range i.progressions {
		accumulated += p.percent
		views = append(views, ProgressionView{
			At:                 p.at,
			Percent:            p.percent,
			AccumulatedPercent: accumulated,
		})
	}

	return ItemView{
		ID:            i.id,
		Title:         i.title,
		Description:   i.description,
		Category:      i.category,
		IsCompleted:   accumulated >= MaxPercent,
		TotalProgress: accumulated,
		Progressions:  views,
	}
}

// ItemView is a read-only projection of an Item.
type ItemView struct {
	ID            ID
	Title         string
	Description   string
	Category      string
	IsCompleted   bool
	TotalProgress Percent
	Progressions  []ProgressionView
}

// ProgressionView is a progression with the running total up to and
// including it.
type ProgressionView struct {
	At                 time.Time
	Percent            Percent
	AccumulatedPercent Percent
}
