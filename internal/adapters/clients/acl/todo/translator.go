package todo

import (
	"time"

	domtodo "github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// ToItemView converts an API item to a domain view. Percentages are rounded
// to hundredths.
func ToItemView(dto *ItemDTO) domtodo.ItemView {
	return domtodo.ItemView{
		ID:            domtodo.ID(dto.ID),
		Title:         dto.Title,
		Description:   dto.Description,
		Category:      dto.Category,
		IsCompleted:   dto.IsCompleted,
		TotalProgress: domtodo.PercentFromFloat(dto.TotalProgress),
		Progressions:  ToProgressionViews(dto.Progressions),
	}
}

// ToItemViews converts API items in order. The result is never nil.
func ToItemViews(dtos []ItemDTO) []domtodo.ItemView {
	views := make([]domtodo.ItemView, len(dtos))
	for i := range dtos {
		views[i] = ToItemView(&dtos[i])
	}
	return views
}

// ToProgressionViews converts API progressions in order, normalizing times
// to UTC.
func ToProgressionViews(dtos []ProgressionDTO) []domtodo.ProgressionView {
	views := make([]domtodo.ProgressionView, len(dtos))
	for i, p := range dtos {
		views[i] = domtodo.ProgressionView{
			At:                 p.DateTime.UTC(),
			Percent:            domtodo.PercentFromFloat(p.Percent),
			AccumulatedPercent: domtodo.PercentFromFloat(p.AccumulatedPercent),
		}
	}
	return views
}

// ToRegisterProgressionRequest builds the progression body. A zero at is
// omitted so the server stamps the progression itself.
func ToRegisterProgressionRequest(at time.Time, percent float64) RegisterProgressionRequestDTO {
	req := RegisterProgressionRequestDTO{Percent: percent}
	if !at.IsZero() {
		utc := at.UTC()
		req.DateTime = &utc
	}
	return req
}
