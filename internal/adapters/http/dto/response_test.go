package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

func TestOK_DefaultMessage(t *testing.T) {
	t.Parallel()

	env := dto.OK([]string{"Work"}, "")
	assert.True(t, env.Success)
	assert.Equal(t, "Success", env.Message)
	assert.Equal(t, []string{}, env.Errors)

	env = dto.OK([]string{}, "Todo item updated successfully")
	assert.Equal(t, "Todo item updated successfully", env.Message)
}

func TestToItemResponse_JSONShape(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	view := todo.ItemView{
		ID:            3,
		Title:         "Read",
		Description:   "Chapter one",
		Category:      "Study",
		TotalProgress: todo.PercentFromFloat(62.5),
		Progressions: []todo.ProgressionView{
			{At: at, Percent: todo.PercentFromFloat(12.5), AccumulatedPercent: todo.PercentFromFloat(12.5)},
			{At: at.Add(time.Hour), Percent: todo.PercentFromFloat(50), AccumulatedPercent: todo.PercentFromFloat(62.5)},
		},
	}

	raw, err := json.Marshal(dto.ToItemResponse(view))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 3,
		"title": "Read",
		"description": "Chapter one",
		"category": "Study",
		"isCompleted": false,
		"totalProgress": 62.5,
		"progressions": [
			{"dateTime": "2026-03-01T09:30:00Z", "percent": 12.5, "accumulatedPercent": 12.5},
			{"dateTime": "2026-03-01T10:30:00Z", "percent": 50, "accumulatedPercent": 62.5}
		]
	}`, string(raw))
}

func TestToItemResponses_NeverNil(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(dto.ToItemResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	raw, err = json.Marshal(dto.ToItemResponse(todo.ItemView{ID: 1}).Progressions)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
