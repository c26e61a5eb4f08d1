package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

const (
	listBarWidth    = 50
	previewBarWidth = 20
)

func writeSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "✓ "+format+"\n", args...)
}

func writeInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "ℹ "+format+"\n", args...)
}

// writeItem prints one item and its progression history:
//
//	1) Title - Description (Category) Completed:false
//	2026-03-01 09:30:00 - 25%	|OOOOOOOOOOOO                                      |
func writeItem(w io.Writer, item todo.ItemView) {
	fmt.Fprintf(w, "%d) %s - %s (%s) Completed:%t\n",
		item.ID.Int64(), item.Title, item.Description, item.Category, item.IsCompleted)

	for _, p := range item.Progressions {
		fmt.Fprintf(w, "%s - %s%%\t%s\n",
			p.At.Format(time.DateTime), p.AccumulatedPercent, listBar(p.AccumulatedPercent))
	}
	if len(item.Progressions) > 0 {
		fmt.Fprintln(w)
	}
}

// listBar renders progress as a fixed-width bar of 'O' marks.
func listBar(p todo.Percent) string {
	filled := filledCells(p, listBarWidth)
	return "|" + strings.Repeat("O", filled) + strings.Repeat(" ", listBarWidth-filled) + "|"
}

// previewBar renders a single percentage, e.g. "25% |█████░░░░░░░░░░░░░░░|".
func previewBar(p todo.Percent) string {
	filled := filledCells(p, previewBarWidth)
	return p.String() + "% |" + strings.Repeat("█", filled) + strings.Repeat("░", previewBarWidth-filled) + "|"
}

func filledCells(p todo.Percent, width int) int {
	n := int(p * todo.Percent(width) / todo.MaxPercent)
	return min(max(n, 0), width)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo item id %q: must be an integer", arg)
	}
	return id, nil
}
