// Package todo holds the todo list aggregate: the List consistency boundary,
// the Item entity with its progression history, and the value objects they
// are built from.
package todo

import (
	"math"
	"strconv"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// ID identifies a todo item. Valid IDs are positive.
type ID int64

// NewID validates v and returns it as an ID.
func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, domain.NewRuleError(domain.ErrInvalidID, "Todo item ID must be positive, got %d", v)
	}
	return ID(v), nil
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 { return int64(id) }

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// Percent is a completion percentage in hundredths of a percent, mirroring
// the numeric(5,2) storage column so sums stay exact.
type Percent int64

const percentScale = 100

// Percentage bounds used by the item invariants.
const (
	MaxPercent      Percent = 100 * percentScale
	EditLockPercent Percent = 50 * percentScale
)

// PercentFromFloat converts a percentage such as 12.5 into a Percent,
// rounding to two decimals.
func PercentFromFloat(v float64) Percent {
	return Percent(math.Round(v * percentScale))
}

// HasTwoDecimalsAtMost reports whether v carries no more than two decimal
// places.
func HasTwoDecimalsAtMost(v float64) bool {
	const epsilon = 1e-9
	scaled := v * percentScale
	return math.Abs(scaled-math.Round(scaled)) < epsilon
}

// Float64 returns the percentage as a float, e.g. 12.5.
func (p Percent) Float64() float64 { return float64(p) / percentScale }

func (p Percent) String() string { return strconv.FormatFloat(p.Float64(), 'f', -1, 64) }

// Progression is an immutable, timestamped contribution to an item's
// completion.
type Progression struct {
	at      time.Time
	percent Percent
}

// NewProgression validates percent and returns a Progression. Times are
// normalized to UTC with microsecond precision, the resolution of the
// storage layer.
func NewProgression(at time.Time, percent Percent) (Progression, error) {
	if percent <= 0 || percent > MaxPercent {
		return Progression{}, domain.NewRuleError(domain.ErrInvalidPercent,
			"Progression percent must be greater than 0 and at most 100, got %s", percent)
	}
	return Progression{at: normalizeTime(at), percent: percent}, nil
}

// At returns when the progress was made.
func (p Progression) At() time.Time { return p.at }

// Percent returns the contributed percentage.
func (p Progression) Percent() Percent { return p.percent }

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
