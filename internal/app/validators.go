package app

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// Field messages.
const (
	msgIDPositive        = "must be greater than 0"
	msgForbiddenChars    = "contains forbidden characters"
	msgDangerousPattern  = "contains dangerous characters or patterns"
	msgSuspiciousPattern = "contains suspicious patterns"
	msgTimeInFuture      = "cannot be more than 1 hour in the future"
	msgTimeTooOld        = "cannot be more than 1 year in the past"
	msgPercentRange      = "must be between 0 and 100"
	msgPercentPrecision  = "cannot have more than 2 decimal places"
)

// Progression time window around now.
const (
	futureTolerance = time.Hour
	pastYears       = 1
)

var categoryPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

var sqlPatterns = []string{
	"drop table",
	"delete from",
	"insert into",
	"update set",
	"exec(",
	"execute(",
}

// textRule bounds a free-text field. Bounds count runes, not bytes.
type textRule struct {
	min, max int
	// reject returns a message when the value is unacceptable.
	reject []func(string) (string, bool)
}

var (
	titleRules = textRule{min: 3, max: 100, reject: []func(string) (string, bool){
		forbidChars("<>&"),
	}}
	addDescriptionRules = textRule{min: 3, max: 500, reject: []func(string) (string, bool){
		forbidSubstrings(msgDangerousPattern, "<script", "javascript:"),
	}}
	updateDescriptionRules = textRule{min: 3, max: 500, reject: []func(string) (string, bool){
		forbidSubstrings(msgDangerousPattern, "<script", "javascript:", "onerror="),
		forbidSubstrings(msgSuspiciousPattern, sqlPatterns...),
	}}
	categoryRules = textRule{max: 50, reject: []func(string) (string, bool){
		func(s string) (string, bool) {
			return msgForbiddenChars, !categoryPattern.MatchString(s)
		},
	}}
)

func forbidChars(chars string) func(string) (string, bool) {
	return func(s string) (string, bool) {
		return msgForbiddenChars, strings.ContainsAny(s, chars)
	}
}

// forbidSubstrings matches case-insensitively.
func forbidSubstrings(msg string, patterns ...string) func(string) (string, bool) {
	return func(s string) (string, bool) {
		lower := strings.ToLower(s)
		for _, p := range patterns {
			if strings.Contains(lower, p) {
				return msg, true
			}
		}
		return "", false
	}
}

// fieldErrors collects the first failure per field.
type fieldErrors map[string]string

func newFieldErrors() fieldErrors { return make(fieldErrors) }

func (f fieldErrors) add(field, msg string) {
	if _, seen := f[field]; !seen {
		f[field] = msg
	}
}

func (f fieldErrors) check(field string, ok bool, msg string) {
	if !ok {
		f.add(field, msg)
	}
}

func (f fieldErrors) text(field, value string, rule textRule) {
	if strings.TrimSpace(value) == "" {
		f.add(field, domain.MsgRequired)
		return
	}

	n := utf8.RuneCountInString(value)
	switch {
	case rule.min > 0 && n < rule.min:
		f.add(field, fmt.Sprintf("must be at least %d characters", rule.min))
		return
	case rule.max > 0 && n > rule.max:
		f.add(field, fmt.Sprintf("cannot exceed %d characters", rule.max))
		return
	}

	for _, reject := range rule.reject {
		if msg, bad := reject(value); bad {
			f.add(field, msg)
			return
		}
	}
}

func (f fieldErrors) progressionTime(field string, at, now time.Time) {
	switch {
	case at.IsZero():
		f.add(field, domain.MsgRequired)
	case at.After(now.Add(futureTolerance)):
		f.add(field, msgTimeInFuture)
	case at.Before(now.AddDate(-pastYears, 0, 0)):
		f.add(field, msgTimeTooOld)
	}
}

func (f fieldErrors) percent(field string, v float64) {
	switch {
	case v < 0 || v > 100:
		f.add(field, msgPercentRange)
	case !todo.HasTwoDecimalsAtMost(v):
		f.add(field, msgPercentPrecision)
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}
