package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")

	// ErrBusinessRule matches every *RuleError regardless of its kind.
	ErrBusinessRule = errors.New("business rule violation")
)

// Business rule kinds carried by *RuleError.
var (
	ErrInvalidID        = errors.New("invalid todo item id")
	ErrItemNotFound     = fmt.Errorf("todo item %w", ErrNotFound)
	ErrDuplicateItem    = errors.New("duplicate todo item")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrProgressTooHigh  = errors.New("progress too high")
	ErrProgressionDate  = errors.New("progression date not increasing")
	ErrInvalidPercent   = errors.New("invalid progression percent")
	ErrProgressOverflow = errors.New("progress exceeds 100 percent")
)

// MsgRequired is the field message used when a required value is blank.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.SortedFields() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SortedFields returns the failing field names in lexical order.
func (e *ValidationError) SortedFields() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// RuleError reports a violated business rule. Message is safe to show to
// API callers. errors.Is matches both ErrBusinessRule and Kind.
type RuleError struct {
	Kind    error
	Message string
}

// NewRuleError builds a *RuleError with a formatted message.
func NewRuleError(kind error, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() []error {
	return []error{ErrBusinessRule, e.Kind}
}

// IsClientError reports whether err is caused by the caller (validation or
// business rule) rather than by infrastructure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrBusinessRule)
}
