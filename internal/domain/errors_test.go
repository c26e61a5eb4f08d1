package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

func TestValidationError_SortedMessage(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title":    "is required",
		"category": "is required",
	}}

	want := "validation error: category: is required; title: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestRuleError_MatchesKindAndCategory(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving: %w", domain.NewRuleError(domain.ErrProgressTooHigh, "progress %d%%", 60))

	if !errors.Is(err, domain.ErrProgressTooHigh) {
		t.Error("errors.Is(err, ErrProgressTooHigh) = false, want true")
	}
	if !errors.Is(err, domain.ErrBusinessRule) {
		t.Error("errors.Is(err, ErrBusinessRule) = false, want true")
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = true, want false")
	}

	var rerr *domain.RuleError
	if !errors.As(err, &rerr) {
		t.Fatal("errors.As(err, *RuleError) = false")
	}
	if rerr.Message != "progress 60%" {
		t.Errorf("Message = %q, want %q", rerr.Message, "progress 60%")
	}
}

func TestItemNotFoundWrapsNotFound(t *testing.T) {
	t.Parallel()

	err := domain.NewRuleError(domain.ErrItemNotFound, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
}

func TestIsClientError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "validation", err: &domain.ValidationError{Fields: map[string]string{"x": "bad"}}, want: true},
		{name: "rule", err: domain.NewRuleError(domain.ErrInvalidCategory, "bad"), want: true},
		{name: "unavailable", err: fmt.Errorf("db: %w", domain.ErrUnavailable), want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.IsClientError(tt.err); got != tt.want {
				t.Errorf("IsClientError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
