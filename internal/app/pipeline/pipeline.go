// Package pipeline runs application requests through a fixed chain of
// behaviors before they reach their handler.
//
// The default chain, outermost first:
//
//	Errors → Validation → Resilience → Performance → handler
//
// Requests describe themselves through [Request]. The resilience policy is
// an explicit tag on each request rather than something inferred from its
// type name.
//
// Sending a request:
//
//	item, err := pipeline.Send(ctx, p, GetItemQuery{ID: 3}, svc.getItem)
package pipeline

import (
	"context"
	"time"
)

// Policy selects the resilience policy a request runs under.
type Policy int

const (
	// PolicyNone runs the request without a pipeline-level policy.
	PolicyNone Policy = iota
	// PolicyCommand marks requests that change state.
	PolicyCommand
	// PolicyQuery marks read-only requests.
	PolicyQuery
)

func (p Policy) String() string {
	switch p {
	case PolicyCommand:
		return "command"
	case PolicyQuery:
		return "query"
	default:
		return "none"
	}
}

// Request is a command or query sent through the pipeline.
type Request interface {
	// Name identifies the request in logs and metrics.
	Name() string
	// Policy selects the resilience policy.
	Policy() Policy
}

// Validator is implemented by requests that can check their own fields.
// Validate returns a *domain.ValidationError describing every bad field.
type Validator interface {
	Validate(now time.Time) error
}

// Handler processes a single request.
type Handler func(ctx context.Context, req Request) (any, error)

// Behavior wraps a Handler with cross-cutting logic.
type Behavior func(next Handler) Handler

// Pipeline holds an ordered list of behaviors. The first behavior is the
// outermost. A Pipeline is immutable and safe for concurrent use.
type Pipeline struct {
	behaviors []Behavior
}

// New creates a pipeline from behaviors, outermost first.
func New(behaviors ...Behavior) *Pipeline {
	return &Pipeline{behaviors: behaviors}
}

// Wrap returns h wrapped in every behavior of the pipeline.
func (p *Pipeline) Wrap(h Handler) Handler {
	for i := len(p.behaviors) - 1; i >= 0; i-- {
		h = p.behaviors[i](h)
	}
	return h
}

// Send runs req through p and then through handle.
func Send[Req Request, Res any](
	ctx context.Context, p *Pipeline, req Req, handle func(context.Context, Req) (Res, error),
) (Res, error) {
	h := p.Wrap(func(ctx context.Context, _ Request) (any, error) {
		return handle(ctx, req)
	})

	out, err := h(ctx, req)
	if err != nil {
		var zero Res
		return zero, err
	}

	res, _ := out.(Res)
	return res, nil
}
