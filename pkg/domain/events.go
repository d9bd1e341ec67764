package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRuleApplied  EventType = "rule_applied"
	EventRuleRejected EventType = "rule_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RuleEvent describes a move handed to the engine.
type RuleEvent struct {
	EventBase
	Rule    string `json:"rule"`
	Path    []int  `json:"path"`
	Members []int  `json:"members,omitempty"`
	Before  string `json:"before"`
	// After is empty for rejected moves.
	After  string `json:"after,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnApply  func(context.Context, *RuleEvent)
	OnReject func(context.Context, *RuleEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnApply:  chain(h.OnApply, other.OnApply),
		OnReject: chain(h.OnReject, other.OnReject),
	}
}

func chain(a, b func(context.Context, *RuleEvent)) func(context.Context, *RuleEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, evt *RuleEvent) {
		a(ctx, evt)
		b(ctx, evt)
	}
}
