package domain

import (
	"fmt"
	"strings"
	"time"
)

// Decision classifies what the sweep should do with one fetched order.
type Decision int

const (
	// DecisionUpdate: order is stale and should transition to in_progress.
	DecisionUpdate Decision = iota
	// DecisionIneligible: order is present and well-formed but does not
	// meet the status-and-age predicate.
	DecisionIneligible
	// DecisionMissingFields: order lacks order_id or created_at.
	DecisionMissingFields
	// DecisionBadTimestamp: created_at could not be parsed.
	DecisionBadTimestamp
)

// Evaluation is the outcome of evaluating one order at an instant.
type Evaluation struct {
	Decision  Decision
	CreatedAt time.Time
	Err       error
}

// Evaluate applies the eligibility predicate to one order at instant
// now. An order qualifies for the update call when its status is
// "new" and it was created more than GracePeriod before now. Orders
// with missing required fields or an unparseable created_at are
// classified for skipping, never for update.
func Evaluate(o Order, now time.Time) Evaluation {
	if o.ID == "" || o.CreatedAt == "" {
		return Evaluation{Decision: DecisionMissingFields}
	}

	createdAt, err := ParseCreatedAt(o.CreatedAt)
	if err != nil {
		return Evaluation{Decision: DecisionBadTimestamp, Err: err}
	}

	if o.Status == StatusNew && now.UTC().Sub(createdAt) > GracePeriod {
		return Evaluation{Decision: DecisionUpdate, CreatedAt: createdAt}
	}
	return Evaluation{Decision: DecisionIneligible, CreatedAt: createdAt}
}

// ParseCreatedAt parses an order creation timestamp. A trailing Zulu
// marker is normalized to an explicit +00:00 offset first; timestamps
// without any offset are taken as UTC. The result is always UTC.
func ParseCreatedAt(raw string) (time.Time, error) {
	normalized := raw
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	if t, err := time.Parse(time.RFC3339, normalized); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(WindowTimeLayout, normalized); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparseable created_at %q", raw)
}
