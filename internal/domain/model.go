package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Order statuses this system reads and writes.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
)

// GracePeriod is how long an order may sit in "new" before it is
// considered stale and eligible for the status transition.
const GracePeriod = 2 * time.Hour

// WindowTimeLayout is the timestamp format the storefront API expects
// in created_at_from / created_at_to query parameters.
const WindowTimeLayout = "2006-01-02T15:04:05"

// Store identifies one storefront tenant. APIKey is resolved from the
// environment variable named by APIKeyEnv at load time and never
// serialized.
type Store struct {
	Subdomain string `yaml:"subdomain" json:"subdomain"`
	APIKeyEnv string `yaml:"api_key_env" json:"api_key_env"`
	APIKey    string `yaml:"-" json:"-"`
}

// Configured reports whether the store carries everything a sweep
// needs. Stores failing this check are skipped, not fatal.
func (s Store) Configured() bool {
	return s.Subdomain != "" && s.APIKey != ""
}

// OrderID is an opaque order identifier. The API serves it as either
// a JSON string or a JSON number depending on the store version, so
// both forms decode into the same string representation.
type OrderID string

func (id *OrderID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("order_id is neither string nor number: %s", data)
	}
	*id = OrderID(n.String())
	return nil
}

func (id OrderID) String() string { return string(id) }

// Order is the slice of the remote order payload this system acts on.
// Orders are transient: fetched fresh each run, never stored.
type Order struct {
	ID        OrderID `json:"order_id"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// TimeWindow bounds a fetch query on order creation time.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// FetchWindow computes the listing window for a sweep at instant now:
// effectively unbounded in the past, capped at now minus the grace
// period so only orders old enough to be stale come back.
func FetchWindow(now time.Time) TimeWindow {
	return TimeWindow{
		From: time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   now.UTC().Add(-GracePeriod),
	}
}

// FromParam returns the window lower bound in API wire format.
func (w TimeWindow) FromParam() string { return w.From.Format(WindowTimeLayout) }

// ToParam returns the window upper bound in API wire format.
func (w TimeWindow) ToParam() string { return w.To.Format(WindowTimeLayout) }

// StoreReport accumulates per-store outcomes for one sweep pass.
type StoreReport struct {
	Subdomain    string `json:"subdomain"`
	Skipped      bool   `json:"skipped"`
	FetchFailed  bool   `json:"fetch_failed"`
	Fetched      int    `json:"fetched"`
	Updated      int    `json:"updated"`
	UpdateFailed int    `json:"update_failed"`
	Ineligible   int    `json:"ineligible"`
	Invalid      int    `json:"invalid"`
}

// RunReport is the outcome of one full pass over all configured
// stores. It exists for operator output only; the process exits zero
// regardless of how many individual operations failed.
type RunReport struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	DryRun     bool          `json:"dry_run"`
	Stores     []StoreReport `json:"stores"`
}

// TotalUpdated sums successful updates across all stores.
func (r *RunReport) TotalUpdated() int {
	var n int
	for _, s := range r.Stores {
		n += s.Updated
	}
	return n
}
