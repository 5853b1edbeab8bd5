// Package application orchestrates sweep passes over the configured
// store roster.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/ordersweep/ordersweep/internal/clock"
	"github.com/ordersweep/ordersweep/internal/domain"
)

// SweepService runs one pass: iterate stores, fetch each store's
// orders, evaluate eligibility, update stale orders. Errors are
// contained at the smallest enclosing unit (order > store > run) and
// never abort sibling units.
type SweepService struct {
	gateway domain.OrderGateway
	log     domain.Logger
	clock   clock.Clock
}

func NewSweepService(gateway domain.OrderGateway, log domain.Logger, clk clock.Clock) *SweepService {
	return &SweepService{
		gateway: gateway,
		log:     log,
		clock:   clk,
	}
}

// RunOptions tunes one pass.
type RunOptions struct {
	// DryRun evaluates and logs but sends no update calls.
	DryRun bool
}

// Run performs one full pass over the roster. It never returns an
// error: partial failures are logged and counted in the report, and
// the process exits normally regardless.
func (s *SweepService) Run(ctx context.Context, cfg domain.SweepConfig, opts RunOptions) *domain.RunReport {
	report := &domain.RunReport{
		StartedAt: s.clock.Now(),
		DryRun:    opts.DryRun,
	}

	for _, store := range cfg.Stores {
		if !store.Configured() {
			s.log.Error(fmt.Sprintf("Missing required configuration for store: subdomain=%q api_key_env=%q", store.Subdomain, store.APIKeyEnv))
			report.Stores = append(report.Stores, domain.StoreReport{Subdomain: store.Subdomain, Skipped: true})
			continue
		}

		s.log.Info(fmt.Sprintf("Processing orders for %s...", store.Subdomain))
		report.Stores = append(report.Stores, s.processStore(ctx, store, opts))
	}

	report.FinishedAt = s.clock.Now()
	return report
}

// processStore handles one store: compute the window, fetch, evaluate
// every order, update the eligible ones. A failure on one order never
// aborts its siblings; a fetch failure is equivalent to "no orders
// this round".
func (s *SweepService) processStore(ctx context.Context, store domain.Store, opts RunOptions) domain.StoreReport {
	report := domain.StoreReport{Subdomain: store.Subdomain}

	now := s.clock.Now()
	window := domain.FetchWindow(now)
	s.log.Info(fmt.Sprintf("Fetching orders for %s from %s to %s.", store.Subdomain, window.FromParam(), window.ToParam()))

	orders, err := s.gateway.ListOrders(ctx, store, window)
	if err != nil {
		s.log.Error(fmt.Sprintf("Error fetching orders for %s: %v", store.Subdomain, err))
		report.FetchFailed = true
	}
	if len(orders) == 0 {
		s.log.Info(fmt.Sprintf("No orders found for %s.", store.Subdomain))
		return report
	}
	report.Fetched = len(orders)

	for _, order := range orders {
		s.processOrder(ctx, store, order, now, opts, &report)
	}
	return report
}

func (s *SweepService) processOrder(ctx context.Context, store domain.Store, order domain.Order, now time.Time, opts RunOptions, report *domain.StoreReport) {
	ev := domain.Evaluate(order, now)
	switch ev.Decision {
	case domain.DecisionMissingFields:
		s.log.Warn(fmt.Sprintf("Skipping invalid order: order_id=%q status=%q created_at=%q", order.ID, order.Status, order.CreatedAt))
		report.Invalid++

	case domain.DecisionBadTimestamp:
		s.log.Error(fmt.Sprintf("Error parsing 'created_at' for order %s: %v. Raw value: %s", order.ID, ev.Err, order.CreatedAt))
		report.Invalid++

	case domain.DecisionIneligible:
		s.log.Info(fmt.Sprintf("Processing order %s with status '%s'...", order.ID, order.Status))
		s.log.Info(fmt.Sprintf("Order %s does not meet update criteria.", order.ID))
		report.Ineligible++

	case domain.DecisionUpdate:
		s.log.Info(fmt.Sprintf("Processing order %s with status '%s'...", order.ID, order.Status))
		s.log.Info(fmt.Sprintf("Order %s qualifies for update. Initiating update process...", order.ID))
		if opts.DryRun {
			s.log.Info(fmt.Sprintf("Dry run: skipping update for order %s on %s.", order.ID, store.Subdomain))
			report.Updated++
			return
		}
		if err := s.gateway.MarkInProgress(ctx, store, order.ID); err != nil {
			s.log.Error(fmt.Sprintf("Error updating order %s on %s: %v", order.ID, store.Subdomain, err))
			report.UpdateFailed++
			return
		}
		s.log.Info(fmt.Sprintf("Order %s updated to 'in_progress' on %s.", order.ID, store.Subdomain))
		report.Updated++
	}
}
