package domain

import "context"

// OrderGateway performs the two remote operations against one store's
// backend. Implementations log request/response traffic; callers
// decide what a returned error means for the run.
type OrderGateway interface {
	// ListOrders fetches orders created inside the window. A nil or
	// empty slice with a nil error means "no orders this round".
	ListOrders(ctx context.Context, store Store, window TimeWindow) ([]Order, error)

	// MarkInProgress transitions one order's status to in_progress.
	MarkInProgress(ctx context.Context, store Store, id OrderID) error
}

// Logger mirrors run events to the persistent log and stdout. A
// failure to log is never surfaced to the caller.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
