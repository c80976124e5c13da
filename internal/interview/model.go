// Package interview contains the scheduling logic of the interview service.
//
// ScheduleInterviews and the reschedule stream are destructive rebuilds: both
// clear every previously persisted interview before writing new ones. Callers
// and tests depend on that, so keep them total rather than incremental.
package interview

import "context"

// Interview is one scheduled interview slot.
type Interview struct {
	ID            string
	CandidateName string
	Date          string // YYYY-MM-DD
	Time          string // HH:mm
}

// Store is the persistence surface the service needs. The filtered candidate
// set is read in persistence iteration order; interviews live in their own
// table.
type Store interface {
	// ClearInterviews empties the interview set.
	ClearInterviews(ctx context.Context) error
	// ListFilteredNames returns the names of the current filtered set in
	// insertion order.
	ListFilteredNames(ctx context.Context) ([]string, error)
	// InsertInterview persists a new slot.
	InsertInterview(ctx context.Context, iv Interview) (Interview, error)
	// GetInterview returns faults.ErrNotFound when absent.
	GetInterview(ctx context.Context, id string) (Interview, error)
	// ListByDate returns every interview on the given date.
	ListByDate(ctx context.Context, date string) ([]Interview, error)
	// UpdateInterview moves a slot; faults.ErrNotFound when absent.
	UpdateInterview(ctx context.Context, id, date, tm string) (Interview, error)
	// DeleteInterview removes a slot; faults.ErrNotFound when absent.
	DeleteInterview(ctx context.Context, id string) (Interview, error)
}
