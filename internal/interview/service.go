package interview

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// ErrDateExhausted reports that every assignable hour of a date is taken
// within the current reschedule session.
var ErrDateExhausted = errors.New("no free hours left on date")

// Service encapsulates the interview scheduling logic.
type Service struct {
	store Store
	pub   *events.Publisher
	log   logger.Logger
	// pick selects an index in [0, n); swapped out in tests.
	pick func(n int) int
}

// NewService returns a configured Service.
func NewService(store Store, pub *events.Publisher, log logger.Logger) *Service {
	return &Service{store: store, pub: pub, log: log, pick: rand.Intn}
}

// Schedule rebuilds the whole interview set from the current filtered
// candidate pool, laying candidates into consecutive one-hour slots starting
// at 09:00 on date. Re-running with the same inputs reproduces the same
// schedule; a different filtered set replaces the schedule entirely.
func (s *Service) Schedule(ctx context.Context, date string) ([]Interview, error) {
	start, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, faults.Validation("date", "must be YYYY-MM-DD")
	}

	if err := s.store.ClearInterviews(ctx); err != nil {
		return nil, fmt.Errorf("clear interviews: %w", err)
	}

	names, err := s.store.ListFilteredNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list filtered candidates: %w", err)
	}

	slots := planSlots(start, len(names))
	scheduled := make([]Interview, 0, len(names))
	for i, name := range names {
		stored, err := s.store.InsertInterview(ctx, Interview{
			CandidateName: name,
			Date:          slots[i].date,
			Time:          slots[i].tm,
		})
		if err != nil {
			return nil, fmt.Errorf("persist interview for %s: %w", name, err)
		}
		scheduled = append(scheduled, stored)
	}

	s.pub.Publish(ctx, events.ScheduleRebuilt, map[string]string{
		"date":  date,
		"count": fmt.Sprintf("%d", len(scheduled)),
	})
	return scheduled, nil
}

// Update moves an interview to a new date and time. The proposed one-hour
// window is checked against every other interview on the new date; any
// overlap is rejected, never silently adjusted.
func (s *Service) Update(ctx context.Context, id, newDate, newTime string) (Interview, error) {
	if id == "" {
		return Interview{}, faults.Validation("id", "is required")
	}
	if _, err := time.Parse(dateLayout, newDate); err != nil {
		return Interview{}, faults.Validation("newDate", "must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, newTime); err != nil {
		return Interview{}, faults.Validation("newTime", "must be HH:mm")
	}

	if _, err := s.store.GetInterview(ctx, id); err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return Interview{}, faults.ErrNotFound
		}
		return Interview{}, fmt.Errorf("load interview: %w", err)
	}

	sameDay, err := s.store.ListByDate(ctx, newDate)
	if err != nil {
		return Interview{}, fmt.Errorf("list interviews on %s: %w", newDate, err)
	}
	for _, other := range sameDay {
		if other.ID == id {
			continue
		}
		hit, err := overlaps(newTime, other.Time)
		if err != nil {
			return Interview{}, err
		}
		if hit {
			return Interview{}, fmt.Errorf("slot %s %s collides with %s at %s: %w",
				newDate, newTime, other.CandidateName, other.Time, faults.ErrConflict)
		}
	}

	updated, err := s.store.UpdateInterview(ctx, id, newDate, newTime)
	if err != nil {
		return Interview{}, fmt.Errorf("update interview: %w", err)
	}
	return updated, nil
}

// Delete removes an interview. An absent id is an informational outcome, not
// an error.
func (s *Service) Delete(ctx context.Context, id string) (Interview, bool, error) {
	deleted, err := s.store.DeleteInterview(ctx, id)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return Interview{}, false, nil
		}
		return Interview{}, false, fmt.Errorf("delete interview: %w", err)
	}
	return deleted, true, nil
}

// RescheduleSession tracks taken hours per date for the duration of one
// reschedule stream. Assignments from concurrent per-record work go through
// its mutex.
type RescheduleSession struct {
	svc   *Service
	mu    sync.Mutex
	taken map[string]map[int]bool
}

// StartReschedule clears the interview set and opens a fresh session.
func (s *Service) StartReschedule(ctx context.Context) (*RescheduleSession, error) {
	if err := s.store.ClearInterviews(ctx); err != nil {
		return nil, fmt.Errorf("clear interviews: %w", err)
	}
	return &RescheduleSession{svc: s, taken: make(map[string]map[int]bool)}, nil
}

// Assign books a pseudo-random free hour on the record's date and persists
// the slot. ErrDateExhausted when every hour of the date is already taken in
// this session.
func (rs *RescheduleSession) Assign(ctx context.Context, candidateName, date string) (Interview, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Interview{}, faults.Validation("date", "must be YYYY-MM-DD")
	}

	hour, err := rs.book(date)
	if err != nil {
		return Interview{}, err
	}

	stored, err := rs.svc.store.InsertInterview(ctx, Interview{
		CandidateName: candidateName,
		Date:          date,
		Time:          fmt.Sprintf("%02d:00", hour),
	})
	if err != nil {
		return Interview{}, fmt.Errorf("persist interview for %s: %w", candidateName, err)
	}
	return stored, nil
}

func (rs *RescheduleSession) book(date string) (int, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	used := rs.taken[date]
	if used == nil {
		used = make(map[int]bool)
		rs.taken[date] = used
	}

	free := make([]int, 0, len(freeHours))
	for _, h := range freeHours {
		if !used[h] {
			free = append(free, h)
		}
	}
	if len(free) == 0 {
		return 0, fmt.Errorf("%s: %w", date, ErrDateExhausted)
	}

	hour := free[rs.svc.pick(len(free))]
	used[hour] = true
	return hour, nil
}
