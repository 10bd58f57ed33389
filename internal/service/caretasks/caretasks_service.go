package caretasks

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// DefaultUpcomingDays is the look-ahead used when callers pass no window.
const DefaultUpcomingDays = 7

// Service manages scheduled care tasks.
type Service struct {
	tasks  *store.Collection[models.CareTask]
	ids    idgen.Generator
	delay  latency.Simulator
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a care task service.
func NewService(tasks *store.Collection[models.CareTask], ids idgen.Generator, delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{tasks: tasks, ids: ids, delay: delay, logger: logger, now: time.Now}
}

// GetAll returns every task in store order.
func (s *Service) GetAll(ctx context.Context) ([]models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	return s.tasks.All(), nil
}

// GetByID returns the task with id or a NotFoundError.
func (s *Service) GetByID(ctx context.Context, id string) (models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.CareTask{}, err
	}
	return s.tasks.Get(id)
}

// GetByPlant returns the tasks scheduled for one plant in store order.
func (s *Service) GetByPlant(ctx context.Context, plantID string) ([]models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	return s.tasks.Filter(func(t models.CareTask) bool { return t.PlantID == plantID }), nil
}

// GetUpcoming returns incomplete tasks scheduled between now and now+days,
// earliest first. A non-positive days uses DefaultUpcomingDays.
func (s *Service) GetUpcoming(ctx context.Context, days int) ([]models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = DefaultUpcomingDays
	}

	now := s.now()
	until := now.Add(time.Duration(days) * 24 * time.Hour)
	out := s.tasks.Filter(func(t models.CareTask) bool {
		return !t.Completed && !t.ScheduledDate.Before(now) && !t.ScheduledDate.After(until)
	})
	sortBySchedule(out)
	return out, nil
}

// GetOverdue returns incomplete tasks whose scheduled date has passed,
// earliest first.
func (s *Service) GetOverdue(ctx context.Context) ([]models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}

	now := s.now()
	out := s.tasks.Filter(func(t models.CareTask) bool {
		return !t.Completed && t.ScheduledDate.Before(now)
	})
	sortBySchedule(out)
	return out, nil
}

// Create stores a new task. Tasks start incomplete unless the caller says
// otherwise; CompletedDate is only kept for completed tasks.
func (s *Service) Create(ctx context.Context, input models.CareTask) (models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return models.CareTask{}, err
	}

	input.ID = s.ids.NewID()
	created := s.tasks.Append(s.settleCompletion(input))
	s.logger.Debug("care task created",
		zap.String("id", created.ID),
		zap.String("plant_id", created.PlantID),
		zap.String("type", string(created.Type)))
	return created, nil
}

// Update merges patch onto the task. Reopening a task clears
// CompletedDate; completing one without a date stamps the current time.
func (s *Service) Update(ctx context.Context, id string, patch models.CareTaskPatch) (models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.CareTask{}, err
	}
	return s.tasks.Replace(id, func(t models.CareTask) models.CareTask {
		return s.settleCompletion(patch.Apply(t))
	})
}

// settleCompletion keeps CompletedDate set exactly when the task is completed.
func (s *Service) settleCompletion(t models.CareTask) models.CareTask {
	switch {
	case !t.Completed:
		t.CompletedDate = nil
	case t.CompletedDate == nil:
		completed := s.now().UTC()
		t.CompletedDate = &completed
	}
	return t
}

// MarkComplete flags the task done at the current time and overwrites its
// notes. Completing an already completed task is allowed and refreshes
// CompletedDate.
func (s *Service) MarkComplete(ctx context.Context, id, notes string) (models.CareTask, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.CareTask{}, err
	}

	completedAt := s.now().UTC()
	task, err := s.tasks.Replace(id, func(t models.CareTask) models.CareTask {
		t.Completed = true
		t.CompletedDate = &completedAt
		t.Notes = notes
		return t
	})
	if err != nil {
		return models.CareTask{}, err
	}
	s.logger.Debug("care task completed", zap.String("id", id))
	return task, nil
}

// Delete removes the task with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return err
	}
	return s.tasks.Remove(id)
}

func sortBySchedule(tasks []models.CareTask) {
	slices.SortStableFunc(tasks, func(a, b models.CareTask) int {
		return a.ScheduledDate.Compare(b.ScheduledDate)
	})
}
