package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// BuildReminder lists overdue tasks and tasks due in the next days. It
// returns ok=false when there is nothing to send or the gardener has
// turned task reminders off.
func (s *Service) BuildReminder(ctx context.Context, days int) (message string, ok bool, err error) {
	p, err := s.garden.Profile.Get(ctx)
	if err != nil {
		return "", false, fmt.Errorf("load profile: %w", err)
	}
	if !p.Preferences.Notifications || !p.Preferences.TaskReminders {
		s.logger.Debug("task reminders disabled by profile")
		return "", false, nil
	}

	overdue, err := s.garden.CareTasks.GetOverdue(ctx)
	if err != nil {
		return "", false, fmt.Errorf("load overdue tasks: %w", err)
	}
	upcoming, err := s.garden.CareTasks.GetUpcoming(ctx, days)
	if err != nil {
		return "", false, fmt.Errorf("load upcoming tasks: %w", err)
	}
	if len(overdue) == 0 && len(upcoming) == 0 {
		return "", false, nil
	}

	names := map[string]string{}
	plantName := func(id string) string {
		if name, cached := names[id]; cached {
			return name
		}
		name := id
		plant, err := s.garden.Plants.GetByID(ctx, id)
		switch {
		case err == nil:
			name = plant.Name
		case !errors.Is(err, models.ErrNotFound):
			s.logger.Warn("failed to resolve plant for reminder", zap.String("plant_id", id), zap.Error(err))
		}
		names[id] = name
		return name
	}

	var b strings.Builder
	if len(overdue) > 0 {
		fmt.Fprintf(&b, "Overdue (%d):\n", len(overdue))
		for _, t := range overdue {
			fmt.Fprintf(&b, "- %s %s (%s)\n", t.Type, plantName(t.PlantID), t.ScheduledDate.Format(dateLayout))
		}
	}
	if len(upcoming) > 0 {
		fmt.Fprintf(&b, "Coming up (%d):\n", len(upcoming))
		for _, t := range upcoming {
			fmt.Fprintf(&b, "- %s %s (%s)\n", t.Type, plantName(t.PlantID), t.ScheduledDate.Format(dateLayout))
		}
	}

	return strings.TrimSuffix(b.String(), "\n"), true, nil
}
