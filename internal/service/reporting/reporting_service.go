package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/repository/mongodb"
	"github.com/mamadbah2/greenthumb/internal/repository/sheets"
	"github.com/mamadbah2/greenthumb/internal/service"
	"github.com/mamadbah2/greenthumb/internal/service/harvests"
)

const (
	dateLayout   = "2006-01-02"
	upcomingDays = 7
	day          = 24 * time.Hour

	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 365
)

// ErrArchiveDisabled is returned by History when no archive is configured.
var ErrArchiveDisabled = errors.New("report archive is not configured")

// Service builds garden summaries out of the live services and exports
// them to the configured archives.
type Service struct {
	garden  *service.Registry
	archive mongodb.Repository
	sheet   sheets.Repository
	logger  *zap.Logger
}

// NewService wires a reporting service. archive and sheet may be nil when
// the corresponding export is not configured.
func NewService(garden *service.Registry, archive mongodb.Repository, sheet sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{garden: garden, archive: archive, sheet: sheet, logger: logger}
}

// GenerateDailyReport summarizes the garden as of now.
func (s *Service) GenerateDailyReport(ctx context.Context, now time.Time) (models.DailyReport, error) {
	plantList, err := s.garden.Plants.GetAll(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load plants: %w", err)
	}
	beds, err := s.garden.GardenBeds.GetAll(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load garden beds: %w", err)
	}
	tasks, err := s.garden.CareTasks.GetAll(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load care tasks: %w", err)
	}
	harvestList, err := s.garden.Harvests.GetAll(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load harvests: %w", err)
	}
	current, err := s.garden.Weather.GetCurrent(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load weather: %w", err)
	}
	alerts, err := s.garden.Weather.GetAlerts(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load weather alerts: %w", err)
	}

	report := models.DailyReport{
		Date:           now,
		Plants:         len(plantList),
		GardenBeds:     len(beds),
		WeatherSummary: weatherSummary(current),
		CreatedAt:      now,
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(day)
	horizon := now.Add(upcomingDays * day)

	for _, t := range tasks {
		if t.Completed {
			if t.CompletedDate != nil && within(*t.CompletedDate, now.Add(-day), now) {
				report.TasksCompleted++
			}
			continue
		}
		if t.ScheduledDate.Before(now) {
			report.TasksOverdue++
			continue
		}
		if t.ScheduledDate.Before(endOfDay) {
			report.TasksDueToday++
		}
		if !t.ScheduledDate.After(horizon) {
			report.TasksUpcoming++
		}
	}

	var recent []models.Harvest
	for _, h := range harvestList {
		if within(h.HarvestDate, now.Add(-day), now) {
			recent = append(recent, h)
		}
	}
	stats := harvests.Summarize(recent)
	report.HarvestsLogged = stats.TotalHarvests
	report.HarvestQuality = stats.AverageQuality

	for _, a := range alerts {
		if !a.ValidUntil.Before(now) {
			report.ActiveAlerts++
		}
	}

	return report, nil
}

// PublishDailyReport generates the report, exports it to every configured
// archive and returns the text to send to the gardener. Export failures are
// logged and do not stop the report.
func (s *Service) PublishDailyReport(ctx context.Context, now time.Time) (string, error) {
	report, err := s.GenerateDailyReport(ctx, now)
	if err != nil {
		return "", err
	}

	if s.archive != nil {
		if err := s.archive.SaveDailyReport(ctx, report); err != nil {
			s.logger.Error("failed to archive daily report", zap.Error(err))
		}
	}
	if s.sheet != nil {
		if err := s.sheet.AppendReport(ctx, report); err != nil {
			s.logger.Error("failed to export daily report to sheet", zap.Error(err))
		}
	}

	s.logger.Info("daily report generated",
		zap.Int("tasks_due_today", report.TasksDueToday),
		zap.Int("tasks_overdue", report.TasksOverdue),
		zap.Int("harvests_logged", report.HarvestsLogged))

	return FormatReport(report), nil
}

// History returns the most recent archived reports, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]models.DailyReport, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	reports, err := s.archive.LatestReports(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("load report history: %w", err)
	}
	return reports, nil
}

// FormatReport renders a report as a short plain-text message.
func FormatReport(r models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Garden report %s\n", r.Date.Format(dateLayout))
	fmt.Fprintf(&b, "%d plants in %d beds.\n", r.Plants, r.GardenBeds)
	fmt.Fprintf(&b, "Tasks: %d due today, %d overdue, %d in the next %d days, %d completed today.\n",
		r.TasksDueToday, r.TasksOverdue, r.TasksUpcoming, upcomingDays, r.TasksCompleted)
	if r.HarvestsLogged > 0 {
		fmt.Fprintf(&b, "Harvests: %d logged, average quality %.1f/5.\n", r.HarvestsLogged, r.HarvestQuality)
	} else {
		b.WriteString("Harvests: none logged today.\n")
	}
	fmt.Fprintf(&b, "Weather: %s.", r.WeatherSummary)
	if r.ActiveAlerts > 0 {
		fmt.Fprintf(&b, " %d active alert(s).", r.ActiveAlerts)
	}
	return b.String()
}

func weatherSummary(w models.CurrentWeather) string {
	if w.Condition == "" {
		return "unavailable"
	}
	return fmt.Sprintf("%s, %d°F (H %d / L %d)", w.Condition, w.Temperature.Current, w.Temperature.High, w.Temperature.Low)
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
