package scheduler

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/config"
	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/pkg/clients/webhook"
)

const jobTimeout = 2 * time.Minute

// Reporter produces the texts pushed by the scheduled jobs.
type Reporter interface {
	PublishDailyReport(ctx context.Context, now time.Time) (string, error)
	BuildReminder(ctx context.Context, days int) (string, bool, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	reporter Reporter
	notifier webhook.Client
	cfg      config.SchedulerConfig
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a new scheduler instance. notifier may be nil, in
// which case job output is only logged.
func NewScheduler(cfg config.SchedulerConfig, reporter Reporter, notifier webhook.Client, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		reporter: reporter,
		notifier: notifier,
		cfg:      cfg,
		location: loc,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Start registers the reminder and report jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.ReminderSchedule, s.runJob("task reminder", s.SendReminders)); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", s.cfg.ReminderSchedule, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.ReportSchedule, s.runJob("daily report", s.SendDailyReport)); err != nil {
		return fmt.Errorf("schedule daily report %q: %w", s.cfg.ReportSchedule, err)
	}

	s.logger.Info("starting scheduler",
		zap.String("reminders", s.cfg.ReminderSchedule),
		zap.String("report", s.cfg.ReportSchedule),
		zap.String("timezone", s.location.String()))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// SendReminders pushes the list of overdue and upcoming care tasks.
func (s *Scheduler) SendReminders(ctx context.Context) error {
	text, ok, err := s.reporter.BuildReminder(ctx, s.cfg.ReminderDays)
	if err != nil {
		return fmt.Errorf("build reminder: %w", err)
	}
	if !ok {
		s.logger.Info("no task reminders to send")
		return nil
	}
	return s.notify(ctx, models.Notification{Kind: models.NotificationReminder, Text: text})
}

// SendDailyReport publishes today's garden report.
func (s *Scheduler) SendDailyReport(ctx context.Context) error {
	text, err := s.reporter.PublishDailyReport(ctx, s.now().In(s.location))
	if err != nil {
		return fmt.Errorf("publish daily report: %w", err)
	}
	return s.notify(ctx, models.Notification{Kind: models.NotificationReport, Text: text})
}

func (s *Scheduler) notify(ctx context.Context, n models.Notification) error {
	if s.notifier == nil {
		s.logger.Info("notifier disabled, dropping notification", zap.String("kind", string(n.Kind)), zap.String("text", n.Text))
		return nil
	}
	if err := s.notifier.Send(ctx, n); err != nil {
		return fmt.Errorf("send %s: %w", n.Kind, err)
	}
	s.logger.Info("notification sent", zap.String("kind", string(n.Kind)))
	return nil
}

func (s *Scheduler) runJob(name string, job func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := job(ctx); err != nil {
			s.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
		}
	}
}
