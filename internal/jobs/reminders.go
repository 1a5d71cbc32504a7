package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"citaplan/backend/internal/domain"
)

type reminderSource interface {
	ConfirmedForDate(ctx context.Context, date time.Time) ([]domain.Appointment, error)
	Reminder(ctx context.Context, appointmentID uuid.UUID)
}

// ReminderJob sweeps tomorrow's confirmed appointments once a day and
// emits a reminder event for each.
type ReminderJob struct {
	svc  reminderSource
	log  *slog.Logger
	cron *cron.Cron
	spec string
	now  func() time.Time
}

func NewReminderJob(svc reminderSource, spec string, log *slog.Logger) *ReminderJob {
	if log == nil {
		log = slog.Default()
	}
	if spec == "" {
		spec = "0 8 * * *"
	}
	return &ReminderJob{
		svc:  svc,
		log:  log.With(slog.String("component", "jobs.reminders")),
		cron: cron.New(),
		spec: spec,
		now:  time.Now,
	}
}

// Start schedules the daily sweep and begins running it in the
// background. Stop must be called on shutdown.
func (j *ReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	j.cron.Start()
	j.log.Info("reminder job scheduled", slog.String("spec", j.spec))
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *ReminderJob) Stop() {
	<-j.cron.Stop().Done()
}

// Run executes one sweep: every appointment confirmed for tomorrow gets
// a reminder. Failures on individual rows are logged and skipped so one
// bad appointment cannot starve the rest.
func (j *ReminderJob) Run(ctx context.Context) {
	tomorrow := dateOnly(j.now().AddDate(0, 0, 1))

	appts, err := j.svc.ConfirmedForDate(ctx, tomorrow)
	if err != nil {
		j.log.Error("reminder sweep failed", slog.Any("err", err), slog.Time("date", tomorrow))
		return
	}

	for _, a := range appts {
		j.svc.Reminder(ctx, a.ID)
	}
	j.log.Info("reminder sweep finished",
		slog.Time("date", tomorrow),
		slog.Int("appointments", len(appts)),
	)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
