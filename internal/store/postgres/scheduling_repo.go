package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"citaplan/backend/internal/domain"
	"citaplan/backend/internal/store"
)

type ScheduleRepo struct {
	db *bun.DB
}

func NewScheduleRepo(db *bun.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) CreateWindow(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error) {
	m := domain.AvailabilityWindow{
		ID:             w.ID,
		ProfessionalID: w.ProfessionalID,
		DayOfWeek:      w.DayOfWeek,
		StartTime:      w.StartTime,
		EndTime:        w.EndTime,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.AvailabilityWindow{}, err
	}
	w.ID = m.ID
	return w, nil
}

func (r *ScheduleRepo) ListWindows(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error) {
	var rows []domain.AvailabilityWindow
	err := r.db.NewSelect().
		Model(&rows).
		Where("professional_id = ?", professionalID).
		OrderExpr("day_of_week ASC, start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleRepo) ListWindowsForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]domain.AvailabilityWindow, error) {
	var rows []domain.AvailabilityWindow
	err := r.db.NewSelect().
		Model(&rows).
		Where("professional_id = ?", professionalID).
		Where("day_of_week = ?", dayOfWeek).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleRepo) DeleteWindow(ctx context.Context, professionalID string, windowID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*domain.AvailabilityWindow)(nil)).
		Where("professional_id = ?", professionalID).
		Where("id = ?", windowID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

type schedulingTx struct {
	tx bun.Tx
}

func (r *AppointmentRepo) Book(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	var out domain.Appointment
	err := r.InProfessionalTransaction(ctx, appt.ProfessionalID, func(ctx context.Context, tx store.SchedulingTx) error {
		if err := ensureBookable(ctx, tx, appt); err != nil {
			return err
		}
		a, err := tx.InsertAppointment(ctx, appt)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (r *AppointmentRepo) Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	var row domain.Appointment
	err := r.db.NewSelect().
		Model(&row).
		Where("id = ?", appointmentID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return row, nil
}

func (r *AppointmentRepo) ListForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("professional_id = ?", professionalID).
		Where("date = ?", date).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) ListByStatus(ctx context.Context, date time.Time, status domain.AppointmentStatus) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("date = ?", date).
		Where("status = ?", status).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status domain.AppointmentStatus) (domain.Appointment, error) {
	m := domain.Appointment{ID: appointmentID, Status: status}
	res, err := r.db.NewUpdate().
		Model(&m).
		Column("status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return r.Get(ctx, appointmentID)
}

func (r *AppointmentRepo) MarkPaid(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	m := domain.Appointment{ID: appointmentID, PaymentStatus: domain.PaymentStatusPaid}
	res, err := r.db.NewUpdate().
		Model(&m).
		Column("payment_status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return r.Get(ctx, appointmentID)
}

// InProfessionalTransaction serializes booking decisions per professional
// with a transaction-scoped advisory lock, closing the read-check-insert
// race between concurrent requests.
func (r *AppointmentRepo) InProfessionalTransaction(ctx context.Context, professionalID string, fn func(ctx context.Context, tx store.SchedulingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockProfessionalDiary(ctx, tx, professionalID); err != nil {
			return err
		}
		return fn(ctx, schedulingTx{tx: tx})
	})
}

func lockProfessionalDiary(ctx context.Context, tx bun.Tx, professionalID string) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", professionalID).Exec(ctx)
	return err
}

// ensureBookable re-runs the schedule containment and overlap checks inside
// the booking transaction, after the advisory lock is held.
func ensureBookable(ctx context.Context, tx store.SchedulingTx, appt domain.Appointment) error {
	windows, err := tx.ListWindowsForDay(ctx, appt.ProfessionalID, domain.ISOWeekday(appt.Date))
	if err != nil {
		return err
	}
	if !domain.WithinSchedule(windows, appt.StartTime, appt.EndTime) {
		return store.ErrOutsideSchedule
	}

	existing, err := tx.ListAppointmentsForDay(ctx, appt.ProfessionalID, appt.Date)
	if err != nil {
		return err
	}
	if domain.HasConflict(existing, appt.ID, appt.StartTime, appt.EndTime) {
		return store.ErrConflict
	}
	return nil
}

func (r schedulingTx) ListWindowsForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]domain.AvailabilityWindow, error) {
	var rows []domain.AvailabilityWindow
	err := r.tx.NewSelect().
		Model(&rows).
		Where("professional_id = ?", professionalID).
		Where("day_of_week = ?", dayOfWeek).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r schedulingTx) ListAppointmentsForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.tx.NewSelect().
		Model(&rows).
		Where("professional_id = ?", professionalID).
		Where("date = ?", date).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r schedulingTx) InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:             appt.ID,
		ProfessionalID: appt.ProfessionalID,
		ClientID:       appt.ClientID,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         appt.Status,
		PaymentStatus:  appt.PaymentStatus,
		Notes:          appt.Notes,
		CreatedAt:      appt.CreatedAt,
		UpdatedAt:      appt.UpdatedAt,
	}
	if _, err := r.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Appointment{}, err
	}
	return m, nil
}
