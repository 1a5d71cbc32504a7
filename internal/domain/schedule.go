package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Weekday indices follow ISO order: 0=Monday .. 6=Sunday.
const (
	WeekdayMonday = iota
	WeekdayTuesday
	WeekdayWednesday
	WeekdayThursday
	WeekdayFriday
	WeekdaySaturday
	WeekdaySunday
)

// AvailabilityWindow is a recurring weekly interval during which a
// professional accepts bookings. Windows on the same day may overlap;
// they are treated independently and never merged.
type AvailabilityWindow struct {
	bun.BaseModel `bun:"table:availability_windows"`

	ID             uuid.UUID `bun:"id,pk,type:uuid"`
	ProfessionalID string    `bun:"professional_id,notnull"`
	DayOfWeek      int       `bun:"day_of_week,notnull"`
	StartTime      TimeOfDay `bun:"start_time,notnull,type:time"`
	EndTime        TimeOfDay `bun:"end_time,notnull,type:time"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}

func (w *AvailabilityWindow) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if w.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			w.ID = id
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		if w.UpdatedAt.IsZero() {
			w.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		w.UpdatedAt = now
	}
	return nil
}

// ISOWeekday maps a calendar date to the 0=Monday..6=Sunday index used by
// availability windows.
func ISOWeekday(date time.Time) int {
	wd := date.Weekday()
	if wd == time.Sunday {
		return WeekdaySunday
	}
	return int(wd) - 1
}
