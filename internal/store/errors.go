package store

import "errors"

var (
	ErrConflict        = errors.New("conflict")
	ErrOutsideSchedule = errors.New("outside schedule")
	ErrNotFound        = errors.New("not found")
)
