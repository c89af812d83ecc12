package api

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type scheduleForm struct {
	JobID           string `json:"job_id"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (f scheduleForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.JobID, validation.Required),
		validation.Field(&f.ScheduledAt, validation.Required, validation.Date(time.RFC3339)),
		// zero means "use the default slot length"
		validation.Field(&f.DurationMinutes, validation.Min(0), validation.Max(8*60)),
	)
}

type completeForm struct {
	Notes string `json:"notes"`
}

func (f completeForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Notes, validation.Length(0, 4000)),
	)
}
