package models

import (
	"context"
	"time"
)

// JobsRepo is the narrow view of the job-posting collaborator the
// scheduler needs: existence and application membership.
type JobsRepo interface {
	// Find returns the job or nil if there is none with such id.
	Find(ctx context.Context, id string) (*Job, error)
}

type Job struct {
	ID           string        `json:"id"           bson:"_id"`
	Title        string        `json:"title"        bson:"title"`
	Applications []Application `json:"applications" bson:"applications"`
}

type Application struct {
	UserID    string    `json:"user_id"    bson:"user_id"`
	AppliedAt time.Time `json:"applied_at" bson:"applied_at"`
}

func (j Job) HasApplicant(userID string) bool {
	for _, a := range j.Applications {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

const (
	JobFieldID           = "_id"
	JobFieldTitle        = "title"
	JobFieldApplications = "applications"
)
