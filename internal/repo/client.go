package repo

import (
	"context"

	"github.com/hireloop/slotd/internal/repo/models"
)

type Client interface {
	Interviews() models.InterviewsRepo
	Jobs() models.JobsRepo

	Close(ctx context.Context) error
}
