package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hireloop/slotd/internal/repo/models"
	"github.com/hireloop/slotd/pkg/errors"
	mng "github.com/hireloop/slotd/pkg/mongotools"
)

type mongoJobs struct {
	coll *mongo.Collection
}

func (m mongoJobs) Find(ctx context.Context, id string) (*models.Job, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find job by id")
	}

	var parsed models.Job
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode job")
	}

	return &parsed, nil
}
