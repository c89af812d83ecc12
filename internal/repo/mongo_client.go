package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireloop/slotd/internal/repo/models"
	"github.com/hireloop/slotd/pkg/errors"
)

func NewMongoClient(ctx context.Context, cfg Config) (Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)

	lockSource := string(cfg.Sources.Interviews) + "_locks"

	// the lock collection must exist before a transaction writes it;
	// an "already exists" failure is fine
	_ = db.CreateCollection(ctx, lockSource)

	interviews := mongoInterviews{
		client: client,
		coll:   db.Collection(string(cfg.Sources.Interviews)),
		locks:  db.Collection(lockSource),
	}

	err = interviews.ensureIndexes(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "create interview indexes")
	}

	return &mongoClient{
		c:          client,
		interviews: interviews,
		jobs:       mongoJobs{coll: db.Collection(string(cfg.Sources.Jobs))},
	}, nil
}

type mongoClient struct {
	c          *mongo.Client
	interviews mongoInterviews
	jobs       mongoJobs
}

func (m *mongoClient) Interviews() models.InterviewsRepo {
	return m.interviews
}

func (m *mongoClient) Jobs() models.JobsRepo {
	return m.jobs
}

func (m *mongoClient) Close(ctx context.Context) error {
	err := m.c.Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
