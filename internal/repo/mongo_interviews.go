package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/hireloop/slotd/internal/repo/models"
	"github.com/hireloop/slotd/pkg/errors"
	mng "github.com/hireloop/slotd/pkg/mongotools"
)

type mongoInterviews struct {
	client *mongo.Client
	coll   *mongo.Collection

	// locks holds one document per candidate; Book writes it inside the
	// booking transaction so concurrent bookings of one candidate
	// conflict instead of committing from disjoint snapshots.
	locks *mongo.Collection
}

func (m mongoInterviews) ensureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// conflict scan: candidate's active slots by start
			Keys: bson.D{
				{Key: models.InterviewFieldCandidateID, Value: 1},
				{Key: models.InterviewFieldStatus, Value: 1},
				{Key: mng.Index(models.InterviewFieldSlot, 0), Value: 1},
			},
			Options: options.Index().SetName("candidate_active_slots"),
		},
		{
			// sweep scan: scheduled slots by end
			Keys: bson.D{
				{Key: models.InterviewFieldStatus, Value: 1},
				{Key: mng.Index(models.InterviewFieldSlot, 1), Value: 1},
			},
			Options: options.Index().SetName("status_slot_end"),
		},
	})
	return err
}

func (m mongoInterviews) Book(ctx context.Context, interview models.Interview) (bool, error) {
	session, err := m.client.StartSession()
	if err != nil {
		return false, errors.WrapFail(err, "start mongo session")
	}
	defer session.EndSession(ctx)

	conflictFilter := bson.M{
		models.InterviewFieldCandidateID:        interview.CandidateID,
		models.InterviewFieldStatus:             bson.M{"$in": models.ActiveStatuses()},
		mng.Index(models.InterviewFieldSlot, 0): bson.M{"$lt": interview.Slot[1]},
		mng.Index(models.InterviewFieldSlot, 1): bson.M{"$gt": interview.Slot[0]},
	}

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority())

	// The scan alone would not be enough: two transactions could each
	// count 0 conflicts on their own snapshot and both commit, since
	// their inserts touch no common document. The $inc on the shared
	// lock document makes them collide; the loser aborts with a write
	// conflict and WithTransaction retries it against the winner's
	// committed insert, where the scan does see the overlap.
	conflict, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		_, err := m.locks.UpdateOne(
			sc,
			mng.ID(interview.CandidateID),
			bson.M{"$inc": bson.M{"bookings": 1}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return false, errors.WrapFail(err, "touch candidate lock")
		}

		n, err := m.coll.CountDocuments(sc, conflictFilter, options.Count().SetLimit(1))
		if err != nil {
			return false, errors.WrapFail(err, "scan for conflicting slots")
		}

		if n > 0 {
			return true, nil
		}

		_, err = m.coll.InsertOne(sc, interview)
		if err != nil {
			return false, errors.WrapFail(err, "insert interview")
		}

		return false, nil
	}, txnOpts)
	if err != nil {
		return false, errors.WrapFail(err, "book slot")
	}

	return conflict.(bool), nil
}

func (m mongoInterviews) Find(ctx context.Context, id string) (*models.Interview, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find interview by id")
	}

	var parsed models.Interview
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interview")
	}

	return &parsed, nil
}

func (m mongoInterviews) FindActiveByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	filter := bson.M{
		models.InterviewFieldCandidateID: candidateID,
		models.InterviewFieldStatus:      bson.M{"$in": models.ActiveStatuses()},
	}

	c, err := m.coll.Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: mng.Index(models.InterviewFieldSlot, 0), Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find candidate's active interviews")
	}

	parsed, err := mng.FilterFunc[models.Interview](ctx, c, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interviews")
	}

	return parsed, nil
}

func (m mongoInterviews) Start(ctx context.Context, id string, at time.Time) (bool, error) {
	r, err := m.coll.UpdateOne(
		ctx,
		bson.M{
			models.InterviewFieldID:     id,
			models.InterviewFieldStatus: models.StatusScheduled,
		},
		mng.SetAll(
			mng.Field(models.InterviewFieldStatus, models.StatusInProgress),
			mng.Field(models.InterviewFieldStartedAt, at),
		),
	)
	if err != nil {
		return false, errors.WrapFail(err, "update interview by id")
	}

	return r.ModifiedCount == 1, nil
}

func (m mongoInterviews) Complete(ctx context.Context, id string, at time.Time, notes string) (bool, error) {
	set := []bson.M{
		mng.Field(models.InterviewFieldStatus, models.StatusCompleted),
		mng.Field(models.InterviewFieldCompletedAt, at),
	}
	if notes != "" {
		set = append(set, mng.Field(models.InterviewFieldNotes, notes))
	}

	r, err := m.coll.UpdateOne(
		ctx,
		bson.M{
			models.InterviewFieldID:     id,
			models.InterviewFieldStatus: models.StatusInProgress,
		},
		mng.SetAll(set...),
	)
	if err != nil {
		return false, errors.WrapFail(err, "update interview by id")
	}

	return r.ModifiedCount == 1, nil
}

func (m mongoInterviews) Cancel(ctx context.Context, id string) (bool, error) {
	r, err := m.coll.UpdateOne(
		ctx,
		bson.M{
			models.InterviewFieldID:     id,
			models.InterviewFieldStatus: bson.M{"$in": models.ActiveStatuses()},
		},
		mng.SetAll(mng.Field(models.InterviewFieldStatus, models.StatusCancelled)),
	)
	if err != nil {
		return false, errors.WrapFail(err, "update interview by id")
	}

	return r.ModifiedCount == 1, nil
}

func (m mongoInterviews) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	r, err := m.coll.UpdateMany(
		ctx,
		bson.M{
			models.InterviewFieldStatus:             models.StatusScheduled,
			mng.Index(models.InterviewFieldSlot, 1): bson.M{"$lt": now.UnixMilli()},
		},
		mng.SetAll(mng.Field(models.InterviewFieldStatus, models.StatusExpired)),
	)
	if err != nil {
		return 0, errors.WrapFail(err, "mark overdue interviews expired")
	}

	return r.ModifiedCount, nil
}
