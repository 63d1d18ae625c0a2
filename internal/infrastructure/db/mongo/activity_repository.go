package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

const activitiesCollection = "activities"

// ActivityRepository implements ports.ActivityRepository backed by MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activitiesCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, a *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*domain.Activity, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ActivityRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Activity, error) {
	return r.findOne(ctx, bson.M{"idempotency_key": key})
}

func (r *ActivityRepository) findOne(ctx context.Context, filter bson.M) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Activity
	if err := r.coll.FindOne(ctx, filter).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return &a, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter ports.ListRecordsFilter) ([]*domain.Activity, error) {
	query := bson.M{}
	if filter.SubmitterID != "" {
		query["organizer_id"] = filter.SubmitterID
	}
	if filter.ClubID != "" {
		query["club_id"] = filter.ClubID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "submit_time", Value: -1}})
	return r.find(ctx, query, opts)
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "submit_time", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *ActivityRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*domain.Activity{}
	for cursor.Next(ctx) {
		var a domain.Activity
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		records = append(records, &a)
	}
	return records, cursor.Err()
}

// Decide has the same conditional-update semantics as for work-hours.
func (r *ActivityRepository) Decide(ctx context.Context, id string, d ports.Decision) (*domain.Activity, error) {
	filter := bson.M{"_id": id, "status": string(domain.StatusPending)}
	update := bson.M{"$set": bson.M{
		"status":        string(d.Status),
		"approve_time":  d.At.UTC(),
		"approver_id":   d.ApproverID,
		"reject_reason": d.RejectReason,
	}}
	return r.transition(ctx, id, filter, update)
}

// Cancel moves an activity to cancelled from one of its allowed prior
// states (pending or approved) in a single conditional update.
func (r *ActivityRepository) Cancel(ctx context.Context, id string, at time.Time) (*domain.Activity, error) {
	filter := bson.M{"_id": id, "status": bson.M{"$in": []string{
		string(domain.StatusPending),
		string(domain.StatusApproved),
	}}}
	update := bson.M{"$set": bson.M{
		"status":       string(domain.StatusCancelled),
		"approve_time": at.UTC(),
	}}
	return r.transition(ctx, id, filter, update)
}

func (r *ActivityRepository) transition(ctx context.Context, id string, filter, update bson.M) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.Activity
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	current, findErr := r.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("%w: record %s is %s", domain.ErrInvalidTransition, id, current.Status)
}

// EnsureIndexes creates the query indexes for the activities collection.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "organizer_id", Value: 1}}},
		{Keys: bson.D{{Key: "club_id", Value: 1}}},
		{Keys: bson.D{{Key: "idempotency_key", Value: 1}}},
		{Keys: bson.D{{Key: "submit_time", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
