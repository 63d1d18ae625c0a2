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

const workHoursCollection = "work_hours"

// WorkHourRepository implements ports.WorkHourRepository backed by MongoDB.
type WorkHourRepository struct {
	coll *mongo.Collection
}

func NewWorkHourRepository(db *mongo.Database) *WorkHourRepository {
	return &WorkHourRepository{coll: db.Collection(workHoursCollection)}
}

func (r *WorkHourRepository) Insert(ctx context.Context, w *domain.WorkHour) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("insert work-hour: %w", err)
	}
	return nil
}

func (r *WorkHourRepository) FindByID(ctx context.Context, id string) (*domain.WorkHour, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *WorkHourRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.WorkHour, error) {
	return r.findOne(ctx, bson.M{"idempotency_key": key})
}

func (r *WorkHourRepository) findOne(ctx context.Context, filter bson.M) (*domain.WorkHour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.WorkHour
	if err := r.coll.FindOne(ctx, filter).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find work-hour: %w", err)
	}
	return &w, nil
}

func (r *WorkHourRepository) List(ctx context.Context, filter ports.ListRecordsFilter) ([]*domain.WorkHour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.SubmitterID != "" {
		query["submitter_id"] = filter.SubmitterID
	}
	if filter.ClubID != "" {
		query["club_id"] = filter.ClubID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "submit_time", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list work-hours: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*domain.WorkHour{}
	for cursor.Next(ctx) {
		var w domain.WorkHour
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("decode work-hour: %w", err)
		}
		records = append(records, &w)
	}
	return records, cursor.Err()
}

// Decide flips a still-pending record to the decided status in a single
// conditional update. When the filter matches nothing, the record is either
// absent or already decided; the follow-up lookup tells the two apart.
func (r *WorkHourRepository) Decide(ctx context.Context, id string, d ports.Decision) (*domain.WorkHour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": string(domain.StatusPending)}
	update := bson.M{"$set": bson.M{
		"status":        string(d.Status),
		"approve_time":  d.At.UTC(),
		"approver_id":   d.ApproverID,
		"reject_reason": d.RejectReason,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.WorkHour
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("decide work-hour: %w", err)
	}

	current, findErr := r.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("%w: record %s is %s", domain.ErrInvalidTransition, id, current.Status)
}

// EnsureIndexes creates the query indexes for the work_hours collection.
func (r *WorkHourRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "submitter_id", Value: 1}}},
		{Keys: bson.D{{Key: "club_id", Value: 1}}},
		{Keys: bson.D{{Key: "idempotency_key", Value: 1}}},
		{Keys: bson.D{{Key: "submit_time", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
