package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/club-management/internal/core/domain"
)

const clubsCollection = "clubs"

// ClubRepository implements ports.ClubRepository backed by MongoDB. Clubs
// are reference data; the domain struct carries its own bson tags.
type ClubRepository struct {
	coll *mongo.Collection
}

func NewClubRepository(db *mongo.Database) *ClubRepository {
	return &ClubRepository{coll: db.Collection(clubsCollection)}
}

func (r *ClubRepository) FindByID(ctx context.Context, id string) (*domain.Club, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var club domain.Club
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&club); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("find club: %w", err)
	}
	return &club, nil
}

func (r *ClubRepository) ListAll(ctx context.Context) ([]*domain.Club, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer cursor.Close(ctx)

	var clubs []*domain.Club
	for cursor.Next(ctx) {
		var club domain.Club
		if err := cursor.Decode(&club); err != nil {
			return nil, fmt.Errorf("decode club: %w", err)
		}
		clubs = append(clubs, &club)
	}
	return clubs, cursor.Err()
}
