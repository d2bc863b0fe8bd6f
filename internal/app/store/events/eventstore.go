package eventstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = uuid.NewString()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.TargetAudience == nil {
		e.TargetAudience = []models.Role{}
	}
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

// ListForRole returns up to models.MaxListResults events whose
// target_audience includes role.
func (s *Store) ListForRole(ctx context.Context, role models.Role) ([]models.Event, error) {
	filter := bson.M{"target_audience": bson.M{"$in": []models.Role{role}}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetLimit(models.MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}
