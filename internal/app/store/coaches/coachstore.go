package coachstore

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
	return &Store{c: db.Collection("coaches")}
}

func (s *Store) Create(ctx context.Context, c models.Coach) (models.Coach, error) {
	c.ID = uuid.NewString()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Coach{}, fmt.Errorf("insert coach: %w", err)
	}
	return c, nil
}

// List returns up to models.MaxListResults coaches.
func (s *Store) List(ctx context.Context) ([]models.Coach, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(models.MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("find coaches: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Coach{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode coaches: %w", err)
	}
	return out, nil
}
