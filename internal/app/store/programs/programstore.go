package programstore

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
	return &Store{c: db.Collection("programs")}
}

// Create inserts p under a new id.
func (s *Store) Create(ctx context.Context, p models.Program) (models.Program, error) {
	p.ID = uuid.NewString()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Program{}, fmt.Errorf("insert program: %w", err)
	}
	return p, nil
}

// List returns up to models.MaxListResults programs in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Program, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(models.MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("find programs: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Program{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode programs: %w", err)
	}
	return out, nil
}

// Count returns the number of stored programs.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
