// internal/app/store/resources/resourcestore.go
package resourcestore

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
	return &Store{c: db.Collection("resources")}
}

// Create inserts r under a new id.
func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	r.ID = uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.TargetRole == nil {
		r.TargetRole = []models.Role{}
	}
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Resource{}, fmt.Errorf("insert resource: %w", err)
	}
	return r, nil
}

// ListForRole returns up to models.MaxListResults resources whose
// target_role includes role. No match yields an empty slice.
func (s *Store) ListForRole(ctx context.Context, role models.Role) ([]models.Resource, error) {
	filter := bson.M{"target_role": bson.M{"$in": []models.Role{role}}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetLimit(models.MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("find resources: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Resource{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	return out, nil
}
