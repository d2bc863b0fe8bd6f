package faqstore

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
	return &Store{c: db.Collection("faqs")}
}

func (s *Store) Create(ctx context.Context, f models.FAQ) (models.FAQ, error) {
	f.ID = uuid.NewString()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	if f.TargetRole == nil {
		f.TargetRole = []models.Role{}
	}
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.FAQ{}, fmt.Errorf("insert faq: %w", err)
	}
	return f, nil
}

// List returns up to models.MaxListResults FAQs. A non-empty role keeps
// only FAQs whose target_role contains it; the role is matched as given,
// unknown roles simply match nothing.
func (s *Store) List(ctx context.Context, role string) ([]models.FAQ, error) {
	filter := bson.M{}
	if role != "" {
		filter["target_role"] = bson.M{"$in": []string{role}}
	}

	cur, err := s.c.Find(ctx, filter, options.Find().SetLimit(models.MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("find faqs: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.FAQ{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode faqs: %w", err)
	}
	return out, nil
}
