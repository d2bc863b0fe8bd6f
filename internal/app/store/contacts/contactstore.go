package contactstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is write-only from the API's point of view; Count exists for
// tests and operational checks.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_requests")}
}

func (s *Store) Create(ctx context.Context, cr models.ContactRequest) (models.ContactRequest, error) {
	cr.ID = uuid.NewString()
	cr.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, cr); err != nil {
		return models.ContactRequest{}, fmt.Errorf("insert contact request: %w", err)
	}
	return cr, nil
}

// GetByID loads one request.
func (s *Store) GetByID(ctx context.Context, id string) (models.ContactRequest, error) {
	var cr models.ContactRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cr); err != nil {
		return models.ContactRequest{}, err
	}
	return cr, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
