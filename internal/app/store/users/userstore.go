package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/normalize"
	"github.com/dalemusser/gliweb/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrNotFound is auth.ErrUserNotFound so the store satisfies auth.UserLookup.
	ErrNotFound = auth.ErrUserNotFound

	errBadRole = errors.New(`role must be "inwoner"|"deelnemer"|"verwijzer"|"professional"|"admin"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmail looks a user up by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// EmailExists reports whether an account uses email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := s.CountByEmail(ctx, email)
	return n > 0, err
}

// Create inserts u with a fresh id and creation time in a single write.
// PasswordHash must already be set. The unique email index turns a
// concurrent duplicate into ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)
	role, ok := models.ParseRole(string(u.Role))
	if !ok {
		return models.User{}, errBadRole
	}
	u.Role = role
	u.CreatedAt = time.Now().UTC()
	u.IsActive = true

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// CountByEmail returns how many accounts use email; registration keeps
// it at one or zero.
func (s *Store) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"email": normalize.Email(email)})
	if err != nil {
		return 0, fmt.Errorf("count users by email: %w", err)
	}
	return n, nil
}
