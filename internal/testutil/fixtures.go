package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call a handler method directly.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures inserts test documents straight into the collections.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s: %v", coll, err)
	}
}

// CreateUser stores an active user whose password is password.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password string, role models.Role) models.User {
	f.t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
		PasswordHash: hash,
	}
	f.insert(ctx, "users", u)
	return u
}

func (f *Fixtures) CreateProgram(ctx context.Context, name string) models.Program {
	f.t.Helper()
	p := models.Program{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name + " programma",
		Duration:    "6 maanden",
		FocusAreas:  []string{"Beweging"},
		TargetGroup: "Volwassenen",
		CreatedAt:   time.Now().UTC(),
	}
	f.insert(ctx, "programs", p)
	return p
}

func (f *Fixtures) CreateResource(ctx context.Context, title string, roles ...models.Role) models.Resource {
	f.t.Helper()
	r := models.Resource{
		ID:          uuid.NewString(),
		Title:       title,
		Description: title,
		Category:    "document",
		Content:     "https://example.com/" + title,
		TargetRole:  append([]models.Role{}, roles...),
		CreatedAt:   time.Now().UTC(),
	}
	f.insert(ctx, "resources", r)
	return r
}

func (f *Fixtures) CreateEvent(ctx context.Context, title string, roles ...models.Role) models.Event {
	f.t.Helper()
	e := models.Event{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    title,
		Date:           time.Date(2024, 4, 10, 19, 0, 0, 0, time.UTC),
		Location:       "Zeist Centrum",
		TargetAudience: append([]models.Role{}, roles...),
		CreatedAt:      time.Now().UTC(),
	}
	f.insert(ctx, "events", e)
	return e
}

func (f *Fixtures) CreateFAQ(ctx context.Context, question string, roles ...models.Role) models.FAQ {
	f.t.Helper()
	q := models.FAQ{
		ID:         uuid.NewString(),
		Question:   question,
		Answer:     "Antwoord op " + question,
		Category:   "algemeen",
		TargetRole: append([]models.Role{}, roles...),
		CreatedAt:  time.Now().UTC(),
	}
	f.insert(ctx, "faqs", q)
	return q
}
