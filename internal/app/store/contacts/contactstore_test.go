package contactstore_test

import (
	"testing"

	contactstore "github.com/dalemusser/gliweb/internal/app/store/contacts"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.ContactRequest{
		Name:        "Piet",
		Email:       "piet@example.com",
		Message:     "Graag meer informatie",
		RequestType: "info",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("expected id and created_at, got %+v", created)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Phone != nil {
		t.Errorf("phone: expected nil, got %v", *got.Phone)
	}
	if got.Message != "Graag meer informatie" {
		t.Errorf("message: got %q", got.Message)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count: got %d, want 1", n)
	}
}

func TestStore_Create_WithPhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	phone := "+31 30 123 4567"
	created, err := store.Create(ctx, models.ContactRequest{Name: "A", Email: "a@example.com", Phone: &phone})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Phone == nil || *got.Phone != phone {
		t.Errorf("phone: got %v", got.Phone)
	}
}
