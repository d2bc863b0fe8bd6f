package eventstore_test

import (
	"testing"
	"time"

	eventstore "github.com/dalemusser/gliweb/internal/app/store/events"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
)

func TestStore_ListForRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	when := time.Date(2024, 4, 10, 19, 0, 0, 0, time.UTC)
	if _, err := store.Create(ctx, models.Event{
		Title:          "Informatieavond",
		Date:           when,
		TargetAudience: []models.Role{models.RoleInwoner, models.RoleDeelnemer},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.ListForRole(ctx, models.RoleDeelnemer)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if !got[0].Date.Equal(when) {
		t.Errorf("date: got %v, want %v", got[0].Date, when)
	}

	got, err = store.ListForRole(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("admin: expected no events, got %d", len(got))
	}
}
