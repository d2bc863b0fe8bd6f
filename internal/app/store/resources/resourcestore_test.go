package resourcestore_test

import (
	"fmt"
	"testing"
	"time"

	resourcestore "github.com/dalemusser/gliweb/internal/app/store/resources"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
)

func TestStore_ListForRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Resource{
		Title:      "Verwijsformulier",
		TargetRole: []models.Role{models.RoleVerwijzer, models.RoleProfessional},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Resource{
		Title:      "Beweegtips",
		TargetRole: []models.Role{models.RoleDeelnemer},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.ListForRole(ctx, models.RoleProfessional)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Verwijsformulier" {
		t.Errorf("professional: got %+v", got)
	}

	got, err = store.ListForRole(ctx, models.RoleInwoner)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("inwoner: expected empty list, got %+v", got)
	}
}

func TestStore_ListForRoleCapsResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs := make([]any, 0, models.MaxListResults+15)
	for i := 0; i < models.MaxListResults+5; i++ {
		docs = append(docs, models.Resource{ID: fmt.Sprintf("d%04d", i), Title: "Beweegtips", TargetRole: []models.Role{models.RoleDeelnemer}, CreatedAt: time.Now().UTC()})
	}
	for i := 0; i < 10; i++ {
		docs = append(docs, models.Resource{ID: fmt.Sprintf("v%04d", i), Title: "Verwijsformulier", TargetRole: []models.Role{models.RoleVerwijzer}, CreatedAt: time.Now().UTC()})
	}
	if _, err := db.Collection("resources").InsertMany(ctx, docs); err != nil {
		t.Fatalf("InsertMany failed: %v", err)
	}

	got, err := store.ListForRole(ctx, models.RoleDeelnemer)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(got) != models.MaxListResults {
		t.Errorf("deelnemer: got %d resources, want %d", len(got), models.MaxListResults)
	}
	for _, r := range got {
		if r.Title != "Beweegtips" {
			t.Fatalf("resource %s for another role returned", r.ID)
		}
	}

	got, err = store.ListForRole(ctx, models.RoleVerwijzer)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("verwijzer: got %d resources, want 10", len(got))
	}
}
