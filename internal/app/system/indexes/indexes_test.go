package indexes_test

import (
	"context"
	"testing"

	"github.com/dalemusser/gliweb/internal/app/system/indexes"
	"github.com/dalemusser/gliweb/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexNames(t *testing.T, ctx context.Context, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes on %s failed: %v", coll, err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"users":            {"uniq_users_email", "idx_users_role"},
		"programs":         {"idx_programs_name"},
		"resources":        {"idx_resources_target_role"},
		"events":           {"idx_events_target_audience", "idx_events_date"},
		"faqs":             {"idx_faqs_target_role"},
		"contact_requests": {"idx_contact_requests_created_at"},
	}
	for coll, want := range expected {
		names := indexNames(t, ctx, db, coll)
		for _, name := range want {
			if !names[name] {
				t.Errorf("expected index %q to exist on %s collection", name, coll)
			}
		}
	}
}

func TestEnsureAll_RenamesIndexWithSameKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A pre-existing index on the same key under a legacy name.
	_, err := db.Collection("faqs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "target_role", Value: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOne failed: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, ctx, db, "faqs")
	if !names["idx_faqs_target_role"] {
		t.Error("expected idx_faqs_target_role after reconciliation")
	}
	if names["target_role_1"] {
		t.Error("legacy index name should have been dropped")
	}
}

func TestEnsureAll_UniqueIndexEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	users := db.Collection("users")
	if _, err := users.InsertOne(ctx, bson.M{"_id": "a", "email": "dup@example.com"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := users.InsertOne(ctx, bson.M{"_id": "b", "email": "dup@example.com"}); err == nil {
		t.Error("expected duplicate email insert to fail")
	}
}

func TestEnsureAll_DuplicatesBlockUniqueIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	users := db.Collection("users")
	for _, id := range []string{"a", "b"} {
		if _, err := users.InsertOne(ctx, bson.M{"_id": id, "email": "dup@example.com"}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	if err := indexes.EnsureAll(ctx, db); err == nil {
		t.Fatal("expected EnsureAll to report the duplicate emails")
	}
}
