package testutil

import (
	"testing"

	"github.com/dalemusser/gliweb/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditEvents reads the stored audit events matching filter, newest first.
func AuditEvents(t *testing.T, db *mongo.Database, filter bson.M) []audit.Event {
	t.Helper()
	ctx, cancel := TestContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := db.Collection("audit_events").Find(ctx, filter, opts)
	if err != nil {
		t.Fatalf("find audit events: %v", err)
	}
	var events []audit.Event
	if err := cur.All(ctx, &events); err != nil {
		t.Fatalf("decode audit events: %v", err)
	}
	return events
}
