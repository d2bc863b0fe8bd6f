// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/gliweb/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the app's collections (if missing) and attaches
// $jsonSchema validators. On servers that don't support
// collMod/validators (e.g. some DocumentDB versions), we log and skip.
//
// Validators only pin the shape the stores write; request-level rules
// live in inputval.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if unsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", usersSchema())
	ensure("programs", programsSchema())
	ensure("coaches", coachesSchema())
	ensure("faqs", faqsSchema())
	ensure("resources", resourcesSchema())
	ensure("events", eventsSchema())
	ensure("contact_requests", contactRequestsSchema())

	// Written by the audit store; no validator.
	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureCollection creates name unless it already exists. It reports
// whether it created the collection.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err == nil && len(names) > 0 {
		return false, nil
	}
	// Listing can fail on restricted users; creating and tolerating
	// NamespaceExists covers that and concurrent starts.
	if err := db.CreateCollection(ctx, name); err != nil {
		if hasCode(err, 48) || containsAny(err, "already exists", "namespace exists") {
			return false, nil
		}
		zap.L().Warn("create collection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

// setValidator attaches schema with moderate validation: documents that
// already violate it can still be updated, new inserts are checked.
func setValidator(ctx context.Context, db *mongo.Database, name string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}
	zap.L().Debug("validator set", zap.String("collection", name))
	return nil
}

// unsupported reports a server without collMod validators
// (CommandNotFound 59, CommandNotSupported 115).
func unsupported(err error) bool {
	return hasCode(err, 59, 115) || containsAny(err, "no such command", "not implemented", "not supported")
}

func hasCode(err error, codes ...int32) bool {
	var ce mongo.CommandError
	if !errors.As(err, &ce) {
		return false
	}
	for _, c := range codes {
		if ce.Code == c {
			return true
		}
	}
	return false
}

func containsAny(err error, subs ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range subs {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func roleEnum() bson.A {
	out := bson.A{}
	for _, r := range models.Roles {
		out = append(out, string(r))
	}
	return out
}

func roleList() bson.M {
	return bson.M{"bsonType": "array", "items": bson.M{"enum": roleEnum()}}
}

func stringList() bson.M {
	return bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "email", "name", "role", "password", "created_at"},
			"properties": bson.M{
				"_id":        bson.M{"bsonType": "string"},
				"email":      nonBlank,
				"name":       bson.M{"bsonType": "string"},
				"role":       bson.M{"enum": roleEnum()},
				"password":   nonBlank,
				"is_active":  bson.M{"bsonType": "bool"},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func programsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "name", "created_at"},
			"properties": bson.M{
				"name":         nonBlank,
				"description":  bson.M{"bsonType": "string"},
				"duration":     bson.M{"bsonType": "string"},
				"focus_areas":  stringList(),
				"target_group": bson.M{"bsonType": "string"},
				"created_at":   bson.M{"bsonType": "date"},
			},
		},
	}
}

func coachesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "name", "created_at"},
			"properties": bson.M{
				"name":           nonBlank,
				"specialization": bson.M{"bsonType": "string"},
				"phone":          bson.M{"bsonType": "string"},
				"email":          bson.M{"bsonType": "string"},
				"location":       bson.M{"bsonType": "string"},
				"programs":       stringList(),
				"created_at":     bson.M{"bsonType": "date"},
			},
		},
	}
}

func faqsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "question", "answer", "target_role"},
			"properties": bson.M{
				"question":    nonBlank,
				"answer":      bson.M{"bsonType": "string"},
				"category":    bson.M{"bsonType": "string"},
				"target_role": roleList(),
				"created_at":  bson.M{"bsonType": "date"},
			},
		},
	}
}

func resourcesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "title", "target_role"},
			"properties": bson.M{
				"title":       nonBlank,
				"description": bson.M{"bsonType": "string"},
				"category":    bson.M{"bsonType": "string"},
				"content":     bson.M{"bsonType": "string"},
				"target_role": roleList(),
				"created_at":  bson.M{"bsonType": "date"},
			},
		},
	}
}

func eventsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "title", "date", "target_audience"},
			"properties": bson.M{
				"title":           nonBlank,
				"description":     bson.M{"bsonType": "string"},
				"date":            bson.M{"bsonType": "date"},
				"location":        bson.M{"bsonType": "string"},
				"target_audience": roleList(),
				"created_at":      bson.M{"bsonType": "date"},
			},
		},
	}
}

func contactRequestsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "name", "email", "message", "request_type", "created_at"},
			"properties": bson.M{
				"name":         bson.M{"bsonType": "string"},
				"email":        nonBlank,
				"phone":        bson.M{"bsonType": "string"},
				"message":      bson.M{"bsonType": "string"},
				"request_type": bson.M{"bsonType": "string"},
				"created_at":   bson.M{"bsonType": "date"},
			},
		},
	}
}
