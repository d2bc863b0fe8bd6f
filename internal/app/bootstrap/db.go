// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	auditstore "github.com/dalemusser/gliweb/internal/app/store/audit"
	gligroupstore "github.com/dalemusser/gliweb/internal/app/store/gligroups"
	"github.com/dalemusser/gliweb/internal/app/system/indexes"
	"github.com/dalemusser/gliweb/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// ConnectDB opens the Mongo client and, when configured, the Airtable
// table behind the GLI group store.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("mongo ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}

	if appCfg.AirtableEnabled() {
		table := gligroupstore.NewAirtableTable(appCfg.AirtableAccessToken, appCfg.AirtableBaseID, appCfg.AirtableGLITable)
		deps.GLIGroups = gligroupstore.New(table, logger)
		logger.Info("airtable GLI table configured",
			zap.String("base_id", appCfg.AirtableBaseID),
			zap.String("table", appCfg.AirtableGLITable))
	} else {
		logger.Warn("airtable not configured; /api/gli-groepen will answer 503")
	}

	return deps, nil
}

// EnsureSchema creates collections with their validators, then indexes.
// It is safe to run on every start.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	if err := auditstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("ensure audit indexes failed", zap.Error(err))
		return err
	}
	return nil
}
