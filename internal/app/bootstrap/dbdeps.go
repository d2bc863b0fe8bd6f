package bootstrap

import (
	gligroupstore "github.com/dalemusser/gliweb/internal/app/store/gligroups"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the backends opened by ConnectDB.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// GLIGroups is nil when Airtable is not configured.
	GLIGroups *gligroupstore.Store
}
