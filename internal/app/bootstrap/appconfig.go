package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// Values come from GLIWEB_* environment variables, config files or flags
// (see LoadConfig). The unprefixed variable names used by earlier
// deployments (MONGO_URL, DB_NAME, AIRTABLE_*, JWT_SECRET, CORS_ORIGINS)
// are honoured when the prefixed key is left at its default.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string
	MongoDatabase string

	// Airtable holds the GLI group schedule. Leaving the token or base
	// empty disables /api/gli-groepen (503).
	AirtableAccessToken string
	AirtableBaseID      string
	AirtableGLITable    string

	// Bearer tokens
	JWTSecret string
	TokenTTL  time.Duration // 0 issues tokens without exp

	CORSOrigins []string

	LoginRateLimit int // login attempts per minute per client IP

	SeedOnce      bool // skip seeding once programs exist
	SeedAdminOnly bool // require an admin bearer on /api/admin/seed

	// Audit logging: "all", "db", "log" or "off"
	AuditLogAuth  string
	AuditLogAdmin string

	// Overrides for the Mongo call deadlines; zero keeps the default.
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}

// AirtableEnabled reports whether enough is configured to reach the
// GLI table.
func (c AppConfig) AirtableEnabled() bool {
	return c.AirtableAccessToken != "" && c.AirtableBaseID != ""
}
