// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dalemusser/gliweb/internal/app/system/auditlog"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const (
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "gliweb"
	defaultGLITable      = "GLI Zeist"
	defaultCORSOrigins   = "*"
)

// appConfigKeys defines the configuration keys for gliweb.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, airtable_base_id, etc.
//   - Environment variables: GLIWEB_MONGO_URI, GLIWEB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: defaultMongoURI, Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: defaultMongoDatabase, Desc: "MongoDB database name"},

	// Airtable (GLI group schedule)
	{Name: "airtable_access_token", Default: "", Desc: "Airtable personal access token"},
	{Name: "airtable_base_id", Default: "", Desc: "Airtable base id (app...)"},
	{Name: "airtable_gli_table", Default: defaultGLITable, Desc: "Airtable table holding the GLI groups"},

	// Bearer tokens
	{Name: "jwt_secret", Default: auth.DefaultSecret, Desc: "HS256 signing secret (must be changed in production)"},
	{Name: "token_ttl", Default: "0s", Desc: "Token lifetime (e.g. 24h); 0 issues tokens without expiry"},

	{Name: "cors_origins", Default: defaultCORSOrigins, Desc: "Comma-separated allowed CORS origins"},

	{Name: "login_rate_limit", Default: 10, Desc: "Login attempts per minute per client IP (0 disables)"},

	// Seeding
	{Name: "seed_once", Default: false, Desc: "Make /api/admin/seed a no-op once programs exist"},
	{Name: "seed_admin_only", Default: false, Desc: "Require an admin bearer token on /api/admin/seed"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: auditlog.ToAll, Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: auditlog.ToAll, Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Mongo call deadlines
	{Name: "timeout_short", Default: "", Desc: "Deadline for single-document Mongo calls (default 5s)"},
	{Name: "timeout_medium", Default: "", Desc: "Deadline for Mongo list reads (default 10s)"},
	{Name: "timeout_long", Default: "", Desc: "Deadline for seeding (default 30s)"},
}

// legacyEnv maps app keys to the unprefixed variables older deployments
// set. A legacy value is used only when the key still holds its default.
var legacyEnv = []struct {
	key string
	env string
}{
	{"mongo_uri", "MONGO_URL"},
	{"mongo_database", "DB_NAME"},
	{"airtable_access_token", "AIRTABLE_ACCESS_TOKEN"},
	{"airtable_base_id", "AIRTABLE_BASE_ID"},
	{"airtable_gli_table", "AIRTABLE_GLI_TABLE"},
	{"jwt_secret", "JWT_SECRET"},
	{"cors_origins", "CORS_ORIGINS"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env and config files,
// GLIWEB_* environment variables and flags, merged with precedence
// flags > env > files > defaults. The legacy variables in legacyEnv are
// applied afterwards.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GLIWEB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	raw := map[string]string{}
	for _, l := range legacyEnv {
		raw[l.key] = appValues.String(l.key)
	}
	applyLegacyEnv(raw, os.LookupEnv, logger)

	appCfg := AppConfig{
		MongoURI:      raw["mongo_uri"],
		MongoDatabase: raw["mongo_database"],

		AirtableAccessToken: raw["airtable_access_token"],
		AirtableBaseID:      raw["airtable_base_id"],
		AirtableGLITable:    raw["airtable_gli_table"],

		JWTSecret: raw["jwt_secret"],
		TokenTTL:  appValues.Duration("token_ttl", 0),

		CORSOrigins: splitOrigins(raw["cors_origins"]),

		LoginRateLimit: appValues.Int("login_rate_limit"),

		SeedOnce:      appValues.Bool("seed_once"),
		SeedAdminOnly: appValues.Bool("seed_admin_only"),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
		TimeoutLong:   appValues.Duration("timeout_long", 0),
	}

	return coreCfg, appCfg, nil
}

// applyLegacyEnv overwrites values still at their default with the
// matching legacy variable, when that variable is set and non-empty.
func applyLegacyEnv(values map[string]string, lookup func(string) (string, bool), logger *zap.Logger) {
	defaults := map[string]string{}
	for _, k := range appConfigKeys {
		if s, ok := k.Default.(string); ok {
			defaults[k.Name] = s
		}
	}
	for _, l := range legacyEnv {
		v, ok := lookup(l.env)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if values[l.key] != defaults[l.key] {
			continue
		}
		values[l.key] = strings.TrimSpace(v)
		logger.Info("using legacy environment variable", zap.String("env", l.env), zap.String("key", l.key))
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{defaultCORSOrigins}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return errors.New("mongo_database must not be empty")
	}

	if appCfg.JWTSecret == "" {
		return errors.New("jwt_secret must not be empty")
	}
	if appCfg.JWTSecret == auth.DefaultSecret && coreCfg.Env == "prod" {
		return errors.New("jwt_secret is still the built-in default; set GLIWEB_JWT_SECRET for production")
	}
	if appCfg.TokenTTL < 0 {
		return fmt.Errorf("token_ttl must not be negative, got %s", appCfg.TokenTTL)
	}

	if appCfg.AirtableEnabled() && strings.TrimSpace(appCfg.AirtableGLITable) == "" {
		return errors.New("airtable_gli_table must be set when Airtable is configured")
	}

	if appCfg.LoginRateLimit < 0 {
		return fmt.Errorf("login_rate_limit must not be negative, got %d", appCfg.LoginRateLimit)
	}

	for name, v := range map[string]string{"audit_log_auth": appCfg.AuditLogAuth, "audit_log_admin": appCfg.AuditLogAdmin} {
		switch v {
		case auditlog.ToAll, auditlog.ToDB, auditlog.ToLog, auditlog.Off:
		default:
			return fmt.Errorf("%s must be one of all, db, log, off; got %q", name, v)
		}
	}

	for name, d := range map[string]time.Duration{
		"timeout_short":  appCfg.TimeoutShort,
		"timeout_medium": appCfg.TimeoutMedium,
		"timeout_long":   appCfg.TimeoutLong,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}

	return nil
}
