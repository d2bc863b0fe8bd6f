// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after DB connections and schema setup are complete, but
// before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	jsonutil.SetLogger(logger)

	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})
	t := timeouts.Current()
	logger.Info("mongo call deadlines",
		zap.Duration("short", t.Short),
		zap.Duration("medium", t.Medium),
		zap.Duration("long", t.Long))

	if appCfg.JWTSecret == auth.DefaultSecret {
		logger.Warn("jwt_secret is the built-in default; tokens can be forged by anyone who knows it")
	}
	if appCfg.TokenTTL == 0 {
		logger.Info("bearer tokens are issued without expiry")
	}

	logger.Info("gliweb configured",
		zap.String("env", coreCfg.Env),
		zap.Strings("cors_origins", appCfg.CORSOrigins),
		zap.Int("login_rate_limit", appCfg.LoginRateLimit),
		zap.Bool("seed_once", appCfg.SeedOnce),
		zap.Bool("seed_admin_only", appCfg.SeedAdminOnly),
		zap.Bool("airtable", deps.GLIGroups != nil))
	return nil
}
