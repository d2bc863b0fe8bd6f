// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	authapifeature "github.com/dalemusser/gliweb/internal/app/features/authapi"
	catalogfeature "github.com/dalemusser/gliweb/internal/app/features/catalog"
	contactfeature "github.com/dalemusser/gliweb/internal/app/features/contact"
	gligroupsfeature "github.com/dalemusser/gliweb/internal/app/features/gligroups"
	healthfeature "github.com/dalemusser/gliweb/internal/app/features/health"
	resourcesfeature "github.com/dalemusser/gliweb/internal/app/features/resources"
	seedfeature "github.com/dalemusser/gliweb/internal/app/features/seed"
	auditstore "github.com/dalemusser/gliweb/internal/app/store/audit"
	coachstore "github.com/dalemusser/gliweb/internal/app/store/coaches"
	contactstore "github.com/dalemusser/gliweb/internal/app/store/contacts"
	eventstore "github.com/dalemusser/gliweb/internal/app/store/events"
	faqstore "github.com/dalemusser/gliweb/internal/app/store/faqs"
	programstore "github.com/dalemusser/gliweb/internal/app/store/programs"
	resourcestore "github.com/dalemusser/gliweb/internal/app/store/resources"
	userstore "github.com/dalemusser/gliweb/internal/app/store/users"
	"github.com/dalemusser/gliweb/internal/app/system/auditlog"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/router"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. The JSON API lives under /api; /health
// sits outside it for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	signer, err := auth.NewSigner(appCfg.JWTSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token signer init failed", zap.Error(err))
		return nil, err
	}
	users := userstore.New(db)
	authn := auth.NewAuthenticator(signer, users, logger)

	audit := auditlog.New(auditstore.New(db), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	var limiter *ratelimit.LoginLimiter
	if appCfg.LoginRateLimit > 0 {
		limiter = ratelimit.NewLoginLimiter(appCfg.LoginRateLimit, 10*time.Minute)
	}

	catalog, err := seedfeature.LoadCatalog()
	if err != nil {
		logger.Error("seed catalog load failed", zap.Error(err))
		return nil, err
	}

	// Request IDs, real IP, recovery, body limit, metrics, access log and
	// JSON 404/405 come from the WAFFLE router.
	r := router.New(coreCfg, logger)
	r.Use(cors.Handler(corsOptions(appCfg.CORSOrigins)))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.GLIGroups != nil, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	api := chi.NewRouter()

	// Root info, programmes, coaches and FAQs
	catalogHandler := catalogfeature.NewHandler(programstore.New(db), coachstore.New(db), faqstore.New(db), logger)
	api.Mount("/", catalogfeature.Routes(catalogHandler))

	authHandler := authapifeature.NewHandler(users, signer, limiter, audit, logger)
	api.Mount("/auth", authapifeature.Routes(authHandler, authn))

	// GLI groups (Airtable)
	groupsHandler := gligroupsfeature.NewHandler(deps.GLIGroups, audit, logger)
	api.Mount("/gli-groepen", gligroupsfeature.Routes(groupsHandler))

	// Role-scoped member content
	memberHandler := resourcesfeature.NewMemberHandler(resourcestore.New(db), eventstore.New(db), logger)
	api.Mount("/resources", resourcesfeature.ResourceRoutes(memberHandler, authn))
	api.Mount("/events", resourcesfeature.EventRoutes(memberHandler, authn))

	contactHandler := contactfeature.NewHandler(contactstore.New(db), logger)
	api.Mount("/contact", contactfeature.Routes(contactHandler))

	seedHandler := seedfeature.NewHandler(catalog, programstore.New(db), coachstore.New(db), faqstore.New(db), appCfg.SeedOnce, audit, logger)
	api.Mount("/admin", seedfeature.Routes(seedHandler, authn, appCfg.SeedAdminOnly))

	r.Mount("/api", api)

	return r, nil
}

// corsOptions allows credentialed requests from the configured origins.
// A "*" entry reflects the caller's origin, since browsers reject a
// literal wildcard alongside credentials.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}
	for _, o := range origins {
		if o == "*" {
			opts.AllowedOrigins = nil
			opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
			break
		}
	}
	return opts
}
