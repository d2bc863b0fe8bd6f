package resources_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/gliweb/internal/app/features/resources"
	eventstore "github.com/dalemusser/gliweb/internal/app/store/events"
	resourcestore "github.com/dalemusser/gliweb/internal/app/store/resources"
	userstore "github.com/dalemusser/gliweb/internal/app/store/users"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouters(t *testing.T, db *mongo.Database) (http.Handler, http.Handler) {
	t.Helper()
	logger := zap.NewNop()
	h := resources.NewMemberHandler(resourcestore.New(db), eventstore.New(db), logger)
	authn := auth.NewAuthenticator(testutil.NewSigner(t), userstore.New(db), logger)
	return resources.ResourceRoutes(h, authn), resources.EventRoutes(h, authn)
}

func get(h http.Handler, token string) *testutil.ResponseRecorder {
	req := testutil.NewJSONRequest(http.MethodGet, "/", "")
	if token != "" {
		testutil.WithBearer(req, token)
	}
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeResources_FiltersByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateResource(ctx, "Verwijsformulier", models.RoleVerwijzer)
	fx.CreateResource(ctx, "Beweegschema", models.RoleDeelnemer, models.RoleInwoner)
	u := fx.CreateUser(ctx, "Dr. Bos", "bos@example.com", "pw", models.RoleVerwijzer)

	resRouter, _ := newRouters(t, db)
	rec := get(resRouter, testutil.TokenFor(t, u))
	rec.AssertStatus(t, http.StatusOK)

	var items []models.Resource
	rec.Decode(t, &items)
	if len(items) != 1 || items[0].Title != "Verwijsformulier" {
		t.Errorf("got %+v", items)
	}
}

func TestServeResources_NoMatchIsEmptyList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateResource(ctx, "Alleen verwijzers", models.RoleVerwijzer)
	u := fx.CreateUser(ctx, "Admin", "admin@example.com", "pw", models.RoleAdmin)

	resRouter, evRouter := newRouters(t, db)
	for _, h := range []http.Handler{resRouter, evRouter} {
		rec := get(h, testutil.TokenFor(t, u))
		rec.AssertStatus(t, http.StatusOK)
		if body := rec.Body.String(); body != "[]\n" {
			t.Errorf("expected [], got %q", body)
		}
	}
}

func TestServeEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateEvent(ctx, "Informatieavond", models.RoleInwoner)
	fx.CreateEvent(ctx, "Intervisie", models.RoleProfessional)
	u := fx.CreateUser(ctx, "Inwoner", "inwoner@example.com", "pw", models.RoleInwoner)

	_, evRouter := newRouters(t, db)
	rec := get(evRouter, testutil.TokenFor(t, u))
	rec.AssertStatus(t, http.StatusOK)

	var items []models.Event
	rec.Decode(t, &items)
	if len(items) != 1 || items[0].Title != "Informatieavond" {
		t.Errorf("got %+v", items)
	}
}

func TestRequiresBearer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	resRouter, evRouter := newRouters(t, db)

	for _, h := range []http.Handler{resRouter, evRouter} {
		rec := get(h, "")
		rec.AssertStatus(t, http.StatusUnauthorized)
		if d := rec.Detail(t); d != "Not authenticated" {
			t.Errorf("detail: %q", d)
		}
	}
}
