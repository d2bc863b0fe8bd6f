package seed_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/gliweb/internal/app/features/seed"
	coachstore "github.com/dalemusser/gliweb/internal/app/store/coaches"
	faqstore "github.com/dalemusser/gliweb/internal/app/store/faqs"
	programstore "github.com/dalemusser/gliweb/internal/app/store/programs"
	userstore "github.com/dalemusser/gliweb/internal/app/store/users"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database, once bool) *seed.Handler {
	t.Helper()
	cat, err := seed.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return seed.NewHandler(cat, programstore.New(db), coachstore.New(db), faqstore.New(db), once, nil, zap.NewNop())
}

func post(h http.Handler, token string) *testutil.ResponseRecorder {
	req := testutil.NewJSONRequest(http.MethodPost, "/seed", "")
	if token != "" {
		req = testutil.WithBearer(req, token)
	}
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoadCatalog(t *testing.T) {
	cat, err := seed.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.Programs) != 3 || len(cat.Coaches) != 3 || len(cat.FAQs) != 3 {
		t.Fatalf("got %d programs, %d coaches, %d faqs", len(cat.Programs), len(cat.Coaches), len(cat.FAQs))
	}
	if cat.Programs[0].Name != "BeweegKuur" || len(cat.Programs[0].FocusAreas) != 4 {
		t.Errorf("first program = %+v", cat.Programs[0])
	}
	if cat.Coaches[2].Specialization != "Voeding & Beweging" {
		t.Errorf("coach specialization = %q", cat.Coaches[2].Specialization)
	}
	if got := cat.FAQs[1].TargetRole; len(got) != 1 || got[0] != models.RoleVerwijzer {
		t.Errorf("faq target_role = %v", got)
	}
}

func TestHandleSeed_AppendsEachTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	router := seed.Routes(newHandler(t, db, false), nil, false)

	for i := 0; i < 2; i++ {
		rec := post(router, "")
		rec.AssertStatus(t, http.StatusOK)
		rec.AssertContains(t, "Data seeded successfully")
	}

	n, err := programstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 6 {
		t.Errorf("programs after two seeds = %d, want 6", n)
	}

	faqs, err := faqstore.New(db).List(ctx, "verwijzer")
	if err != nil {
		t.Fatalf("List faqs: %v", err)
	}
	if len(faqs) != 2 {
		t.Errorf("verwijzer faqs = %d, want 2", len(faqs))
	}
}

func TestHandleSeed_Once(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	router := seed.Routes(newHandler(t, db, true), nil, false)

	post(router, "").AssertStatus(t, http.StatusOK)
	post(router, "").AssertStatus(t, http.StatusOK)

	n, err := programstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("programs = %d, want 3", n)
	}
	coaches, err := coachstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List coaches: %v", err)
	}
	if len(coaches) != 3 {
		t.Errorf("coaches = %d, want 3", len(coaches))
	}
}

func TestRoutes_AdminOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, "Beheer", "admin@example.nl", "geheim123", models.RoleAdmin)
	member := fx.CreateUser(ctx, "Inwoner", "inwoner@example.nl", "geheim123", models.RoleInwoner)

	signer := testutil.NewSigner(t)
	authn := auth.NewAuthenticator(signer, userstore.New(db), zap.NewNop())
	router := seed.Routes(newHandler(t, db, false), authn, true)

	post(router, "").AssertStatus(t, http.StatusUnauthorized)
	post(router, testutil.TokenFor(t, member)).AssertStatus(t, http.StatusForbidden)
	post(router, testutil.TokenFor(t, admin)).AssertStatus(t, http.StatusOK)
}
