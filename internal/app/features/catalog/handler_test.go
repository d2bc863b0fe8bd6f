package catalog_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/gliweb/internal/app/features/catalog"
	coachstore "github.com/dalemusser/gliweb/internal/app/store/coaches"
	faqstore "github.com/dalemusser/gliweb/internal/app/store/faqs"
	programstore "github.com/dalemusser/gliweb/internal/app/store/programs"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(db *mongo.Database) http.Handler {
	h := catalog.NewHandler(programstore.New(db), coachstore.New(db), faqstore.New(db), zap.NewNop())
	return catalog.Routes(h)
}

func get(h http.Handler, target string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodGet, target, ""))
	return rec
}

func TestServeRoot(t *testing.T) {
	h := catalog.NewHandler(nil, nil, nil, zap.NewNop())
	rec := testutil.NewRecorder()
	h.ServeRoot(rec, testutil.NewJSONRequest(http.MethodGet, "/api/", ""))

	rec.AssertStatus(t, http.StatusOK)
	var body map[string]string
	rec.Decode(t, &body)
	if body["message"] != "GLI Webapp API" || body["version"] != "1.0.0" {
		t.Errorf("got %v", body)
	}
}

func TestServePrograms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	router := newRouter(db)

	rec := get(router, "/programs")
	rec.AssertStatus(t, http.StatusOK)
	if rec.Body.String() != "[]\n" {
		t.Errorf("empty collection should list as [], got %q", rec.Body.String())
	}

	fx.CreateProgram(ctx, "COOL")
	rec = get(router, "/programs")
	var items []models.Program
	rec.Decode(t, &items)
	if len(items) != 1 || items[0].Name != "COOL" {
		t.Errorf("got %+v", items)
	}
}

func TestServeFAQs_RoleFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateFAQ(ctx, "Wat is de GLI?", models.RoleInwoner, models.RoleDeelnemer)
	fx.CreateFAQ(ctx, "Hoe verwijs ik?", models.RoleVerwijzer)

	router := newRouter(db)

	tests := []struct {
		target string
		want   int
	}{
		{"/faqs", 2},
		{"/faqs?role=deelnemer", 1},
		{"/faqs?role=verwijzer", 1},
		{"/faqs?role=professional", 0},
	}
	for _, tt := range tests {
		rec := get(router, tt.target)
		rec.AssertStatus(t, http.StatusOK)
		var items []models.FAQ
		rec.Decode(t, &items)
		if len(items) != tt.want {
			t.Errorf("%s: got %d faqs, want %d", tt.target, len(items), tt.want)
		}
	}
}

func TestServeCoaches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := coachstore.New(db).Create(ctx, models.Coach{Name: "Lisa de Wit"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := get(newRouter(db), "/coaches")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Lisa de Wit")
}
