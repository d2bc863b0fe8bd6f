package gligroups_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/gliweb/internal/app/features/gligroups"
	gligroupstore "github.com/dalemusser/gliweb/internal/app/store/gligroups"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/gliweb/internal/testutil"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (http.Handler, *testutil.FakeTable) {
	t.Helper()
	table := testutil.NewFakeTable()
	store := gligroupstore.New(table, zap.NewNop())
	return gligroups.Routes(gligroups.NewHandler(store, nil, zap.NewNop())), table
}

func seedRow(table *testutil.FakeTable, provider, typ, start, number, status string) string {
	return table.Put(map[string]any{
		gligroupstore.FieldProvider:    provider,
		gligroupstore.FieldType:        typ,
		gligroupstore.FieldStartDate:   start,
		gligroupstore.FieldGroupNumber: number,
		gligroupstore.FieldStatus:      status,
	}).ID
}

func do(h http.Handler, method, target, body string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewJSONRequest(method, target, body))
	return rec
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	h, _ := newRouter(t)

	rec := do(h, http.MethodPost, "/", `{
		"gli_aanbieder": "Zorg4Zeist",
		"type_gli": "Slimmer",
		"startdatum_groep": "2024-03-01",
		"einddatum_groep": "2024-09-01",
		"groepnummer": "BK-2024-001",
		"status": "Inschrijving open"
	}`)
	rec.AssertStatus(t, http.StatusOK)

	var created models.GLIGroup
	rec.Decode(t, &created)
	if created.ID == "" || created.CreatedTime == "" {
		t.Fatalf("expected id and created_time, got %+v", created)
	}

	rec = do(h, http.MethodGet, "/"+created.ID, "")
	rec.AssertStatus(t, http.StatusOK)

	var got models.GLIGroup
	rec.Decode(t, &got)
	if got.Provider != "Zorg4Zeist" || got.Type != models.GLITypeSlimmer ||
		got.GroupNumber != "BK-2024-001" || got.Status != models.StatusOpen {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.StartDate.String() != "2024-03-01" || got.EndDate == nil || got.EndDate.String() != "2024-09-01" {
		t.Errorf("dates: start %s end %v", got.StartDate, got.EndDate)
	}
}

func TestCreate_Validation(t *testing.T) {
	h, table := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"gli_aanbieder":`},
		{"missing fields", `{"gli_aanbieder":"X"}`},
		{"bad enum", `{"gli_aanbieder":"X","type_gli":"Yoga","startdatum_groep":"2024-03-01","groepnummer":"1","status":"Vol"}`},
		{"bad date", `{"gli_aanbieder":"X","type_gli":"Cool","startdatum_groep":"01-03-2024","groepnummer":"1","status":"Vol"}`},
		{"end before start", `{"gli_aanbieder":"X","type_gli":"Cool","startdatum_groep":"2024-03-01","einddatum_groep":"2024-02-01","groepnummer":"1","status":"Vol"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/", tt.body)
			rec.AssertStatus(t, http.StatusUnprocessableEntity)
			rec.AssertContains(t, `"detail":[`)
		})
	}
	if table.Len() != 0 {
		t.Errorf("invalid bodies must not reach the table, got %d records", table.Len())
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	h, table := newRouter(t)
	table.CreateErr = errors.New("airtable down")

	rec := do(h, http.MethodPost, "/", `{"gli_aanbieder":"X","type_gli":"Cool","startdatum_groep":"2024-03-01","groepnummer":"1","status":"Vol"}`)
	rec.AssertStatus(t, http.StatusServiceUnavailable)
	if d := rec.Detail(t); d != "Kan GLI groep niet aanmaken" {
		t.Errorf("detail: %q", d)
	}
}

func TestList_Filters(t *testing.T) {
	h, table := newRouter(t)
	seedRow(table, "Zorg4Zeist", "Cool", "2024-05-01", "2", "Vol")
	seedRow(table, "Zorg4Zeist", "Cool", "2024-01-01", "1", "Vol")
	seedRow(table, "Fysio Noord", "Slimmer", "2024-01-01", "3", "Gestart")

	rec := do(h, http.MethodGet, "/?gli_type=Cool&aanbieder=Zorg4Zeist", "")
	rec.AssertStatus(t, http.StatusOK)

	var groups []models.GLIGroup
	rec.Decode(t, &groups)
	if len(groups) != 2 || groups[0].GroupNumber != "1" || groups[1].GroupNumber != "2" {
		t.Errorf("got %+v", groups)
	}
}

func TestList_InvalidQuery(t *testing.T) {
	h, table := newRouter(t)

	rec := do(h, http.MethodGet, "/?status=Bijna", "")
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	if len(table.Formulas) != 0 {
		t.Error("invalid query should not reach the table")
	}
}

func TestList_StoreFailure(t *testing.T) {
	h, table := newRouter(t)
	table.ListErr = errors.New("boom")

	rec := do(h, http.MethodGet, "/", "")
	rec.AssertStatus(t, http.StatusServiceUnavailable)
	if d := rec.Detail(t); d != "Kan GLI groepen niet ophalen uit Airtable" {
		t.Errorf("detail: %q", d)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("store errors must not leak into the response")
	}
}

func TestActive_NotShadowedByID(t *testing.T) {
	h, table := newRouter(t)
	seedRow(table, "A", "Cool", "2024-01-01", "1", "Gestart")
	seedRow(table, "A", "Cool", "2024-01-01", "2", "Afgerond")

	rec := do(h, http.MethodGet, "/actief", "")
	rec.AssertStatus(t, http.StatusOK)

	var groups []models.GLIGroup
	rec.Decode(t, &groups)
	if len(groups) != 1 || groups[0].GroupNumber != "1" {
		t.Errorf("got %+v", groups)
	}
}

func TestByType(t *testing.T) {
	h, table := newRouter(t)
	seedRow(table, "A", "Cool", "2024-01-01", "1", "Gestart")
	seedRow(table, "A", "Beweegkuur", "2024-01-01", "2", "Gestart")

	rec := do(h, http.MethodGet, "/type/Beweegkuur", "")
	rec.AssertStatus(t, http.StatusOK)
	var groups []models.GLIGroup
	rec.Decode(t, &groups)
	if len(groups) != 1 || groups[0].Type != models.GLITypeBeweegkuur {
		t.Errorf("got %+v", groups)
	}

	do(h, http.MethodGet, "/type/Yoga", "").AssertStatus(t, http.StatusUnprocessableEntity)

	table.ListErr = errors.New("boom")
	rec = do(h, http.MethodGet, "/type/Cool", "")
	rec.AssertStatus(t, http.StatusServiceUnavailable)
	if d := rec.Detail(t); d != "Kan groepen voor Cool niet ophalen" {
		t.Errorf("detail: %q", d)
	}
}

func TestStatistics(t *testing.T) {
	h, table := newRouter(t)
	seedRow(table, "A", "Cool", "2024-01-01", "1", "Gestart")
	seedRow(table, "B", "Slimmer", "2024-01-01", "2", "In planning")

	rec := do(h, http.MethodGet, "/statistieken", "")
	rec.AssertStatus(t, http.StatusOK)

	var st models.GLIStatistics
	rec.Decode(t, &st)
	if st.Total != 2 || st.Active != 1 || st.Planned != 1 || st.PerType["Beweegkuur"] != 0 {
		t.Errorf("got %+v", st)
	}
}

func TestGet_NotFound(t *testing.T) {
	h, _ := newRouter(t)

	rec := do(h, http.MethodGet, "/recMISSING", "")
	rec.AssertStatus(t, http.StatusNotFound)
	if d := rec.Detail(t); d != "GLI groep recMISSING niet gevonden" {
		t.Errorf("detail: %q", d)
	}
}

func TestUpdate(t *testing.T) {
	h, table := newRouter(t)
	id := seedRow(table, "Zorg4Zeist", "Cool", "2024-01-01", "C-1", "In planning")

	rec := do(h, http.MethodPut, "/"+id, `{"status":"Vol","groepnummer":null}`)
	rec.AssertStatus(t, http.StatusOK)

	var g models.GLIGroup
	rec.Decode(t, &g)
	if g.Status != models.StatusVol || g.GroupNumber != "C-1" || g.Provider != "Zorg4Zeist" {
		t.Errorf("got %+v", g)
	}
}

func TestUpdate_Empty(t *testing.T) {
	h, table := newRouter(t)
	id := seedRow(table, "Zorg4Zeist", "Cool", "2024-01-01", "C-1", "Gestart")

	rec := do(h, http.MethodPut, "/"+id, `{}`)
	rec.AssertStatus(t, http.StatusOK)
	var g models.GLIGroup
	rec.Decode(t, &g)
	if g.Status != models.StatusGestart {
		t.Errorf("got %+v", g)
	}
}

func TestUpdate_NotFoundAndInvalid(t *testing.T) {
	h, _ := newRouter(t)

	do(h, http.MethodPut, "/recMISSING", `{"status":"Vol"}`).AssertStatus(t, http.StatusNotFound)
	do(h, http.MethodPut, "/recMISSING", `{"status":"Bijna"}`).AssertStatus(t, http.StatusUnprocessableEntity)
}

func TestDelete(t *testing.T) {
	h, table := newRouter(t)
	id := seedRow(table, "Zorg4Zeist", "Cool", "2024-01-01", "C-7", "Gestart")

	rec := do(h, http.MethodDelete, "/"+id, "")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "GLI groep C-7 succesvol verwijderd")

	do(h, http.MethodDelete, "/"+id, "").AssertStatus(t, http.StatusNotFound)
	do(h, http.MethodGet, "/"+id, "").AssertStatus(t, http.StatusNotFound)
}

func TestDelete_StoreFailure(t *testing.T) {
	h, table := newRouter(t)
	id := seedRow(table, "Zorg4Zeist", "Cool", "2024-01-01", "C-7", "Gestart")
	table.DeleteErr = errors.New("boom")

	rec := do(h, http.MethodDelete, "/"+id, "")
	rec.AssertStatus(t, http.StatusServiceUnavailable)
	if d := rec.Detail(t); d != "Kan GLI groep niet verwijderen" {
		t.Errorf("detail: %q", d)
	}
}

func TestUnconfigured(t *testing.T) {
	h := gligroups.Routes(gligroups.NewHandler(nil, nil, zap.NewNop()))

	for _, target := range []string{"/", "/actief", "/statistieken", "/recX"} {
		rec := do(h, http.MethodGet, target, "")
		rec.AssertStatus(t, http.StatusServiceUnavailable)
		if d := rec.Detail(t); d != "Airtable is niet geconfigureerd" {
			t.Errorf("%s: detail %q", target, d)
		}
	}
}
