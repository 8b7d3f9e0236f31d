package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

func createTestProspection(t *testing.T, database *gorm.DB, commercial models.User, rawDay string, clientName string) {
	t.Helper()

	prospection := models.Prospection{
		CommercialID: commercial.ID,
		Date:         mustParseTestDay(t, rawDay),
		ClientName:   clientName,
		Specialty:    "Dermatologie",
		Structure:    models.StructureClinic,
		Phone:        "770000000",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&prospection).Error; err != nil {
		t.Fatalf("create prospection: %v", err)
	}
}

func TestProjectDashboardIsScopedToProject(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, "Anna Diallo")
	fama := createTestUser(t, database, "FAMA DIOP", models.RoleCommercial, models.ProjectNasderm, "CENTRE VILLE")
	khalifa := createTestUser(t, database, "KHALIFA DIOP", models.RoleCommercial, models.ProjectNasmedic, "THIES")
	createTestProspection(t, database, fama, "2026-03-02", "Dr Faye")
	createTestProspection(t, database, fama, "2026-03-09", "Dr Sarr")
	createTestProspection(t, database, khalifa, "2026-03-05", "Dr Gueye")
	authCookie := loginAndExtractAuthCookie(t, app, "Anna Diallo")

	response := performRequest(t, app, testRequest{
		method:     http.MethodGet,
		path:       "/projects/nasderm",
		cookie:     authCookie,
		acceptJSON: true,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := struct {
		Project      string `json:"project"`
		Prospections []struct {
			ClientName string
			Commercial struct {
				Username string
			}
		} `json:"prospections"`
		TopCommercials []models.VisitCount `json:"top_commercials"`
		Commercials    []struct {
			Username string
		} `json:"commercials"`
	}{}
	decodeJSON(t, response.Body, &payload)

	if payload.Project != models.ProjectNasderm {
		t.Fatalf("expected project nasderm, got %q", payload.Project)
	}
	if len(payload.Prospections) != 2 {
		t.Fatalf("expected 2 nasderm prospections, got %d", len(payload.Prospections))
	}
	if payload.Prospections[0].ClientName != "Dr Sarr" || payload.Prospections[1].ClientName != "Dr Faye" {
		t.Fatalf("expected newest visit first, got %q then %q", payload.Prospections[0].ClientName, payload.Prospections[1].ClientName)
	}
	for _, prospection := range payload.Prospections {
		if prospection.Commercial.Username != "FAMA DIOP" {
			t.Fatalf("unexpected prospection from %q", prospection.Commercial.Username)
		}
	}
	if len(payload.TopCommercials) != 1 || payload.TopCommercials[0].Username != "FAMA DIOP" || payload.TopCommercials[0].Visits != 2 {
		t.Fatalf("expected FAMA DIOP alone in ranking with 2 visits, got %#v", payload.TopCommercials)
	}
	if len(payload.Commercials) != 1 || payload.Commercials[0].Username != "FAMA DIOP" {
		t.Fatalf("expected only nasderm commercials, got %#v", payload.Commercials)
	}
}

func TestProjectDashboardWithoutVisitsShowsNoDataNotice(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, "Anna Diallo")
	fama := createTestUser(t, database, "FAMA DIOP", models.RoleCommercial, models.ProjectNasderm, "CENTRE VILLE")
	createTestUser(t, database, "KHALIFA DIOP", models.RoleCommercial, models.ProjectNasmedic, "THIES")
	createTestProspection(t, database, fama, "2026-03-02", "Dr Faye")
	authCookie := loginAndExtractAuthCookie(t, app, "Anna Diallo")

	testCases := []struct {
		name         string
		path         string
		expectNotice bool
	}{
		{name: "project without visits", path: "/projects/nasmedic", expectNotice: true},
		{name: "project with visits", path: "/projects/nasderm", expectNotice: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response := performRequest(t, app, testRequest{
				method: http.MethodGet,
				path:   tc.path,
				cookie: authCookie,
			})
			if response.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", response.StatusCode)
			}
			rendered := readBody(t, response.Body)
			if got := strings.Contains(rendered, "No data for this project yet."); got != tc.expectNotice {
				t.Fatalf("expected no-data notice %t, got %t", tc.expectNotice, got)
			}
		})
	}
}

func TestUnknownProjectDashboard(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, "Anna Diallo")
	authCookie := loginAndExtractAuthCookie(t, app, "Anna Diallo")

	page := performRequest(t, app, testRequest{
		method: http.MethodGet,
		path:   "/projects/unknown",
		cookie: authCookie,
	})
	if page.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", page.StatusCode)
	}
	if location := page.Header.Get("Location"); location != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", location)
	}
	if responseCookieValue(page.Cookies(), flashCookieName) == "" {
		t.Fatal("expected flash cookie on unknown project redirect")
	}

	jsonResponse := performRequest(t, app, testRequest{
		method:     http.MethodGet,
		path:       "/projects/unknown",
		cookie:     authCookie,
		acceptJSON: true,
	})
	if jsonResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", jsonResponse.StatusCode)
	}
	if message := readAPIError(t, jsonResponse.Body); message != "unknown project" {
		t.Fatalf("expected unknown project error, got %q", message)
	}
}
