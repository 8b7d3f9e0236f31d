package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/terraincognita07/prospecta/internal/models"
)

func TestCreateProspectionFromFormListsItOnDashboard(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestCommercial(t, database, "ASTOU MANA MBENGUE", models.ProjectNasderm)
	authCookie := loginAndExtractAuthCookie(t, app, "ASTOU MANA MBENGUE")

	form := url.Values{
		"date":               {"2026-03-10"},
		"client_name":        {"Dr Ndiaye"},
		"specialty":          {"Dermatologie"},
		"structure":          {models.StructureClinic},
		"phone":              {"771234567"},
		"products_presented": {"Biafine"},
	}
	response := performRequest(t, app, testRequest{
		method:      http.MethodPost,
		path:        "/prospections",
		cookie:      authCookie,
		body:        form.Encode(),
		contentType: "application/x-www-form-urlencoded",
	})
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}

	dashboard := performRequest(t, app, testRequest{
		method: http.MethodGet,
		path:   "/dashboard",
		cookie: authCookie + "; " + flashCookieName + "=" + responseCookieValue(response.Cookies(), flashCookieName),
	})
	if dashboard.StatusCode != http.StatusOK {
		t.Fatalf("expected dashboard status 200, got %d", dashboard.StatusCode)
	}
	rendered := readBody(t, dashboard.Body)
	if !strings.Contains(rendered, "Saved successfully.") {
		t.Fatal("expected success flash on dashboard")
	}
	if !strings.Contains(rendered, "Dr Ndiaye") || !strings.Contains(rendered, "2026-03-10") {
		t.Fatal("expected recorded prospection in dashboard table")
	}
}

func TestCreateProspectionJSONValidation(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestCommercial(t, database, "KHAR FALL", models.ProjectNasderm)
	authCookie := loginAndExtractAuthCookie(t, app, "KHAR FALL")

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing date",
			body:           `{"client_name":"Dr Sow","specialty":"ORL","structure":"HOPITAL","phone":"770000000"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "prospection date required",
		},
		{
			name:           "missing phone",
			body:           `{"date":"2026-03-10","client_name":"Dr Sow","specialty":"ORL","structure":"HOPITAL"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "prospection field required: phone",
		},
		{
			name:           "phone too long",
			body:           `{"date":"2026-03-10","client_name":"Dr Sow","specialty":"ORL","structure":"HOPITAL","phone":"7700000000000000"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "prospection field too long: phone (max 15)",
		},
		{
			name:           "valid",
			body:           `{"date":"2026-03-10","client_name":"Dr Sow","specialty":"ORL","structure":"HOPITAL","phone":"770000000"}`,
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response := performRequest(t, app, testRequest{
				method:      http.MethodPost,
				path:        "/prospections",
				cookie:      authCookie,
				body:        tc.body,
				contentType: "application/json",
				acceptJSON:  true,
			})
			if response.StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, response.StatusCode)
			}
			if tc.expectedError == "" {
				return
			}
			if message := readAPIError(t, response.Body); message != tc.expectedError {
				t.Fatalf("expected error %q, got %q", tc.expectedError, message)
			}
		})
	}

	var count int64
	if err := database.Model(&models.Prospection{}).Count(&count).Error; err != nil {
		t.Fatalf("count prospections: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one stored prospection, got %d", count)
	}
}

func TestAdminRecapFiltersByCommercialAndReportsInvalidDates(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestAdmin(t, database, "Anna Diallo")
	first := createTestCommercial(t, database, "HELENE FAYE", models.ProjectNasderm)
	second := createTestCommercial(t, database, "MARIE LOUISE", models.ProjectNasmedic)

	for _, prospection := range []models.Prospection{
		{CommercialID: first.ID, ClientName: "Client A", Specialty: "ORL", Structure: "HOPITAL", Phone: "1"},
		{CommercialID: second.ID, ClientName: "Client B", Specialty: "ORL", Structure: "HOPITAL", Phone: "2"},
	} {
		prospection := prospection
		prospection.Date = mustParseTestDay(t, "2026-03-10")
		if err := database.Create(&prospection).Error; err != nil {
			t.Fatalf("create prospection: %v", err)
		}
	}

	authCookie := loginAndExtractAuthCookie(t, app, "Anna Diallo")
	response := performRequest(t, app, testRequest{
		method:     http.MethodGet,
		path:       "/admin?commercial=" + formatUint(first.ID) + "&date_start=not-a-date",
		cookie:     authCookie,
		acceptJSON: true,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := struct {
		Prospections   []models.Prospection `json:"prospections"`
		InvalidFilters []string             `json:"invalid_filters"`
	}{}
	decodeJSON(t, response.Body, &payload)

	if len(payload.Prospections) != 1 || payload.Prospections[0].ClientName != "Client A" {
		t.Fatalf("expected only Client A in recap, got %+v", payload.Prospections)
	}
	if len(payload.InvalidFilters) != 1 {
		t.Fatalf("expected one invalid filter, got %v", payload.InvalidFilters)
	}
}
