package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/i18n"
	"github.com/terraincognita07/prospecta/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "StrongPass1"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithCookieSecure(t, false)
}

func newTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "prospecta-api-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, "test-secret-key", templatesDir, time.UTC, i18nManager, cookieSecure)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, username string, role string, project string, zone string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         role,
		Zone:         zone,
		Project:      project,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestAdmin(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()
	return createTestUser(t, database, username, models.RoleAdmin, models.ProjectNasmedic, "")
}

func createTestCommercial(t *testing.T, database *gorm.DB, username string, project string) models.User {
	t.Helper()
	return createTestUser(t, database, username, models.RoleCommercial, project, "CENTRE VILLE")
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	form := url.Values{
		"username": {username},
		"password": {testPassword},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func mustFirstProduct(t *testing.T, database *gorm.DB, brand string) models.Product {
	t.Helper()

	product := models.Product{}
	if err := database.Where("brand = ?", brand).Order("id ASC").First(&product).Error; err != nil {
		t.Fatalf("load %s product: %v", brand, err)
	}
	return product
}

type testRequest struct {
	method      string
	path        string
	cookie      string
	body        string
	contentType string
	acceptJSON  bool
}

func performRequest(t *testing.T, app *fiber.App, params testRequest) *http.Response {
	t.Helper()

	var body io.Reader
	if params.body != "" {
		body = strings.NewReader(params.body)
	}
	req := httptest.NewRequest(params.method, params.path, body)
	if params.contentType != "" {
		req.Header.Set("Content-Type", params.contentType)
	}
	if params.cookie != "" {
		req.Header.Set("Cookie", params.cookie)
	}
	if params.acceptJSON {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set("Accept-Language", "en")

	response, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", params.method, params.path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func mustParseTestDay(t *testing.T, raw string) time.Time {
	t.Helper()

	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func formatUint(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
