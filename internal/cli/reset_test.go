package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/security"
	"github.com/terraincognita07/prospecta/internal/services"
)

func newTestAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "prospecta-cli-test.db"))
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

	return services.NewAuthService(db.NewRepositories(database).Users)
}

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != services.MinPasswordLength {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want %d", len(password), services.MinPasswordLength)
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(security.TemporaryPasswordAlphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestResetPasswordPrintsWorkingTemporaryPassword(t *testing.T) {
	t.Parallel()

	auth := newTestAuthService(t)
	if _, err := auth.CreateUser(services.NewUserInput{
		Username: "MIJO",
		Password: "InitialPass1",
		Role:     models.RoleCommercial,
		Project:  models.ProjectNasderm,
		Zone:     "MBOUR",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	var out bytes.Buffer
	if err := resetPassword(auth, " MIJO ", &out); err != nil {
		t.Fatalf("resetPassword() error = %v", err)
	}

	var temporaryPassword string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary password: "); ok {
			temporaryPassword = value
		}
	}
	if temporaryPassword == "" {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}

	if _, err := auth.Authenticate("MIJO", temporaryPassword); err != nil {
		t.Fatalf("expected temporary password to authenticate, got %v", err)
	}
	if _, err := auth.Authenticate("MIJO", "InitialPass1"); err == nil {
		t.Fatal("expected previous password to stop working")
	}
}

func TestResetPasswordUnknownUser(t *testing.T) {
	t.Parallel()

	auth := newTestAuthService(t)
	var out bytes.Buffer
	err := resetPassword(auth, "nobody", &out)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
