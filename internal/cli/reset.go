package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/security"
	"github.com/terraincognita07/prospecta/internal/services"
)

func RunResetPasswordCommand(dbPath string, username string, out io.Writer) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	return resetPassword(services.NewAuthService(repositories.Users), username, out)
}

func resetPassword(auth *services.AuthService, username string, out io.Writer) error {
	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	user, err := auth.SetPassword(username, temporaryPassword)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %q not found", strings.TrimSpace(username))
		}
		return err
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "User: %s (%s)\n", user.Username, user.Role)
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < services.MinPasswordLength {
		length = services.MinPasswordLength
	}
	return security.TemporaryPassword(length)
}
