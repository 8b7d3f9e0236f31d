package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/services"
)

type CreateUserOptions struct {
	Username string
	Role     string
	Project  string
	Zone     string
	Password string
}

// RunCreateUserCommand creates one account. Without a password option the
// password is read from stdin with echo disabled.
func RunCreateUserCommand(dbPath string, options CreateUserOptions, stdin *os.File, out io.Writer) error {
	if strings.TrimSpace(options.Username) == "" {
		return errors.New("username is required")
	}

	if options.Password == "" {
		fmt.Fprint(out, "Password: ")
		password, err := readPasswordNoEcho(stdin)
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		options.Password = string(password)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	return createUser(services.NewAuthService(repositories.Users), options, out)
}

func createUser(auth *services.AuthService, options CreateUserOptions, out io.Writer) error {
	user, err := auth.CreateUser(services.NewUserInput{
		Username: options.Username,
		Password: options.Password,
		Role:     options.Role,
		Project:  options.Project,
		Zone:     options.Zone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return fmt.Errorf("password must be at least %d characters", services.MinPasswordLength)
		case errors.Is(err, services.ErrUsernameTaken):
			return fmt.Errorf("user %q already exists", strings.TrimSpace(options.Username))
		default:
			return err
		}
	}

	fmt.Fprintf(out, "Created %s %q (project %s)\n", user.Role, user.Username, user.Project)
	return nil
}
