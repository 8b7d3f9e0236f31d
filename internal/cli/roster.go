package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

type rosterEntry struct {
	Username string
	Role     string
	Project  string
	Zone     string
}

var defaultRoster = []rosterEntry{
	{Username: "Anna Diallo", Role: models.RoleAdmin, Project: models.ProjectNasmedic},

	{Username: "KHALIFA DIOP", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "CENTRE VILLE"},
	{Username: "AMADOU DEME", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "Banlieue 1"},
	{Username: "MBAYE NDOYE", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "THIES"},
	{Username: "MEDINA K NDIAYE", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "ZONES INTERMEDIAIRE 2"},
	{Username: "MARIE LOUISE", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "MBOUR"},
	{Username: "FATOU COLLETTE DRAME", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "ZONES INTERMEDIAIRE 1"},
	{Username: "MASSAMBA MBAYE", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "Banlieue 2"},
	{Username: "LAMINE THIOUB", Role: models.RoleCommercial, Project: models.ProjectNasmedic, Zone: "REGION DE DIOURBEL"},

	{Username: "FAMA DIOP", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "CENTRE VILLE"},
	{Username: "MARIE JEANNE DIOUF", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "Banlieue 1"},
	{Username: "ASTOU MANA MBENGUE", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "THIES"},
	{Username: "HONORINE", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "ZONES INTERMEDIAIRE 2"},
	{Username: "MIJO", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "MBOUR"},
	{Username: "HELENE FAYE", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "ZONES INTERMEDIAIRE 1"},
	{Username: "ADJARA CISSÉ", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "Banlieue 2"},
	{Username: "KHAR FALL", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "REGION DE DIOURBEL"},
	{Username: "KHADY SOW", Role: models.RoleCommercial, Project: models.ProjectNasderm, Zone: "REGION DE DIOURBEL"},
}

// RunSeedRosterCommand creates the field team accounts that do not exist yet,
// each with a fresh temporary password printed once.
func RunSeedRosterCommand(dbPath string, out io.Writer) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	created, err := seedRoster(services.NewAuthService(repositories.Users), defaultRoster, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d account(s) created, %d already present\n", created, len(defaultRoster)-created)
	return nil
}

func seedRoster(auth *services.AuthService, roster []rosterEntry, out io.Writer) (int, error) {
	created := 0
	for _, entry := range roster {
		password, err := generateTemporaryPassword(12)
		if err != nil {
			return created, fmt.Errorf("generate temporary password: %w", err)
		}

		user, err := auth.CreateUser(services.NewUserInput{
			Username: entry.Username,
			Password: password,
			Role:     entry.Role,
			Project:  entry.Project,
			Zone:     entry.Zone,
		})
		if errors.Is(err, services.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("create %q: %w", entry.Username, err)
		}

		created++
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", user.Username, user.Role, user.Project, password)
	}
	return created, nil
}
