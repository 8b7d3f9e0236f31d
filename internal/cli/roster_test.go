package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

func TestSeedRosterSkipsExistingAccounts(t *testing.T) {
	t.Parallel()

	auth := newTestAuthService(t)
	if _, err := auth.CreateUser(services.NewUserInput{
		Username: "KHALIFA DIOP",
		Password: "StrongPass1",
		Role:     models.RoleCommercial,
		Project:  models.ProjectNasmedic,
		Zone:     "CENTRE VILLE",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	var out bytes.Buffer
	created, err := seedRoster(auth, defaultRoster, &out)
	if err != nil {
		t.Fatalf("seedRoster() error = %v", err)
	}
	if created != len(defaultRoster)-1 {
		t.Fatalf("expected %d accounts created, got %d", len(defaultRoster)-1, created)
	}
	if strings.Contains(out.String(), "KHALIFA DIOP") {
		t.Fatal("expected existing account to be skipped silently")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	fields := strings.Split(lines[0], "\t")
	if len(fields) != 4 {
		t.Fatalf("expected tab separated roster line, got %q", lines[0])
	}
	if _, err := auth.Authenticate(fields[0], fields[3]); err != nil {
		t.Fatalf("expected printed password to authenticate %q: %v", fields[0], err)
	}

	again, err := seedRoster(auth, defaultRoster, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("second seedRoster() error = %v", err)
	}
	if again != 0 {
		t.Fatalf("expected second run to create nothing, got %d", again)
	}
}

func TestDefaultRosterHasOneAdminAndKnownProjects(t *testing.T) {
	t.Parallel()

	admins := 0
	seen := map[string]bool{}
	for _, entry := range defaultRoster {
		if seen[entry.Username] {
			t.Fatalf("duplicate roster username %q", entry.Username)
		}
		seen[entry.Username] = true
		if !models.IsKnownProject(entry.Project) {
			t.Fatalf("unknown project %q for %q", entry.Project, entry.Username)
		}
		if entry.Role == models.RoleAdmin {
			admins++
			continue
		}
		if entry.Zone == "" {
			t.Fatalf("commercial %q has no zone", entry.Username)
		}
	}
	if admins != 1 {
		t.Fatalf("expected one admin in roster, got %d", admins)
	}
}
