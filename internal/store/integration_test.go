package store_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/cblte/simple-filament-manager/internal/models"
	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/cblte/simple-filament-manager/internal/testutil"
	"github.com/cblte/simple-filament-manager/internal/types"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// TestMariaDBIntegration runs the full CRUD pass against a real MariaDB.
// Gated behind RUN_DB_INTEGRATION=1 because it needs a Docker daemon and
// pulls an image on first run.
func TestMariaDBIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "1" {
		t.Skip("Set RUN_DB_INTEGRATION=1 to run the MariaDB integration test")
	}
	if !testutil.DockerAvailable() {
		t.Skip("Docker daemon not reachable")
	}

	ctx := context.Background()
	container, err := testutil.StartMariaDB(ctx)
	if err != nil {
		t.Fatalf("Failed to start MariaDB: %v", err)
	}
	defer container.Terminate(t)

	db, err := gorm.Open(mysql.Open(container.DSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}, &models.Filament{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	s := store.New(db)

	profileID, err := s.CreateProfile(store.ProfileInput{
		Vendor: "Prusament", Material: "PLA", Density: 1.24, Diameter: 1.75,
	})
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	filamentID, err := s.CreateFilament(store.FilamentInput{
		Name:         "Galaxy Black",
		ProfileID:    profileID,
		WeightG:      1000,
		SpoolWeightG: 200,
	})
	if err != nil {
		t.Fatalf("Failed to create filament: %v", err)
	}

	// Verify through a direct SQL connection, not the ORM
	count, err := testutil.CountRows(container.DSN(), "filaments")
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 filament row, got %d", count)
	}

	rows, err := s.ListFilaments(nil)
	if err != nil {
		t.Fatalf("Failed to list filaments: %v", err)
	}
	if len(rows) != 1 || rows[0].RemainingG != 800 {
		t.Errorf("Unexpected listing: %+v", rows)
	}

	err = s.DeleteProfile(profileID)
	var conflict *types.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError deleting an in-use profile, got %v", err)
	}

	if err := s.DeleteFilament(filamentID); err != nil {
		t.Fatalf("Failed to delete filament: %v", err)
	}
	if err := s.DeleteProfile(profileID); err != nil {
		t.Fatalf("Failed to delete now-unreferenced profile: %v", err)
	}

	count, err = testutil.CountRows(container.DSN(), "profiles")
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty profiles table, got %d rows", count)
	}
}
