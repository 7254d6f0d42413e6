package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/cblte/simple-filament-manager/internal/handlers"
	"github.com/cblte/simple-filament-manager/internal/models"
	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupAPIApp(t *testing.T) (*fiber.App, *store.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.Filament{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	inventory := store.New(db)

	app := fiber.New()
	api := &handlers.APIHandler{Store: inventory}

	group := app.Group("/api")
	group.Get("/filaments", api.ListFilaments)
	group.Post("/filaments", api.CreateFilament)
	group.Get("/filaments/:id", api.GetFilament)
	group.Put("/filaments/:id", api.UpdateFilament)
	group.Delete("/filaments/:id", api.DeleteFilament)
	group.Get("/profiles", api.ListProfiles)
	group.Post("/profiles", api.CreateProfile)
	group.Get("/profiles/:id", api.GetProfile)
	group.Put("/profiles/:id", api.UpdateProfile)
	group.Delete("/profiles/:id", api.DeleteProfile)

	return app, inventory
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var req = httptest.NewRequest(method, path, nil)
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestAPICreateProfileFlexibleNumbers(t *testing.T) {
	app, inventory := setupAPIApp(t)

	// Density and diameter arrive as strings, clients do that
	status, result := doJSON(t, app, "POST", "/api/profiles", map[string]interface{}{
		"vendor":   "Prusament",
		"material": "PLA",
		"density":  "1.24",
		"diameter": 1.75,
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, result)
	}
	if result["ok"] != true {
		t.Error("Expected ok=true in response")
	}

	profiles, err := inventory.ListProfiles()
	if err != nil {
		t.Fatalf("Failed to list profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Density != 1.24 {
		t.Errorf("Expected stored density 1.24, got %+v", profiles)
	}
}

func TestAPIFilamentLifecycle(t *testing.T) {
	app, inventory := setupAPIApp(t)

	profileID, err := inventory.CreateProfile(store.ProfileInput{
		Vendor: "Sunlu", Material: "PETG", Density: 1.27, Diameter: 1.75,
	})
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	status, result := doJSON(t, app, "POST", "/api/filaments", map[string]interface{}{
		"name":           "Clear Blue",
		"profile_id":     profileID,
		"color_hex":      "0000ff",
		"price_eur":      "21.50",
		"weight_g":       "1000",
		"spool_weight_g": 200,
		"extra":          map[string]interface{}{"storage_box": "B2", "dried": true},
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, result)
	}
	id := uint64(result["id"].(float64))

	// Round trip through the list endpoint
	req := httptest.NewRequest("GET", "/api/filaments", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var rows []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 filament, got %d", len(rows))
	}
	if rows[0]["remaining_g"].(float64) != 800 {
		t.Errorf("Expected remaining 800, got %v", rows[0]["remaining_g"])
	}
	if rows[0]["percent_remaining"].(float64) != 100 {
		t.Errorf("Expected percent 100, got %v", rows[0]["percent_remaining"])
	}

	// Update with new weights recomputes remaining
	status, result = doJSON(t, app, "PUT", "/api/filaments/1", map[string]interface{}{
		"name":           "Clear Blue",
		"profile_id":     profileID,
		"weight_g":       700,
		"spool_weight_g": 200,
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, result)
	}
	updated, err := inventory.GetFilament(id)
	if err != nil {
		t.Fatalf("Failed to fetch filament: %v", err)
	}
	if updated.RemainingG != 500 {
		t.Errorf("Expected remaining 500 after update, got %d", updated.RemainingG)
	}

	// Delete, then 404
	status, _ = doJSON(t, app, "DELETE", "/api/filaments/1", nil)
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200 on delete, got %d", status)
	}
	status, _ = doJSON(t, app, "GET", "/api/filaments/1", nil)
	if status != fiber.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", status)
	}
}

func TestAPICreateFilamentUnknownProfile(t *testing.T) {
	app, _ := setupAPIApp(t)

	status, result := doJSON(t, app, "POST", "/api/filaments", map[string]interface{}{
		"name":       "Orphan",
		"profile_id": 555,
		"weight_g":   1000,
	})
	if status != fiber.StatusNotFound {
		t.Errorf("Expected 404 for unknown profile, got %d: %v", status, result)
	}
}

func TestAPIDeleteProfileConflict(t *testing.T) {
	app, inventory := setupAPIApp(t)

	profileID, _ := inventory.CreateProfile(store.ProfileInput{Vendor: "A", Material: "PLA", Density: 1.24, Diameter: 1.75})
	if _, err := inventory.CreateFilament(store.FilamentInput{Name: "blocker", ProfileID: profileID, WeightG: 1000}); err != nil {
		t.Fatalf("Failed to create filament: %v", err)
	}

	status, result := doJSON(t, app, "DELETE", "/api/profiles/1", nil)
	if status != fiber.StatusConflict {
		t.Errorf("Expected 409, got %d: %v", status, result)
	}
	if result["type"] != "conflict" {
		t.Errorf("Expected conflict type tag, got %v", result["type"])
	}
}

func TestAPIValidationError(t *testing.T) {
	app, _ := setupAPIApp(t)

	status, result := doJSON(t, app, "POST", "/api/profiles", map[string]interface{}{
		"vendor": "", "material": "PLA", "density": 1.24, "diameter": 1.75,
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("Expected 400, got %d: %v", status, result)
	}
	if result["type"] != "validation" {
		t.Errorf("Expected validation type tag, got %v", result["type"])
	}
}
