package handlers

import (
	"strconv"
	"strings"

	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/cblte/simple-filament-manager/internal/types"
	"github.com/cblte/simple-filament-manager/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, types.NewValidationError("invalid id %q", c.Params("id"))
	}
	return id, nil
}

// formInt parses a required integer form field, falling back to def when
// the field is absent or empty.
func formInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NewValidationError("%s must be a whole number", name)
	}
	return v, nil
}

// formOptInt parses an optional integer form field, nil when empty.
func formOptInt(c *fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, types.NewValidationError("%s must be a whole number", name)
	}
	return &v, nil
}

// formOptFloat parses an optional decimal form field, nil when empty.
func formOptFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	// Accept both decimal separators, forms arrive with either
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, types.NewValidationError("%s must be a number", name)
	}
	return &v, nil
}

// formFloat parses a decimal form field, falling back to def when empty.
func formFloat(c *fiber.Ctx, name string, def float64) (float64, error) {
	v, err := formOptFloat(c, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

// formColor normalizes a color input value. Color pickers submit "#rrggbb",
// the stored form is the bare 6 hex digits. Empty input yields nil.
func formColor(c *fiber.Ctx, name string) *string {
	raw := strings.TrimSpace(c.FormValue(name))
	raw = strings.TrimPrefix(raw, "#")
	if raw == "" {
		return nil
	}
	return &raw
}

// renderError renders the HTML error page with the status matching the
// store error taxonomy.
func renderError(c *fiber.Ctx, err error) error {
	status, _ := utils.StatusForError(err)
	return c.Status(status).Render("error", fiber.Map{
		"Title":   "Error",
		"Status":  status,
		"Message": err.Error(),
	}, "layout")
}

// filamentInputFromForm assembles a store.FilamentInput from a submitted
// create/edit form.
func filamentInputFromForm(c *fiber.Ctx) (store.FilamentInput, error) {
	var in store.FilamentInput
	var err error

	in.Name = c.FormValue("name")
	profileID, err := formInt(c, "profile_id", 0)
	if err != nil {
		return in, err
	}
	if profileID < 0 {
		return in, types.NewValidationError("profile is required")
	}
	in.ProfileID = uint64(profileID)

	in.ColorHex = formColor(c, "color_hex")
	if in.PriceEUR, err = formOptFloat(c, "price_eur"); err != nil {
		return in, err
	}
	if in.WeightG, err = formInt(c, "weight_g", 0); err != nil {
		return in, err
	}
	if in.SpoolWeightG, err = formInt(c, "spool_weight_g", 200); err != nil {
		return in, err
	}
	if in.PrintTempMin, err = formOptInt(c, "print_temp_min"); err != nil {
		return in, err
	}
	if in.PrintTempMax, err = formOptInt(c, "print_temp_max"); err != nil {
		return in, err
	}
	return in, nil
}

// profileInputFromForm assembles a store.ProfileInput from a submitted
// create/edit form.
func profileInputFromForm(c *fiber.Ctx) (store.ProfileInput, error) {
	var in store.ProfileInput
	var err error

	in.Vendor = c.FormValue("vendor")
	in.Material = c.FormValue("material")
	if in.Density, err = formFloat(c, "density", 1.24); err != nil {
		return in, err
	}
	if in.Diameter, err = formFloat(c, "diameter", 1.75); err != nil {
		return in, err
	}
	return in, nil
}
