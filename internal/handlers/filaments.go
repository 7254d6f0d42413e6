package handlers

import (
	"strconv"

	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/gofiber/fiber/v2"
)

// FilamentPages serves the server-rendered filament pages.
type FilamentPages struct {
	Store *store.Store
}

// List handles GET / with an optional ?profile=<id> filter.
func (h *FilamentPages) List(c *fiber.Ctx) error {
	var profileID *uint64
	if raw := c.Query("profile"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			profileID = &id
		}
	}

	filaments, err := h.Store.ListFilaments(profileID)
	if err != nil {
		return renderError(c, err)
	}

	// Profiles feed the filter dropdown
	profiles, err := h.Store.ListProfiles()
	if err != nil {
		return renderError(c, err)
	}

	var selected uint64
	if profileID != nil {
		selected = *profileID
	}

	return c.Render("filament_list", fiber.Map{
		"Title":     "Filaments",
		"Filaments": filaments,
		"Profiles":  profiles,
		"Selected":  selected,
	}, "layout")
}

// NewForm handles GET /filaments/new.
func (h *FilamentPages) NewForm(c *fiber.Ctx) error {
	profiles, err := h.Store.ListProfiles()
	if err != nil {
		return renderError(c, err)
	}

	return c.Render("filament_form", fiber.Map{
		"Title":    "New Filament",
		"Action":   "/filaments/new",
		"Profiles": profiles,
		"Current":  uint64(0),
	}, "layout")
}

// Create handles POST /filaments/new.
func (h *FilamentPages) Create(c *fiber.Ctx) error {
	in, err := filamentInputFromForm(c)
	if err != nil {
		return renderError(c, err)
	}

	if _, err := h.Store.CreateFilament(in); err != nil {
		return renderError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditForm handles GET /filaments/:id/edit.
func (h *FilamentPages) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return renderError(c, err)
	}

	filament, err := h.Store.GetFilament(id)
	if err != nil {
		return renderError(c, err)
	}

	profiles, err := h.Store.ListProfiles()
	if err != nil {
		return renderError(c, err)
	}

	return c.Render("filament_form", fiber.Map{
		"Title":    "Edit Filament",
		"Action":   "/filaments/" + c.Params("id") + "/update",
		"Filament": filament,
		"Profiles": profiles,
		"Current":  filament.ProfileID,
	}, "layout")
}

// Update handles POST /filaments/:id/update.
func (h *FilamentPages) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return renderError(c, err)
	}

	in, err := filamentInputFromForm(c)
	if err != nil {
		return renderError(c, err)
	}

	if err := h.Store.UpdateFilament(id, in); err != nil {
		return renderError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Delete handles POST /filaments/:id/delete.
func (h *FilamentPages) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return renderError(c, err)
	}

	if err := h.Store.DeleteFilament(id); err != nil {
		return renderError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
