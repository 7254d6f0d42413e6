package handlers

import (
	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/gofiber/fiber/v2"
)

// ProfilePages serves the server-rendered profile pages.
type ProfilePages struct {
	Store *store.Store
}

// List handles GET /profiles.
func (h *ProfilePages) List(c *fiber.Ctx) error {
	profiles, err := h.Store.ListProfiles()
	if err != nil {
		return renderError(c, err)
	}

	return c.Render("profile_list", fiber.Map{
		"Title":    "Profiles",
		"Profiles": profiles,
	}, "layout")
}

// NewForm handles GET /profiles/new.
func (h *ProfilePages) NewForm(c *fiber.Ctx) error {
	return c.Render("profile_form", fiber.Map{
		"Title":  "New Profile",
		"Action": "/profiles/new",
	}, "layout")
}

// Create handles POST /profiles/new.
func (h *ProfilePages) Create(c *fiber.Ctx) error {
	in, err := profileInputFromForm(c)
	if err != nil {
		return renderError(c, err)
	}

	if _, err := h.Store.CreateProfile(in); err != nil {
		return renderError(c, err)
	}
	return c.Redirect("/profiles", fiber.StatusSeeOther)
}

// EditForm handles GET /profiles/:id/edit.
func (h *ProfilePages) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return renderError(c, err)
	}

	profile, err := h.Store.GetProfile(id)
	if err != nil {
		return renderError(c, err)
	}

	return c.Render("profile_form", fiber.Map{
		"Title":   "Edit Profile",
		"Action":  "/profiles/" + c.Params("id") + "/update",
		"Profile": profile,
	}, "layout")
}

// Update handles POST /profiles/:id/update.
func (h *ProfilePages) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return renderError(c, err)
	}

	in, err := profileInputFromForm(c)
	if err != nil {
		return renderError(c, err)
	}

	if err := h.Store.UpdateProfile(id, in); err != nil {
		return renderError(c, err)
	}
	return c.Redirect("/profiles", fiber.StatusSeeOther)
}

// Delete handles POST /profiles/:id/delete. Profiles still referenced by
// filaments are refused with a conflict page.
func (h *ProfilePages) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return renderError(c, err)
	}

	if err := h.Store.DeleteProfile(id); err != nil {
		return renderError(c, err)
	}
	return c.Redirect("/profiles", fiber.StatusSeeOther)
}
