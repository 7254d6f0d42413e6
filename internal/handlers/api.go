package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/cblte/simple-filament-manager/internal/models"
	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/cblte/simple-filament-manager/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/cblte/simple-filament-manager/internal/types"
)

// APIHandler serves the JSON API under /api.
type APIHandler struct {
	Store *store.Store
}

// ProfileRequest is the JSON body for profile create/update.
// Numeric fields accept numbers or strings.
type ProfileRequest struct {
	Vendor   string            `json:"vendor"`
	Material string            `json:"material"`
	Density  types.FlexFloat64 `json:"density"`
	Diameter types.FlexFloat64 `json:"diameter"`
}

// FilamentRequest is the JSON body for filament create/update.
type FilamentRequest struct {
	Name         string             `json:"name"`
	ProfileID    types.FlexUint64   `json:"profile_id"`
	ColorHex     *string            `json:"color_hex"`
	PriceEUR     *types.FlexFloat64 `json:"price_eur"`
	WeightG      types.FlexUint64   `json:"weight_g"`
	SpoolWeightG *types.FlexUint64  `json:"spool_weight_g"`
	PrintTempMin *int               `json:"print_temp_min"`
	PrintTempMax *int               `json:"print_temp_max"`
	Extra        json.RawMessage    `json:"extra"`
}

func (r *FilamentRequest) toInput() store.FilamentInput {
	in := store.FilamentInput{
		Name:         r.Name,
		ProfileID:    r.ProfileID.Uint64(),
		ColorHex:     r.ColorHex,
		WeightG:      int(r.WeightG.Uint64()),
		SpoolWeightG: 200,
		PrintTempMin: r.PrintTempMin,
		PrintTempMax: r.PrintTempMax,
	}
	if r.SpoolWeightG != nil {
		in.SpoolWeightG = int(r.SpoolWeightG.Uint64())
	}
	if r.PriceEUR != nil {
		price := r.PriceEUR.Float64()
		in.PriceEUR = &price
	}
	if len(r.Extra) > 0 {
		in.Extra = models.JSON{JSON: datatypes.JSON(r.Extra)}
	}
	return in
}

// ListFilaments handles GET /api/filaments
// @Summary List filaments
// @Description List all filament spools with profile and percent remaining, newest first
// @Tags Filaments
// @Produce json
// @Param profile query int false "Restrict to one profile id"
// @Success 200 {array} store.FilamentRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /filaments [get]
func (h *APIHandler) ListFilaments(c *fiber.Ctx) error {
	var profileID *uint64
	if raw := c.Query("profile"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(c, "invalid profile filter", fiber.StatusBadRequest, "validation")
		}
		profileID = &id
	}

	rows, err := h.Store.ListFilaments(profileID)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetFilament handles GET /api/filaments/:id
// @Summary Get filament
// @Tags Filaments
// @Produce json
// @Param id path int true "Filament ID"
// @Success 200 {object} models.Filament
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filaments/{id} [get]
func (h *APIHandler) GetFilament(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	filament, err := h.Store.GetFilament(id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(filament)
}

// CreateFilament handles POST /api/filaments
// @Summary Create filament
// @Tags Filaments
// @Accept json
// @Produce json
// @Param body body handlers.FilamentRequest true "Filament to create"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filaments [post]
func (h *APIHandler) CreateFilament(c *fiber.Ctx) error {
	var body FilamentRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation")
	}

	id, err := h.Store.CreateFilament(body.toInput())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, id)
}

// UpdateFilament handles PUT /api/filaments/:id
// @Summary Update filament
// @Tags Filaments
// @Accept json
// @Produce json
// @Param id path int true "Filament ID"
// @Param body body handlers.FilamentRequest true "Filament fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filaments/{id} [put]
func (h *APIHandler) UpdateFilament(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	var body FilamentRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation")
	}

	if err := h.Store.UpdateFilament(id, body.toInput()); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, id)
}

// DeleteFilament handles DELETE /api/filaments/:id
// @Summary Delete filament
// @Tags Filaments
// @Produce json
// @Param id path int true "Filament ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filaments/{id} [delete]
func (h *APIHandler) DeleteFilament(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	if err := h.Store.DeleteFilament(id); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, id)
}

// ListProfiles handles GET /api/profiles
// @Summary List profiles
// @Description List all profiles with dependent filament counts, vendor ascending
// @Tags Profiles
// @Produce json
// @Success 200 {array} store.ProfileRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profiles [get]
func (h *APIHandler) ListProfiles(c *fiber.Ctx) error {
	rows, err := h.Store.ListProfiles()
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetProfile handles GET /api/profiles/:id
// @Summary Get profile
// @Tags Profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /profiles/{id} [get]
func (h *APIHandler) GetProfile(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	profile, err := h.Store.GetProfile(id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// CreateProfile handles POST /api/profiles
// @Summary Create profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body handlers.ProfileRequest true "Profile to create"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /profiles [post]
func (h *APIHandler) CreateProfile(c *fiber.Ctx) error {
	var body ProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation")
	}

	id, err := h.Store.CreateProfile(store.ProfileInput{
		Vendor:   body.Vendor,
		Material: body.Material,
		Density:  body.Density.Float64(),
		Diameter: body.Diameter.Float64(),
	})
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, id)
}

// UpdateProfile handles PUT /api/profiles/:id
// @Summary Update profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param body body handlers.ProfileRequest true "Profile fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /profiles/{id} [put]
func (h *APIHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	var body ProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation")
	}

	if err := h.Store.UpdateProfile(id, store.ProfileInput{
		Vendor:   body.Vendor,
		Material: body.Material,
		Density:  body.Density.Float64(),
		Diameter: body.Diameter.Float64(),
	}); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, id)
}

// DeleteProfile handles DELETE /api/profiles/:id
// @Summary Delete profile
// @Description Refused with 409 while any filament references the profile
// @Tags Profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /profiles/{id} [delete]
func (h *APIHandler) DeleteProfile(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	if err := h.Store.DeleteProfile(id); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, id)
}
