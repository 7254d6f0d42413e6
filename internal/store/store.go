package store

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/cblte/simple-filament-manager/internal/models"
	"github.com/cblte/simple-filament-manager/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// Store is the inventory query layer. It owns validation, the derived
// remaining-weight computation and the profile delete guard. All access
// goes through an injected *gorm.DB, there is no package-level handle.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ProfileInput carries the mutable fields of a profile.
type ProfileInput struct {
	Vendor   string
	Material string
	Density  float64
	Diameter float64
}

// FilamentInput carries the mutable fields of a filament spool.
type FilamentInput struct {
	Name         string
	ProfileID    uint64
	ColorHex     *string
	PriceEUR     *float64
	WeightG      int
	SpoolWeightG int
	PrintTempMin *int
	PrintTempMax *int
	Extra        models.JSON
}

// FilamentRow is a filament with its profile preloaded and the display
// percentage computed.
type FilamentRow struct {
	models.Filament
	PercentRemaining int `json:"percent_remaining"`
}

// ProfileRow is a profile with its dependent filament count.
type ProfileRow struct {
	models.Profile
	FilamentCount int64 `json:"filament_count"`
}

var colorHexPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// RemainingWeight computes the material weight left on a spool from its
// gross weight and tare weight. Never negative.
func RemainingWeight(weightG, spoolWeightG int) int {
	remaining := weightG - spoolWeightG
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PercentRemaining computes the display percentage of material left,
// clamped to [0, 100]. A non-positive capacity yields 0.
func PercentRemaining(weightG, spoolWeightG, remainingG int) int {
	capacity := weightG - spoolWeightG
	if capacity <= 0 {
		return 0
	}
	percent := int(math.Round(float64(remainingG) / float64(capacity) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ListFilaments returns all filaments with their profiles, newest first.
// When profileID is non-nil the result is restricted to that profile.
func (s *Store) ListFilaments(profileID *uint64) ([]FilamentRow, error) {
	query := s.db.
		Clauses(hints.CommentBefore("select", "sfm:list_filaments")).
		Preload("Profile").
		Order("created_at DESC, id DESC")

	if profileID != nil {
		query = query.Where("profile_id = ?", *profileID)
	}

	var filaments []models.Filament
	if err := query.Find(&filaments).Error; err != nil {
		return nil, &types.StorageError{Op: "list filaments", Err: err}
	}

	rows := make([]FilamentRow, 0, len(filaments))
	for _, f := range filaments {
		rows = append(rows, FilamentRow{
			Filament:         f,
			PercentRemaining: PercentRemaining(f.WeightG, f.SpoolWeightG, f.RemainingG),
		})
	}
	return rows, nil
}

// ListProfiles returns all profiles ordered by vendor name ascending,
// each with the number of filaments referencing it.
func (s *Store) ListProfiles() ([]ProfileRow, error) {
	var rows []ProfileRow
	err := s.db.Model(&models.Profile{}).
		Clauses(hints.CommentBefore("select", "sfm:list_profiles")).
		Select("profiles.*, (SELECT COUNT(*) FROM filaments WHERE filaments.profile_id = profiles.id) AS filament_count").
		Order("vendor ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, &types.StorageError{Op: "list profiles", Err: err}
	}
	return rows, nil
}

// GetProfile returns a single profile by id.
func (s *Store) GetProfile(id uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Entity: "profile", ID: id}
		}
		return nil, &types.StorageError{Op: "get profile", Err: err}
	}
	return &profile, nil
}

// GetFilament returns a single filament with its profile by id.
func (s *Store) GetFilament(id uint64) (*models.Filament, error) {
	var filament models.Filament
	if err := s.db.Preload("Profile").First(&filament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Entity: "filament", ID: id}
		}
		return nil, &types.StorageError{Op: "get filament", Err: err}
	}
	return &filament, nil
}

// CreateProfile validates and inserts a new profile, returning its id.
func (s *Store) CreateProfile(in ProfileInput) (uint64, error) {
	if err := validateProfile(in); err != nil {
		return 0, err
	}

	profile := models.Profile{
		Vendor:   strings.TrimSpace(in.Vendor),
		Material: strings.TrimSpace(in.Material),
		Density:  in.Density,
		Diameter: in.Diameter,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return 0, &types.StorageError{Op: "create profile", Err: err}
	}
	return profile.ID, nil
}

// UpdateProfile applies the mutable profile fields to an existing record.
func (s *Store) UpdateProfile(id uint64, in ProfileInput) error {
	if err := validateProfile(in); err != nil {
		return err
	}

	var profile models.Profile
	if err := s.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Entity: "profile", ID: id}
		}
		return &types.StorageError{Op: "update profile", Err: err}
	}

	updates := map[string]interface{}{
		"vendor":   strings.TrimSpace(in.Vendor),
		"material": strings.TrimSpace(in.Material),
		"density":  in.Density,
		"diameter": in.Diameter,
	}
	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return &types.StorageError{Op: "update profile", Err: err}
	}
	return nil
}

// DeleteProfile removes a profile unless any filament still references it.
// The reference count and the delete run in one transaction so the guard
// cannot race a concurrent filament insert.
func (s *Store) DeleteProfile(id uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Filament{}).Where("profile_id = ?", id).Count(&count).Error; err != nil {
			return &types.StorageError{Op: "delete profile", Err: err}
		}
		if count > 0 {
			return &types.ConflictError{Message: "profile is in use"}
		}

		result := tx.Delete(&models.Profile{}, id)
		if result.Error != nil {
			return &types.StorageError{Op: "delete profile", Err: result.Error}
		}
		if result.RowsAffected == 0 {
			return &types.NotFoundError{Entity: "profile", ID: id}
		}
		return nil
	})
	return err
}

// CreateFilament validates and inserts a new filament spool, computing the
// stored remaining weight from gross and tare weights. No insert happens
// when the referenced profile does not exist.
func (s *Store) CreateFilament(in FilamentInput) (uint64, error) {
	if err := validateFilament(in); err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.Model(&models.Profile{}).Where("id = ?", in.ProfileID).Count(&count).Error; err != nil {
		return 0, &types.StorageError{Op: "create filament", Err: err}
	}
	if count == 0 {
		return 0, &types.NotFoundError{Entity: "profile", ID: in.ProfileID}
	}

	filament := models.Filament{
		Name:         strings.TrimSpace(in.Name),
		ProfileID:    in.ProfileID,
		ColorHex:     in.ColorHex,
		PriceEUR:     in.PriceEUR,
		WeightG:      in.WeightG,
		SpoolWeightG: in.SpoolWeightG,
		RemainingG:   RemainingWeight(in.WeightG, in.SpoolWeightG),
		PrintTempMin: in.PrintTempMin,
		PrintTempMax: in.PrintTempMax,
		Extra:        in.Extra,
	}
	if err := s.db.Create(&filament).Error; err != nil {
		return 0, &types.StorageError{Op: "create filament", Err: err}
	}
	return filament.ID, nil
}

// UpdateFilament applies the mutable filament fields to an existing record
// and recomputes the remaining weight from the submitted weights.
// created_at is never touched.
func (s *Store) UpdateFilament(id uint64, in FilamentInput) error {
	if err := validateFilament(in); err != nil {
		return err
	}

	var filament models.Filament
	if err := s.db.First(&filament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Entity: "filament", ID: id}
		}
		return &types.StorageError{Op: "update filament", Err: err}
	}

	if in.ProfileID != filament.ProfileID {
		var count int64
		if err := s.db.Model(&models.Profile{}).Where("id = ?", in.ProfileID).Count(&count).Error; err != nil {
			return &types.StorageError{Op: "update filament", Err: err}
		}
		if count == 0 {
			return &types.NotFoundError{Entity: "profile", ID: in.ProfileID}
		}
	}

	updates := map[string]interface{}{
		"name":           strings.TrimSpace(in.Name),
		"profile_id":     in.ProfileID,
		"color_hex":      in.ColorHex,
		"price_eur":      in.PriceEUR,
		"weight_g":       in.WeightG,
		"spool_weight_g": in.SpoolWeightG,
		"remaining_g":    RemainingWeight(in.WeightG, in.SpoolWeightG),
		"print_temp_min": in.PrintTempMin,
		"print_temp_max": in.PrintTempMax,
	}
	if len(in.Extra.JSON) > 0 {
		updates["extra"] = in.Extra
	}
	if err := s.db.Model(&filament).Updates(updates).Error; err != nil {
		return &types.StorageError{Op: "update filament", Err: err}
	}
	return nil
}

// DeleteFilament removes a filament unconditionally.
func (s *Store) DeleteFilament(id uint64) error {
	result := s.db.Delete(&models.Filament{}, id)
	if result.Error != nil {
		return &types.StorageError{Op: "delete filament", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &types.NotFoundError{Entity: "filament", ID: id}
	}
	return nil
}

func validateProfile(in ProfileInput) error {
	if strings.TrimSpace(in.Vendor) == "" {
		return types.NewValidationError("vendor is required")
	}
	if strings.TrimSpace(in.Material) == "" {
		return types.NewValidationError("material is required")
	}
	if in.Density <= 0 {
		return types.NewValidationError("density must be positive")
	}
	if in.Diameter <= 0 {
		return types.NewValidationError("diameter must be positive")
	}
	return nil
}

func validateFilament(in FilamentInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return types.NewValidationError("name is required")
	}
	if in.ProfileID == 0 {
		return types.NewValidationError("profile is required")
	}
	if in.WeightG < 0 {
		return types.NewValidationError("weight must not be negative")
	}
	if in.SpoolWeightG < 0 {
		return types.NewValidationError("spool weight must not be negative")
	}
	if in.PriceEUR != nil && *in.PriceEUR < 0 {
		return types.NewValidationError("price must not be negative")
	}
	if in.ColorHex != nil && *in.ColorHex != "" && !colorHexPattern.MatchString(*in.ColorHex) {
		return types.NewValidationError("color must be a 6 digit hex value")
	}
	if in.PrintTempMin != nil && in.PrintTempMax != nil && *in.PrintTempMin > *in.PrintTempMax {
		return types.NewValidationError("minimum print temperature exceeds maximum")
	}
	return nil
}
