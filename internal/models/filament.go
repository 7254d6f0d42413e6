package models

import (
	"time"
)

// Filament represents one physical spool: its gross weight, tare weight,
// the derived remaining material weight and display metadata.
type Filament struct {
	ID           uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string   `gorm:"size:255;not null" json:"name" form:"name"`
	ProfileID    uint64   `gorm:"not null;index" json:"profile_id" form:"profile_id"`
	Profile      Profile  `gorm:"foreignKey:ProfileID" json:"profile"`
	ColorHex     *string  `gorm:"size:6" json:"color_hex,omitempty" form:"color_hex"`
	PriceEUR     *float64 `json:"price_eur,omitempty" form:"price_eur"`
	WeightG      int      `gorm:"not null" json:"weight_g" form:"weight_g"`
	SpoolWeightG int      `gorm:"not null;default:200" json:"spool_weight_g" form:"spool_weight_g"`
	RemainingG   int      `gorm:"not null;default:0" json:"remaining_g"`
	PrintTempMin *int     `json:"print_temp_min,omitempty" form:"print_temp_min"`
	PrintTempMax *int     `json:"print_temp_max,omitempty" form:"print_temp_max"`
	Extra        JSON     `gorm:"type:json" json:"extra,omitempty"`
	// CreatedAt is set once at insert time and never updated afterwards.
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Filament
func (Filament) TableName() string {
	return "filaments"
}
