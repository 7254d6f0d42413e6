package models

import (
	"time"
)

// Profile represents a filament type definition (vendor + material),
// shared by any number of physical spools.
type Profile struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Vendor    string    `gorm:"size:255;not null;index" json:"vendor" form:"vendor"`
	Material  string    `gorm:"size:64;not null" json:"material" form:"material"`
	Density   float64   `gorm:"not null;default:1.24" json:"density" form:"density"`
	Diameter  float64   `gorm:"not null;default:1.75" json:"diameter" form:"diameter"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Filaments []Filament `gorm:"foreignKey:ProfileID" json:"-"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
