package models

import (
	"fmt"

	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	DriverID      string `json:"driver_id" gorm:"unique;not null"`
	FullName      string `json:"full_name" gorm:"not null"`
	Email         string `json:"email" gorm:"uniqueIndex;not null"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	AgencyID      string `json:"agency_id" gorm:"index"`
	PasswordHash  string `json:"-" gorm:"not null"`
}

// BeforeCreate generates DriverID
func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.DriverID == "" {
		var count int64
		tx.Model(&Driver{}).Count(&count)
		d.DriverID = fmt.Sprintf("DR%05d", count+1)
	}
	return nil
}

// Principal returns the session summary for a driver login.
func (d *Driver) Principal() Principal {
	return Principal{
		ID:    d.DriverID,
		Email: d.Email,
		Name:  d.FullName,
		Role:  RoleDriver,
	}
}
