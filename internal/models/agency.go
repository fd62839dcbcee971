package models

import (
	"fmt"

	"gorm.io/gorm"
)

type Agency struct {
	gorm.Model
	AgencyID       string `json:"agency_id" gorm:"unique;not null"`
	AgencyName     string `json:"agency_name" gorm:"not null"`
	OwnerName      string `json:"owner_name"`
	OperateStation string `json:"operate_station"` // station the agency serves, used for search
	AgencyEmail    string `json:"agency_email" gorm:"uniqueIndex;not null"`
	AgencyMobile   string `json:"agency_mobile"`
	Address        string `json:"address"`
	PasswordHash   string `json:"-" gorm:"not null"`
	AgencyLicense  string `json:"agency_license"`
	GSTNumber      string `json:"gst_number"`
	PANNumber      string `json:"pan_number"`
}

// BeforeCreate generates AgencyID
func (a *Agency) BeforeCreate(tx *gorm.DB) error {
	if a.AgencyID == "" {
		var count int64
		tx.Model(&Agency{}).Count(&count)
		a.AgencyID = fmt.Sprintf("AG%05d", count+1)
	}
	return nil
}

// Principal returns the session summary for an agency login.
func (a *Agency) Principal() Principal {
	return Principal{
		ID:    a.AgencyID,
		Email: a.AgencyEmail,
		Name:  a.AgencyName,
		Role:  RoleAgency,
	}
}
