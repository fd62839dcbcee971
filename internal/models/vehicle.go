package models

import "gorm.io/gorm"

type Vehicle struct {
	gorm.Model
	VehicleName      string  `json:"vehicle_name" gorm:"not null"`
	VehicleModel     string  `json:"model" gorm:"column:model"`
	NumberPlate      string  `json:"number_plate" gorm:"uniqueIndex;not null"`
	RCNumber         string  `json:"rc_number"`
	InsuranceNumber  string  `json:"insurance_number"`
	OwnerName        string  `json:"owner_name"`
	ACType           string  `json:"ac_type"`      // "AC", "Non-AC", "Both"
	VehicleType      string  `json:"vehicle_type"` // "Premium", "Sedan", "SUV", "Hatchback"
	MaxCapacity      int     `json:"max_capacity"`
	RatePerKM        float64 `json:"rate_per_km"`
	AgencyID         string  `json:"agency_id" gorm:"index;not null"`
	AssignedDriverID string  `json:"assigned_driver_id"`
}
