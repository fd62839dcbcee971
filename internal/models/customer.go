package models

import (
	"fmt"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	CustomerID   string `json:"customer_id" gorm:"unique;not null"`
	Username     string `json:"username" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// BeforeCreate generates CustomerID
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.CustomerID == "" {
		var count int64
		tx.Model(&Customer{}).Count(&count)
		c.CustomerID = fmt.Sprintf("CU%05d", count+1)
	}
	return nil
}

// Principal returns the session summary for a customer login.
func (c *Customer) Principal() Principal {
	return Principal{
		ID:    c.CustomerID,
		Email: c.Email,
		Name:  c.Username,
		Role:  RoleCustomer,
	}
}
