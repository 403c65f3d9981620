package models

import (
	"time"
)

// UserRole is kept free-form; these are the values the frontend sends.
type UserRole string

const (
	RoleDonor   UserRole = "DONOR"
	RoleCharity UserRole = "CHARITY"
	RoleAdmin   UserRole = "ADMIN"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"not null;default:'DONOR'"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Active    bool      `json:"active" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
