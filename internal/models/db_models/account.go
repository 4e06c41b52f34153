package db_models

import "bookstore/pkg/utils"

type Account struct {
	BaseModel
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	RoleID       int    `gorm:"not null;default:2"`
}

// Role falls back to the least privileged role for ids written outside
// the service layer.
func (a *Account) Role() utils.Role {
	role, err := utils.RoleFromID(a.RoleID)
	if err != nil {
		return utils.RoleUser
	}
	return role
}
