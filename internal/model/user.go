package model

import (
	"strings"
)

// Role is a user's role in the business, a typed enum rather than a
// string-matched group name.
type Role string

const (
	RoleSuperuser  Role = "superuser"
	RoleManager    Role = "manager"
	RoleSpecialist Role = "specialist"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperuser, RoleManager, RoleSpecialist:
		return true
	}
	return false
}

// CanManage reports whether the role may create and edit staff, locations
// and schedules.
func (r Role) CanManage() bool {
	return r == RoleSuperuser || r == RoleManager
}

// User represents a staff account. Specialists are users with the
// specialist role; only they can hold a schedule and receive appointments.
type User struct {
	Base
	Email        string `json:"email" db:"email"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	Patronymic   string `json:"patronymic,omitempty" db:"patronymic"`
	Position     string `json:"position" db:"position"`
	Bio          string `json:"bio,omitempty" db:"bio"`
	Role         Role   `json:"role" db:"role"`
	IsActive     bool   `json:"is_active" db:"is_active"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// FullName returns "First Last" title-cased, the display name embedded in
// booking error messages.
func (u *User) FullName() string {
	return titleCase(u.FirstName) + " " + titleCase(u.LastName)
}

func (u *User) IsSpecialist() bool {
	return u.Role == RoleSpecialist
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"first_name" binding:"required,max=150"`
	LastName   string `json:"last_name" binding:"required,max=150"`
	Patronymic string `json:"patronymic" binding:"max=150"`
	Position   string `json:"position" binding:"required,max=100"`
	Bio        string `json:"bio" binding:"max=500"`
}

type UpdateUserRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=150"`
	LastName   *string `json:"last_name" binding:"omitempty,max=150"`
	Patronymic *string `json:"patronymic" binding:"omitempty,max=150"`
	Position   *string `json:"position" binding:"omitempty,max=100"`
	Bio        *string `json:"bio" binding:"omitempty,max=500"`
	IsActive   *bool   `json:"is_active"`
}

// SpecialistFilters narrows specialist listings.
type SpecialistFilters struct {
	Email    string `form:"email"`
	Position string `form:"position"`
	OrderBy  string `form:"order_by"`
}
