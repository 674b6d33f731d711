package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. ADMIN is provisioned by seeding or by another admin;
// self-registration only accepts MANAGER and OPERATOR.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleOperator = "OPERATOR"
)

// ValidRegistrationRole reports whether a role may be chosen at
// public self-registration.
func ValidRegistrationRole(role string) bool {
	return role == RoleManager || role == RoleOperator
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:254" json:"email"`
	FirstName    string     `gorm:"size:150" json:"first_name"`
	LastName     string     `gorm:"size:150" json:"last_name"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:OPERATOR" json:"role"`
	MotoristaID  *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"motorista_id,omitempty"`
	Motorista    *Driver    `gorm:"foreignKey:MotoristaID" json:"-"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"criado_em"`
	UpdatedAt    time.Time  `json:"atualizado_em"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
