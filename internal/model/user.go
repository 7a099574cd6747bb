package model

import "time"

type UserRole string

const (
	Participant UserRole = "participant"
	JudgeRole   UserRole = "judge"
	Admin       UserRole = "admin"
)

// User accounts are provisioned by the platform's registration module; this
// backend only reads them for judge display names and JWT role resolution.
// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('participant','judge','admin');default:'participant'" json:"role"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
