package dbmodels

import (
	"time"

	"hiring-backend/models"
)

type User struct {
	BaseModel
	Name              string          `gorm:"type:varchar(255)"`
	Email             string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash      string          `gorm:"type:varchar(255)" json:"-"`
	Role              models.UserRole `gorm:"type:varchar(50);default:user"`
	Active            bool            `gorm:"default:true"`
	LastLogin         time.Time
	PasswordChangedAt time.Time
}
