package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex:uq_employees_email"`
	Type      Type      `gorm:"type:varchar(20);not null;index"`
	HireDate  time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
