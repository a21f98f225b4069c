// Package model contains the GORM persistence models mirroring the database
// schema. PostgreSQL generates UUIDs via uuid_generate_v7().
package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Slug          string    `gorm:"type:varchar(100);unique;not null"`
	Vertical      string    `gorm:"type:varchar(20);not null"`
	Phone         string    `gorm:"type:varchar(30)"`
	WhatsappPhone string    `gorm:"type:varchar(30)"`
	Currency      string    `gorm:"type:varchar(3);not null;default:'TRY'"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
