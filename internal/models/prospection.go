package models

import "time"

const (
	ClientNameMaxLength       = 100
	SpecialtyMaxLength        = 100
	StructureMaxLength        = 100
	PhoneMaxLength            = 15
	ProspectionNotesMaxLength = 200
)

type Prospection struct {
	ID                 uint      `gorm:"primaryKey"`
	CommercialID       uint      `gorm:"not null;index"`
	Date               time.Time `gorm:"type:date;not null;index"`
	ClientName         string    `gorm:"not null"`
	Specialty          string    `gorm:"not null"`
	Structure          string    `gorm:"not null"`
	Phone              string    `gorm:"not null"`
	ProspectProfiles   string
	ProductsPresented  string
	ProductsPrescribed string
	CreatedAt          time.Time

	Commercial User `gorm:"foreignKey:CommercialID"`
}
