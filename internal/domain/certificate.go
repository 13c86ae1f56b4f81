package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Certificate struct {
	ID              int64          `json:"id" gorm:"primaryKey"`
	Title           string         `json:"title" gorm:"size:200;not null"`
	Issuer          string         `json:"issuer" gorm:"size:200;not null"`
	FromDate        datatypes.Date `json:"from_date" gorm:"not null"`
	ToDate          datatypes.Date `json:"to_date" gorm:"not null"`
	Duration        string         `json:"duration" gorm:"size:50"`
	PDFPath         *string        `json:"pdf_path" gorm:"column:pdf_path;size:255"`
	VerificationURL string         `json:"verification_url" gorm:"size:255"`
	DisplayOrder    int            `json:"display_order" gorm:"not null;default:0"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Certificate) TableName() string { return "certificates" }
