package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:40;not null;index" json:"clientId"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CategoryID string   `gorm:"size:20;not null;index" json:"categoryId"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Datas no formato YYYY-MM-DD, horários opcionais HH:MM
	PickupDate string `gorm:"size:10;not null" json:"pickupDate"`
	ReturnDate string `gorm:"size:10;not null" json:"returnDate"`
	PickupTime string `gorm:"size:5" json:"pickupTime"`
	ReturnTime string `gorm:"size:5" json:"returnTime"`

	PickupLocation string `gorm:"size:100" json:"pickupLocation"`
	ReturnLocation string `gorm:"size:100" json:"returnLocation"`

	Status string `gorm:"size:20;default:'Ativa'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
