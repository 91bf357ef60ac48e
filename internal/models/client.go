package models

import "time"

type Client struct {
	ID   string `gorm:"primaryKey;size:40" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	CPF   string `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	Phone string `gorm:"size:20;not null" json:"phone"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	// Somente clientes inativos podem ser excluídos
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
