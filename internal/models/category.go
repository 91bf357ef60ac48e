package models

import "time"

// Categoria de veículo alugável (estoque por categoria, não por unidade)
type Category struct {
	ID   string `gorm:"primaryKey;size:20" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	PricePerDay float64  `gorm:"not null" json:"pricePerDay"`
	Stock       int      `gorm:"not null" json:"stock"`
	Features    []string `gorm:"serializer:json" json:"features"`
	Image       string   `gorm:"size:2048" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
