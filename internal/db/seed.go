package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LocalizaAeServices/rental-api/internal/models"
)

// Seed garante catálogo e usuários padrão antes de a API subir.
// Categorias são upsertadas (preço/estoque podem ser corrigidos por deploy);
// usuários só são criados quando o e-mail ainda não existe.
func Seed(db *gorm.DB) error {
	categories := []models.Category{
		{
			ID:          "eco",
			Name:        "Econômico",
			PricePerDay: 89,
			Stock:       8,
			Features:    []string{"5 pessoas", "Manual", "Flex"},
			Image:       "https://cdn.localiza-ae.com.br/categorias/eco.webp",
		},
		{
			ID:          "int",
			Name:        "Intermediário",
			PricePerDay: 129,
			Stock:       12,
			Features:    []string{"5 pessoas", "Automático", "Flex"},
			Image:       "https://cdn.localiza-ae.com.br/categorias/int.webp",
		},
		{
			ID:          "exe",
			Name:        "Executivo",
			PricePerDay: 189,
			Stock:       6,
			Features:    []string{"Couro", "GPS", "Som premium"},
			Image:       "https://cdn.localiza-ae.com.br/categorias/exe.webp",
		},
		{
			ID:          "suv",
			Name:        "SUV",
			PricePerDay: 159,
			Stock:       5,
			Features:    []string{"Espaçoso", "Automático", "Flex"},
			Image:       "https://cdn.localiza-ae.com.br/categorias/suv.webp",
		},
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price_per_day", "stock", "features", "image"}),
	}).Create(&categories).Error; err != nil {
		return err
	}

	users := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Gerente Principal", "gerente@empresa.com", "654321", "gerente"},
		{"Funcionário Padrão", "funcionario@empresa.com", "123456", "funcionario"},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ?", u.email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if err := db.Create(&models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hashed),
			Role:         u.role,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
