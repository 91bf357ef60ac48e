package reservation

import "github.com/LocalizaAeServices/rental-api/internal/models"

// ActiveCount conta reservas Ativas contra uma categoria.
func ActiveCount(categoryID string, reservations []models.Reservation) int {
	count := 0
	for _, r := range reservations {
		if r.CategoryID == categoryID && Status(r.Status) == StatusActive {
			count++
		}
	}
	return count
}

// AvailableStock deriva o estoque disponível: total da frota menos reservas
// Ativas. Derivado sob demanda, nunca persistido. Pode ficar negativo quando
// há mais reservas ativas que estoque — a criação de reserva não bloqueia.
func AvailableStock(cat models.Category, reservations []models.Reservation) int {
	return cat.Stock - ActiveCount(cat.ID, reservations)
}
