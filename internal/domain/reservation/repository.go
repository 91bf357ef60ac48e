package reservation

import (
	"context"

	"github.com/LocalizaAeServices/rental-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetCategoryByID(
		ctx context.Context,
		id string,
	) (*models.Category, error)

	ListCategories(
		ctx context.Context,
	) ([]models.Category, error)

	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	CountClients(
		ctx context.Context,
	) (int64, error)

	// -------- Reservation --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservationByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	ListReservations(
		ctx context.Context,
	) ([]models.Reservation, error)

	ListActiveReservations(
		ctx context.Context,
	) ([]models.Reservation, error)
}
