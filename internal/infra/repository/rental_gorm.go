package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/LocalizaAeServices/rental-api/internal/domain/reservation"
	"github.com/LocalizaAeServices/rental-api/internal/models"
)

type RentalGormRepository struct {
	db *gorm.DB
}

func NewRentalGormRepository(db *gorm.DB) *RentalGormRepository {
	return &RentalGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *RentalGormRepository) GetCategoryByID(
	ctx context.Context,
	id string,
) (*models.Category, error) {

	var cat models.Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *RentalGormRepository) ListCategories(
	ctx context.Context,
) ([]models.Category, error) {

	var cats []models.Category
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *RentalGormRepository) GetClientByID(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *RentalGormRepository) CountClients(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *RentalGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *RentalGormRepository) GetReservationByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *RentalGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *RentalGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("pickup_date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RentalGormRepository) ListActiveReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusActive)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*RentalGormRepository)(nil)
