package reservation

import (
	"context"

	"github.com/LocalizaAeServices/rental-api/internal/audit"
	domain "github.com/LocalizaAeServices/rental-api/internal/domain/reservation"
	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ClientID   string
	CategoryID string

	PickupDate string
	ReturnDate string
	PickupTime string
	ReturnTime string

	PickupLocation string
	ReturnLocation string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	userID string,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if in.ClientID == "" || in.CategoryID == "" ||
		in.PickupDate == "" || in.ReturnDate == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrNotFound("client_not_found")
	}

	category, err := uc.repo.GetCategoryByID(ctx, in.CategoryID)
	if err != nil {
		return nil, httperr.ErrNotFound("category_not_found")
	}

	// O estoque disponível é consultivo: a criação não bloqueia quando a
	// categoria já está toda reservada, nem valida a ordem das datas. Um
	// intervalo invertido vira custo zero no cálculo compartilhado.
	r := &models.Reservation{
		ClientID:   client.ID,
		CategoryID: category.ID,

		PickupDate: in.PickupDate,
		ReturnDate: in.ReturnDate,
		PickupTime: in.PickupTime,
		ReturnTime: in.ReturnTime,

		PickupLocation: in.PickupLocation,
		ReturnLocation: in.ReturnLocation,

		Status: string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: r.ID,
	})

	return r, nil
}
