package reservation

import (
	"context"

	"github.com/LocalizaAeServices/rental-api/internal/audit"
	domain "github.com/LocalizaAeServices/rental-api/internal/domain/reservation"
	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	"github.com/LocalizaAeServices/rental-api/internal/timezone"
)

type SetReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetReservationStatus {
	return &SetReservationStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetReservationStatus) Execute(
	ctx context.Context,
	userID string,
	reservationID string,
	target string,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrNotFound("reservation_not_found")
	}

	from := r.Status

	now := timezone.Now()
	if err := domain.Apply(r, domain.Status(target), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_status_changed",
		Entity:   "reservation",
		EntityID: r.ID,
		Metadata: map[string]string{"from": from, "to": r.Status},
	})

	return r, nil
}
