package reservation

import (
	"time"

	"github.com/LocalizaAeServices/rental-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Apply(r *models.Reservation, target Status, now time.Time) error {
	if err := CanTransition(Status(r.Status), target); err != nil {
		return err
	}

	r.Status = string(target)
	switch target {
	case StatusCancelled:
		r.CancelledAt = &now
	case StatusCompleted:
		r.CompletedAt = &now
	}
	return nil
}
