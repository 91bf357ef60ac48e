package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/LocalizaAeServices/rental-api/internal/domain/reservation"
	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	"gorm.io/gorm"
)

func TestSetReservationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("cancela reserva ativa", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetReservationByID", ctx, "res-1").
			Return(&models.Reservation{ID: "res-1", Status: string(domain.StatusActive)}, nil)
		repo.On("UpdateReservation", ctx, mock.AnythingOfType("*models.Reservation")).
			Return(nil)

		uc := NewSetReservationStatus(repo, nil)
		r, err := uc.Execute(ctx, "user-1", "res-1", "Cancelada")

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), r.Status)
		require.NotNil(t, r.CancelledAt)
		repo.AssertExpectations(t)
	})

	t.Run("conclui reserva ativa", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetReservationByID", ctx, "res-1").
			Return(&models.Reservation{ID: "res-1", Status: string(domain.StatusActive)}, nil)
		repo.On("UpdateReservation", ctx, mock.AnythingOfType("*models.Reservation")).
			Return(nil)

		uc := NewSetReservationStatus(repo, nil)
		r, err := uc.Execute(ctx, "user-1", "res-1", "Concluída")

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), r.Status)
		require.NotNil(t, r.CompletedAt)
	})

	t.Run("reserva inexistente", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetReservationByID", ctx, "nope").
			Return(nil, gorm.ErrRecordNotFound)

		uc := NewSetReservationStatus(repo, nil)
		_, err := uc.Execute(ctx, "user-1", "nope", "Cancelada")

		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
	})

	t.Run("status desconhecido", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetReservationByID", ctx, "res-1").
			Return(&models.Reservation{ID: "res-1", Status: string(domain.StatusActive)}, nil)

		uc := NewSetReservationStatus(repo, nil)
		_, err := uc.Execute(ctx, "user-1", "res-1", "Pendente")

		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
		repo.AssertNotCalled(t, "UpdateReservation", mock.Anything, mock.Anything)
	})

	t.Run("terminal não muda de status", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetReservationByID", ctx, "res-1").
			Return(&models.Reservation{ID: "res-1", Status: string(domain.StatusCompleted)}, nil)

		uc := NewSetReservationStatus(repo, nil)
		_, err := uc.Execute(ctx, "user-1", "res-1", "Cancelada")

		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		repo.AssertNotCalled(t, "UpdateReservation", mock.Anything, mock.Anything)
	})
}
