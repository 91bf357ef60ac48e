package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/models"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusActive, InitialStatus())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusActive))
	assert.True(t, IsValid(StatusCompleted))
	assert.True(t, IsValid(StatusCancelled))
	assert.False(t, IsValid(Status("Pendente")))
	assert.False(t, IsValid(Status("")))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusActive))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestCanTransition(t *testing.T) {
	t.Run("ativa pode concluir ou cancelar", func(t *testing.T) {
		assert.NoError(t, CanTransition(StatusActive, StatusCompleted))
		assert.NoError(t, CanTransition(StatusActive, StatusCancelled))
	})

	t.Run("destino desconhecido é rejeitado", func(t *testing.T) {
		err := CanTransition(StatusActive, Status("Pendente"))
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	})

	t.Run("voltar para ativa é rejeitado", func(t *testing.T) {
		err := CanTransition(StatusCompleted, StatusActive)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	})

	t.Run("estados terminais são absorventes", func(t *testing.T) {
		for _, from := range []Status{StatusCompleted, StatusCancelled} {
			for _, to := range []Status{StatusCompleted, StatusCancelled} {
				err := CanTransition(from, to)
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		}
	})
}

func TestApply(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("cancelar registra timestamp", func(t *testing.T) {
		r := &models.Reservation{Status: string(StatusActive)}

		require.NoError(t, Apply(r, StatusCancelled, now))

		assert.Equal(t, string(StatusCancelled), r.Status)
		require.NotNil(t, r.CancelledAt)
		assert.Equal(t, now, *r.CancelledAt)
		assert.Nil(t, r.CompletedAt)
	})

	t.Run("concluir registra timestamp", func(t *testing.T) {
		r := &models.Reservation{Status: string(StatusActive)}

		require.NoError(t, Apply(r, StatusCompleted, now))

		assert.Equal(t, string(StatusCompleted), r.Status)
		require.NotNil(t, r.CompletedAt)
		assert.Nil(t, r.CancelledAt)
	})

	t.Run("transição inválida não altera a reserva", func(t *testing.T) {
		r := &models.Reservation{Status: string(StatusCancelled)}

		err := Apply(r, StatusCompleted, now)
		require.Error(t, err)

		assert.Equal(t, string(StatusCancelled), r.Status)
		assert.Nil(t, r.CompletedAt)
	})
}
