package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	t.Run("mesmo dia conta como um dia", func(t *testing.T) {
		assert.Equal(t, 1, RentalDays("2025-01-01", "2025-01-01"))
	})

	t.Run("intervalo inclui retirada e devolução", func(t *testing.T) {
		assert.Equal(t, 5, RentalDays("2025-01-01", "2025-01-05"))
		assert.Equal(t, 2, RentalDays("2025-03-10", "2025-03-11"))
	})

	t.Run("intervalo invertido resulta em zero", func(t *testing.T) {
		assert.Equal(t, 0, RentalDays("2025-01-10", "2025-01-05"))
	})

	t.Run("datas fora do formato resultam em zero", func(t *testing.T) {
		assert.Equal(t, 0, RentalDays("01/01/2025", "2025-01-05"))
		assert.Equal(t, 0, RentalDays("2025-01-01", "amanhã"))
		assert.Equal(t, 0, RentalDays("", ""))
	})

	t.Run("cruza fronteira de mês", func(t *testing.T) {
		assert.Equal(t, 4, RentalDays("2025-01-30", "2025-02-02"))
	})
}

func TestCost(t *testing.T) {
	assert.Equal(t, 445.0, Cost(5, 89.0))
	assert.Equal(t, 0.0, Cost(0, 89.0))
	assert.Equal(t, 0.0, Cost(-3, 89.0))
}

func TestCostForRange(t *testing.T) {
	t.Run("cinco dias na diária de 89", func(t *testing.T) {
		assert.Equal(t, 445.0, CostForRange("2025-01-01", "2025-01-05", 89.0))
	})

	t.Run("intervalo invertido custa zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CostForRange("2025-01-10", "2025-01-05", 89.0))
	})

	t.Run("data inválida custa zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CostForRange("not-a-date", "2025-01-05", 89.0))
	})
}
