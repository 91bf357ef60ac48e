package reservation

import "time"

const DateLayout = "2006-01-02"

// RentalDays calcula a duração cobrável em dias, incluindo o dia de retirada
// e o de devolução. Intervalo invertido ou datas fora do formato resultam em
// 0 — o custo correspondente também é 0, nunca erro.
func RentalDays(pickupDate, returnDate string) int {
	start, err := time.Parse(DateLayout, pickupDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, returnDate)
	if err != nil {
		return 0
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days <= 0 {
		return 0
	}
	return days
}

func Cost(days int, pricePerDay float64) float64 {
	if days <= 0 {
		return 0
	}
	return float64(days) * pricePerDay
}

// CostForRange é o único ponto de cálculo de custo do sistema: criação,
// histórico do cliente e relatórios passam todos por aqui.
func CostForRange(pickupDate, returnDate string, pricePerDay float64) float64 {
	return Cost(RentalDays(pickupDate, returnDate), pricePerDay)
}
