package report

import (
	"context"
	"time"

	domain "github.com/LocalizaAeServices/rental-api/internal/domain/reservation"
	"github.com/LocalizaAeServices/rental-api/internal/models"
)

// Summary agrega receita e volume de aluguéis. Reservas canceladas ficam de
// fora de tudo. Os 12 buckets mensais usam o mês da data de retirada, sem
// dimensão de ano — dados de vários anos caem no mesmo bucket.
type Summary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalRentals  int     `json:"totalRentals"`
	AverageTicket float64 `json:"averageTicket"`

	// Contagem total de clientes cadastrados, não de clientes com reserva.
	UniqueClients int64 `json:"uniqueClients"`

	MonthlyRevenue [12]float64 `json:"monthlyRevenue"`
	MonthlyCount   [12]int     `json:"monthlyCount"`
}

type Summarize struct {
	repo domain.Repository
}

func NewSummarize(repo domain.Repository) *Summarize {
	return &Summarize{repo: repo}
}

func (uc *Summarize) Execute(ctx context.Context) (*Summary, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	clientCount, err := uc.repo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	s := Build(categories, reservations, clientCount)
	return &s, nil
}

// Build é o fold puro por trás do relatório, separado para teste direto.
func Build(
	categories []models.Category,
	reservations []models.Reservation,
	clientCount int64,
) Summary {

	prices := make(map[string]float64, len(categories))
	for _, c := range categories {
		prices[c.ID] = c.PricePerDay
	}

	var s Summary
	s.UniqueClients = clientCount

	for _, r := range reservations {
		if domain.Status(r.Status) == domain.StatusCancelled {
			continue
		}

		s.TotalRentals++

		cost := domain.CostForRange(r.PickupDate, r.ReturnDate, prices[r.CategoryID])
		s.TotalRevenue += cost

		if t, err := time.Parse(domain.DateLayout, r.PickupDate); err == nil {
			m := int(t.Month()) - 1
			s.MonthlyRevenue[m] += cost
			s.MonthlyCount[m]++
		}
	}

	if s.TotalRentals > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.TotalRentals)
	}

	return s
}
