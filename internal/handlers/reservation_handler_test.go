package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	infraRepo "github.com/LocalizaAeServices/rental-api/internal/infra/repository"
	"github.com/LocalizaAeServices/rental-api/internal/middleware"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	ucReservation "github.com/LocalizaAeServices/rental-api/internal/usecase/reservation"
)

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := infraRepo.NewRentalGormRepository(db)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "test-user")
		c.Set(middleware.ContextUserRole, "funcionario")
		c.Next()
	})

	h := NewReservationHandler(
		db,
		ucReservation.NewCreateReservation(repo, nil),
		ucReservation.NewSetReservationStatus(repo, nil),
	)
	r.GET("/api/reservations", h.List)
	r.POST("/api/reservations", h.Create)
	r.PATCH("/api/reservations/:id/status", h.SetStatus)

	return r
}

func seedRentalFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Category{
		ID: "eco", Name: "Econômico", PricePerDay: 89, Stock: 8,
	}).Error)
	require.NoError(t, db.Create(&models.Client{
		ID: "12345678900", Name: "Maria Souza",
		CPF: "123.456.789-00", Phone: "(11) 98888-7777",
		Email: "maria@exemplo.com.br", Active: true,
	}).Error)
}

func validReservation() map[string]any {
	return map[string]any{
		"clientId":   "12345678900",
		"categoryId": "eco",
		"pickupDate": "2025-01-01",
		"returnDate": "2025-01-05",
		"pickupTime": "10:00",
		"returnTime": "18:00",
	}
}

func TestReservationCreate(t *testing.T) {
	t.Run("cria com status Ativa e id gerado", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)

		w := postJSON(r, "/api/reservations", validReservation())
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Reservation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Ativa", created.Status)
		assert.Equal(t, "eco", created.CategoryID)
	})

	t.Run("cliente inexistente retorna 404", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)

		body := validReservation()
		body["clientId"] = "nao-existe"

		w := postJSON(r, "/api/reservations", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "client_not_found")
	})

	t.Run("categoria inexistente retorna 404", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)

		body := validReservation()
		body["categoryId"] = "luxo"

		w := postJSON(r, "/api/reservations", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "category_not_found")
	})

	t.Run("corpo incompleto retorna 400", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)

		body := validReservation()
		delete(body, "returnDate")

		w := postJSON(r, "/api/reservations", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing_required_fields")
	})
}

func TestReservationSetStatus(t *testing.T) {
	createOne := func(t *testing.T, db *gorm.DB, r *gin.Engine) string {
		t.Helper()
		w := postJSON(r, "/api/reservations", validReservation())
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Reservation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		return created.ID
	}

	t.Run("conclui e persiste o timestamp", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)
		id := createOne(t, db, r)

		w := doJSON(r, http.MethodPatch, "/api/reservations/"+id+"/status",
			map[string]any{"status": "Concluída"})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Reservation
		require.NoError(t, db.First(&stored, "id = ?", id).Error)
		assert.Equal(t, "Concluída", stored.Status)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("cancelada não volta a ativa", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)
		id := createOne(t, db, r)

		require.Equal(t, http.StatusOK, doJSON(r, http.MethodPatch,
			"/api/reservations/"+id+"/status", map[string]any{"status": "Cancelada"}).Code)

		w := doJSON(r, http.MethodPatch, "/api/reservations/"+id+"/status",
			map[string]any{"status": "Ativa"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_status")
	})

	t.Run("terminal é absorvente", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)
		id := createOne(t, db, r)

		require.Equal(t, http.StatusOK, doJSON(r, http.MethodPatch,
			"/api/reservations/"+id+"/status", map[string]any{"status": "Concluída"}).Code)

		w := doJSON(r, http.MethodPatch, "/api/reservations/"+id+"/status",
			map[string]any{"status": "Cancelada"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_state")
	})

	t.Run("reserva inexistente retorna 404", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)

		w := doJSON(r, http.MethodPatch, "/api/reservations/nope/status",
			map[string]any{"status": "Cancelada"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sem status no corpo retorna 400", func(t *testing.T) {
		db := setupTestDB(t)
		seedRentalFixtures(t, db)
		r := setupReservationRouter(db)
		id := createOne(t, db, r)

		w := doJSON(r, http.MethodPatch, "/api/reservations/"+id+"/status",
			map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing_status")
	})
}
