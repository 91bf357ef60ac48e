package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/middleware"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	ucReservation "github.com/LocalizaAeServices/rental-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db        *gorm.DB
	createUC  *ucReservation.CreateReservation
	setStatUC *ucReservation.SetReservationStatus
}

func NewReservationHandler(
	db *gorm.DB,
	createUC *ucReservation.CreateReservation,
	setStatUC *ucReservation.SetReservationStatus,
) *ReservationHandler {
	return &ReservationHandler{
		db:        db,
		createUC:  createUC,
		setStatUC: setStatUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ClientID   string `json:"clientId" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`

	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
	PickupTime string `json:"pickupTime"`
	ReturnTime string `json:"returnTime"`

	PickupLocation string `json:"pickupLocation"`
	ReturnLocation string `json:"returnLocation"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	var reservations []models.Reservation
	if err := h.db.
		Order("pickup_date DESC").
		Find(&reservations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reservations", "Erro de servidor.")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Campos obrigatórios faltando.")
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), userID, ucReservation.CreateReservationInput{
		ClientID:   req.ClientID,
		CategoryID: req.CategoryID,

		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
		PickupTime: req.PickupTime,
		ReturnTime: req.ReturnTime,

		PickupLocation: req.PickupLocation,
		ReturnLocation: req.ReturnLocation,
	})
	if err != nil {
		if httperr.IsBusiness(err, "client_not_found") {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "category_not_found") {
			httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
			return
		}
		if httperr.Respond(c, err, "Campos obrigatórios faltando.") {
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Erro ao criar reserva.")
		return
	}

	c.JSON(http.StatusCreated, r)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *ReservationHandler) SetStatus(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_status", "Novo status é obrigatório.")
		return
	}

	r, err := h.setStatUC.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
			return
		}
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Reserva concluída ou cancelada não pode mudar de status.")
			return
		}
		httperr.Internal(c, "failed_to_update_reservation", "Erro ao atualizar status da reserva.")
		return
	}

	c.JSON(http.StatusOK, r)
}
