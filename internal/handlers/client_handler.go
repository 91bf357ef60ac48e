package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LocalizaAeServices/rental-api/internal/audit"
	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/middleware"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	"github.com/LocalizaAeServices/rental-api/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		db:    db,
		audit: audit.New(db),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateClientStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro de servidor.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios.")
		return
	}

	client := models.Client{
		ID:     req.ID,
		Name:   req.Name,
		CPF:    req.CPF,
		Phone:  req.Phone,
		Email:  validators.NormalizeEmail(req.Email),
		Active: true,
	}

	if err := h.db.Create(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "client_already_exists", "Cliente com este CPF ou Email já existe.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "Erro de servidor.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	h.audit.Log(&userID, "client_created", "client", client.ID, nil)

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE STATUS (ativar / inativar)
// ======================================================

func (h *ClientHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "O status ativo deve ser um valor booleano.")
		return
	}

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	// Toggle livre: qualquer estado para qualquer estado
	client.Active = *req.Active
	if err := h.db.Model(&client).Update("active", client.Active).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro de servidor.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	h.audit.Log(&userID, "client_status_changed", "client", client.ID,
		map[string]bool{"active": client.Active})

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE (cascata atômica)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if client.Active {
		httperr.Forbidden(c, "client_active", "Não é possível excluir um cliente ativo. Inative-o primeiro.")
		return
	}

	// Reservas dependentes saem junto, na mesma transação — inclusive o
	// histórico de concluídas e canceladas, sem etapa de arquivamento.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", client.ID).
			Delete(&models.Reservation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&client).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro de servidor.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	h.audit.Log(&userID, "client_deleted", "client", client.ID, nil)

	c.JSON(http.StatusOK, client)
}
