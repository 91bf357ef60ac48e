package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LocalizaAeServices/rental-api/internal/middleware"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	"github.com/LocalizaAeServices/rental-api/internal/policy"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	role := policy.Role(user.Role)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"capabilities": gin.H{
			"register_users":  role.CanRegisterUsers(),
			"manage_catalog":  role.CanManageCatalog(),
			"view_audit_logs": role.CanViewAuditLogs(),
		},
	})
}
