package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LocalizaAeServices/rental-api/internal/audit"
	"github.com/LocalizaAeServices/rental-api/internal/cache"
	domain "github.com/LocalizaAeServices/rental-api/internal/domain/reservation"
	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	"github.com/LocalizaAeServices/rental-api/internal/middleware"
	"github.com/LocalizaAeServices/rental-api/internal/models"
	"github.com/LocalizaAeServices/rental-api/internal/storage"
	"github.com/LocalizaAeServices/rental-api/internal/timezone"
)

type CategoryHandler struct {
	db       *gorm.DB
	catalog  *cache.Catalog
	uploader *storage.S3Uploader
	audit    *audit.Logger
}

func NewCategoryHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	uploader *storage.S3Uploader,
) *CategoryHandler {
	return &CategoryHandler{
		db:       db,
		catalog:  catalog,
		uploader: uploader,
		audit:    audit.New(db),
	}
}

// CategoryView expõe a categoria com o estoque disponível derivado.
type CategoryView struct {
	models.Category
	Available int `json:"available"`
}

// ======================================================
// LIST (catálogo cacheado, disponibilidade sempre fresca)
// ======================================================

func (h *CategoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	cats, hit := h.catalog.Get(ctx)
	if !hit {
		if err := h.db.Order("name ASC").Find(&cats).Error; err != nil {
			httperr.Internal(c, "failed_to_list_categories", "Erro de servidor.")
			return
		}
		h.catalog.Set(ctx, cats)
	}

	var active []models.Reservation
	if err := h.db.
		Where("status = ?", string(domain.StatusActive)).
		Find(&active).Error; err != nil {

		httperr.Internal(c, "failed_to_list_categories", "Erro de servidor.")
		return
	}

	out := make([]CategoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryView{
			Category:  cat,
			Available: domain.AvailableStock(cat, active),
		})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// UPLOAD IMAGE (gerente)
// ======================================================

func (h *CategoryHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_unavailable", "Armazenamento de imagens não configurado.")
		return
	}

	id := c.Param("id")

	var cat models.Category
	if err := h.db.Where("id = ?", id).First(&cat).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem é obrigatório.")
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeCategoryImage(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (JPEG ou PNG).")
		return
	}

	key := fmt.Sprintf("categorias/%s-%d.webp", cat.ID, timezone.Now().Unix())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	cat.Image = url
	if err := h.db.Model(&cat).Update("image", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Erro de servidor.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	userID := c.GetString(middleware.ContextUserID)
	h.audit.Log(&userID, "category_image_updated", "category", cat.ID, nil)

	c.JSON(http.StatusOK, cat)
}
