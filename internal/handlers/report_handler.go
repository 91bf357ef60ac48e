package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LocalizaAeServices/rental-api/internal/httperr"
	ucReport "github.com/LocalizaAeServices/rental-api/internal/usecase/report"
)

type ReportHandler struct {
	summarizeUC *ucReport.Summarize
}

func NewReportHandler(summarizeUC *ucReport.Summarize) *ReportHandler {
	return &ReportHandler{summarizeUC: summarizeUC}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.summarizeUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao gerar relatório.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
