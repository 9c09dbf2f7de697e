package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	Service services.ReportsService
}

// GET /api/reports/users
func (h ReportsHandler) UserDirectory(c *gin.Context) {
	data, filename, err := h.Service.UserDirectoryPDF(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "reports", "user_directory", filename)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
