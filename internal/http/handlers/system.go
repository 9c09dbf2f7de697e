package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	DB *sql.DB
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "database not connected")
		return
	}
	var count int
	if err := h.DB.QueryRowContext(c.Request.Context(), `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "database query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "users_in_db": count})
}
