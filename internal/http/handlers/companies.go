package handlers

import (
	"net/http"

	"backend/internal/dto"
	"backend/internal/http/middleware"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	Service services.CompanyService
}

// GET /api/companies
func (h CompanyHandler) List(c *gin.Context) {
	companies, err := h.Service.GetAllCompanies(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GET /api/companies/:companyId
func (h CompanyHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "companyId")
	if !ok {
		return
	}
	company, err := h.Service.GetCompany(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// POST /api/companies
func (h CompanyHandler) Create(c *gin.Context) {
	var in dto.CompanyDTO
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := h.Service.CreateCompany(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "company", "create", created.Email)
	c.JSON(http.StatusCreated, created)
}

// PUT /api/companies/:companyId
func (h CompanyHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "companyId")
	if !ok {
		return
	}
	var in dto.CompanyDTO
	if !BindJSONOrError(c, &in) {
		return
	}
	updated, err := h.Service.UpdateCompany(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "company", "update", updated.Email)
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/companies/:companyId
func (h CompanyHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "companyId")
	if !ok {
		return
	}
	if err := h.Service.DeleteCompany(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "company", "delete", c.Param("companyId"))
	c.Status(http.StatusNoContent)
}

// GET /api/companies/:companyId/users
func (h CompanyHandler) ListUsers(c *gin.Context) {
	id, ok := PathID(c, "companyId")
	if !ok {
		return
	}
	users, err := h.Service.GetUsersByCompany(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/companies/:companyId/users/:userId
func (h CompanyHandler) AssignUser(c *gin.Context) {
	companyID, ok := PathID(c, "companyId")
	if !ok {
		return
	}
	userID, ok := PathID(c, "userId")
	if !ok {
		return
	}
	if err := h.Service.AssignUserToCompany(c.Request.Context(), companyID, userID); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "company", "assign_user", c.Param("userId"))
	c.Status(http.StatusOK)
}

// DELETE /api/companies/:companyId/users/:userId
func (h CompanyHandler) RemoveUser(c *gin.Context) {
	companyID, ok := PathID(c, "companyId")
	if !ok {
		return
	}
	userID, ok := PathID(c, "userId")
	if !ok {
		return
	}
	if err := h.Service.RemoveUserFromCompany(c.Request.Context(), companyID, userID); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "company", "remove_user", c.Param("userId"))
	c.Status(http.StatusNoContent)
}
