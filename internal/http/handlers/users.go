package handlers

import (
	"net/http"

	"backend/internal/domain"
	"backend/internal/dto"
	"backend/internal/http/middleware"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service services.UserService
}

// GET /api/users?page&size&sortBy&sortDir
func (h UserHandler) List(c *gin.Context) {
	page, ok := queryInt(c, "page", 0)
	if !ok {
		return
	}
	size, ok := queryInt(c, "size", domain.DefaultPageSize)
	if !ok {
		return
	}

	req := domain.PageRequest{
		Page:      page,
		Size:      size,
		SortField: c.DefaultQuery("sortBy", "firstName"),
		SortDir:   c.DefaultQuery("sortDir", domain.SortAsc),
	}

	result, err := h.Service.ListUsers(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/users/search?name=
func (h UserHandler) Search(c *gin.Context) {
	users, err := h.Service.SearchUsers(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func (h UserHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	user, err := h.Service.GetUser(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /api/users
func (h UserHandler) Create(c *gin.Context) {
	var in dto.UserDTO
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := h.Service.CreateUser(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "user", "create", created.Email)
	c.JSON(http.StatusCreated, created)
}

// PUT /api/users/:id
func (h UserHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var in dto.UserDTO
	if !BindJSONOrError(c, &in) {
		return
	}
	updated, err := h.Service.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "user", "update", updated.Email)
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/users/:id
func (h UserHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteUser(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "user", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}
