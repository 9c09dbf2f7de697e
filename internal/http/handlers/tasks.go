package handlers

import (
	"net/http"

	"backend/internal/dto"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	Service services.TaskService
}

// GET /tasks
func (h TaskHandler) List(c *gin.Context) {
	tasks, err := h.Service.GetAllTasks(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /tasks/:id
func (h TaskHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	task, err := h.Service.GetTask(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /tasks
func (h TaskHandler) Create(c *gin.Context) {
	var in dto.TaskDTO
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := h.Service.CreateTask(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /tasks/:id
func (h TaskHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteTask(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
