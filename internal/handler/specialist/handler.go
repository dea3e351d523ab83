package specialist

import (
	"github.com/gin-gonic/gin"

	"github.com/bizmate/booking-api/internal/handler"
	"github.com/bizmate/booking-api/internal/model"
	userService "github.com/bizmate/booking-api/internal/service/user"
	"github.com/bizmate/booking-api/pkg/httputil"
)

type Handler struct {
	service *userService.Service
}

func NewHandler(service *userService.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the specialist CRUD. manage guards the endpoints
// restricted to managers and superusers.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, manage gin.HandlerFunc) {
	specialists := r.Group("/specialists")
	{
		specialists.GET("", h.ListSpecialists)
		specialists.GET("/:id", h.GetSpecialist)
		specialists.POST("", manage, h.CreateSpecialist)
		specialists.PUT("/:id", manage, h.UpdateSpecialist)
		specialists.DELETE("/:id", manage, h.DeleteSpecialist)
	}
}

func (h *Handler) CreateSpecialist(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	specialist, err := h.service.CreateSpecialist(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithCreated(c, specialist)
}

func (h *Handler) GetSpecialist(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	specialist, err := h.service.GetSpecialist(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, specialist)
}

func (h *Handler) UpdateSpecialist(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	specialist, err := h.service.UpdateSpecialist(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, specialist)
}

func (h *Handler) DeleteSpecialist(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSpecialist(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) ListSpecialists(c *gin.Context) {
	var filters model.SpecialistFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.BindError(c, err)
		return
	}

	specialists, err := h.service.ListSpecialists(c.Request.Context(), &filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, specialists)
}
