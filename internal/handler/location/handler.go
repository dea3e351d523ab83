package location

import (
	"github.com/gin-gonic/gin"

	"github.com/bizmate/booking-api/internal/handler"
	"github.com/bizmate/booking-api/internal/model"
	locationService "github.com/bizmate/booking-api/internal/service/location"
	"github.com/bizmate/booking-api/pkg/httputil"
)

type Handler struct {
	service *locationService.Service
}

func NewHandler(service *locationService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, manage gin.HandlerFunc) {
	locations := r.Group("/locations")
	{
		locations.GET("", h.ListLocations)
		locations.GET("/:id", h.GetLocation)
		locations.POST("", manage, h.CreateLocation)
		locations.PUT("/:id", manage, h.UpdateLocation)
		locations.DELETE("/:id", manage, h.DeleteLocation)
	}
}

func (h *Handler) CreateLocation(c *gin.Context) {
	var req model.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	location, err := h.service.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithCreated(c, location)
}

func (h *Handler) GetLocation(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	location, err := h.service.GetLocation(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, location)
}

func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	location, err := h.service.UpdateLocation(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, location)
}

func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteLocation(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) ListLocations(c *gin.Context) {
	var filters model.LocationFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.BindError(c, err)
		return
	}

	locations, err := h.service.ListLocations(c.Request.Context(), &filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, locations)
}
