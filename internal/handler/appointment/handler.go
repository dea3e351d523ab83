package appointment

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizmate/booking-api/internal/handler"
	"github.com/bizmate/booking-api/internal/middleware"
	"github.com/bizmate/booking-api/internal/model"
	appointmentService "github.com/bizmate/booking-api/internal/service/appointment"
	"github.com/bizmate/booking-api/pkg/errors"
	"github.com/bizmate/booking-api/pkg/httputil"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *appointmentService.Service
}

func NewHandler(service *appointmentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
		appointments.PATCH("/:id/complete", h.CompleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	if !h.canModify(c, req.SpecialistID) {
		return
	}

	apt, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithCreated(c, apt)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	apt, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	if !h.canModifyExisting(c, id) || !h.canModify(c, req.SpecialistID) {
		return
	}

	apt, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if !h.canModifyExisting(c, id) {
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) CompleteAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if !h.canModifyExisting(c, id) {
		return
	}

	apt, err := h.service.MarkAsCompleted(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		httputil.RespondWithError(c, errors.NewBadRequest(err.Error(), err))
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, appointments)
}

// canModify enforces the appointment write rule: managers and superusers
// touch any appointment, a specialist only their own. Writes the 403 itself
// and reports whether the handler should continue.
func (h *Handler) canModify(c *gin.Context, specialistID uuid.UUID) bool {
	role, ok := c.Get(middleware.ContextRole)
	if !ok {
		httputil.RespondWithError(c, errors.Forbidden("role required"))
		return false
	}
	if r, ok := role.(model.Role); ok && r.CanManage() {
		return true
	}

	callerID, ok := c.Get(middleware.ContextUserID)
	if ok {
		if id, ok := callerID.(uuid.UUID); ok && id == specialistID {
			return true
		}
	}

	httputil.RespondWithError(c, errors.Forbidden("appointments of other specialists are read-only"))
	return false
}

// canModifyExisting resolves the stored appointment's specialist before
// applying the write rule.
func (h *Handler) canModifyExisting(c *gin.Context, id uuid.UUID) bool {
	apt, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return false
	}
	return h.canModify(c, apt.SpecialistID)
}

// parseFilters reads the optional query filters by hand: UUIDs and the date
// need parsing gin's query binding does not do.
func parseFilters(c *gin.Context) (*model.AppointmentFilters, error) {
	filters := &model.AppointmentFilters{}

	if raw := c.Query("specialist"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		filters.SpecialistID = id
	}
	if raw := c.Query("location"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		filters.LocationID = id
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, err
		}
		filters.Date = date
	}
	filters.ActiveOnly = c.Query("active") == "true"

	return filters, nil
}
