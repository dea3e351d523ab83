package schedule

import (
	stderrors "errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizmate/booking-api/internal/handler"
	"github.com/bizmate/booking-api/internal/model"
	appointmentService "github.com/bizmate/booking-api/internal/service/appointment"
	scheduleService "github.com/bizmate/booking-api/internal/service/schedule"
	"github.com/bizmate/booking-api/pkg/errors"
	"github.com/bizmate/booking-api/pkg/httputil"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service      *scheduleService.Service
	appointments *appointmentService.Service
}

func NewHandler(service *scheduleService.Service, appointments *appointmentService.Service) *Handler {
	return &Handler{service: service, appointments: appointments}
}

// RegisterRoutes mounts schedule CRUD keyed by specialist id, plus the
// free/busy day view under the specialist resource.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, manage gin.HandlerFunc) {
	schedules := r.Group("/schedules")
	{
		schedules.GET("", h.ListSchedules)
		schedules.GET("/:specialistId", h.GetSchedule)
		schedules.POST("", manage, h.CreateSchedule)
		schedules.PUT("/:specialistId", manage, h.UpdateSchedule)
		schedules.DELETE("/:specialistId", manage, h.DeleteSchedule)
	}

	r.GET("/specialists/:id/schedule/:date", h.GetDayView)
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req model.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	schedule, err := h.service.CreateSchedule(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithCreated(c, schedule)
}

func (h *Handler) GetSchedule(c *gin.Context) {
	specialistID, ok := handler.ParseID(c, "specialistId")
	if !ok {
		return
	}

	schedule, err := h.service.GetSchedule(c.Request.Context(), specialistID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, schedule)
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	specialistID, ok := handler.ParseID(c, "specialistId")
	if !ok {
		return
	}

	var req model.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	schedule, err := h.service.UpdateSchedule(c.Request.Context(), specialistID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, schedule)
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	specialistID, ok := handler.ParseID(c, "specialistId")
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(c.Request.Context(), specialistID); err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.service.ListSchedules(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, schedules)
}

// GetDayView returns a specialist's booked and free intervals for one date.
// Referencing a non-specialist here is a 404 rather than a 400: the resource
// "specialist" itself does not exist at that id.
func (h *Handler) GetDayView(c *gin.Context) {
	specialistID, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		httputil.RespondWithError(c, errors.NewBadRequest("invalid date, expected YYYY-MM-DD", err))
		return
	}

	view, err := h.appointments.GetDayView(c.Request.Context(), specialistID, date)
	if err != nil {
		var notSpecialist *model.NotSpecialistError
		if stderrors.As(err, &notSpecialist) {
			httputil.RespondWithError(c, errors.NewNotFound("specialist", err))
			return
		}
		handler.Error(c, err)
		return
	}

	httputil.RespondWithSuccess(c, view)
}
