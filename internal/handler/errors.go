// Package handler holds the pieces shared by every resource handler: the
// translation from domain errors to API errors and small binding helpers.
package handler

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizmate/booking-api/internal/availability"
	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
	scheduleService "github.com/bizmate/booking-api/internal/service/schedule"
	"github.com/bizmate/booking-api/internal/workhours"
	"github.com/bizmate/booking-api/pkg/errors"
	"github.com/bizmate/booking-api/pkg/httputil"
)

// MapError classifies a domain error into an AppError. Business rule
// rejections and input problems map to 400, duplicate schedules to 409,
// missing rows to 404; anything unrecognized is treated as internal.
func MapError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var validationErrs workhours.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.NewValidation("invalid working time", validationErrs.Fields())
	}

	var bookingErr *availability.BookingError
	if stderrors.As(err, &bookingErr) {
		return errors.NewBadRequest(bookingErr.Message, nil)
	}

	var notSpecialist *model.NotSpecialistError
	if stderrors.As(err, &notSpecialist) {
		return errors.NewBadRequest(notSpecialist.Error(), nil)
	}

	var pastErr *model.PastDateTimeError
	if stderrors.As(err, &pastErr) {
		return errors.NewBadRequest(pastErr.Error(), nil)
	}

	var roundErr *model.RoundingError
	if stderrors.As(err, &roundErr) {
		return errors.NewBadRequest(roundErr.Error(), nil)
	}

	if stderrors.Is(err, scheduleService.ErrScheduleExists) {
		return errors.NewConflict(err.Error(), err)
	}

	if stderrors.Is(err, model.ErrInvalidCredentials) {
		return errors.Unauthorized(err)
	}

	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NewNotFound("resource", err)
	}

	return errors.NewInternal(err)
}

// Error maps a domain error and writes the API error response.
func Error(c *gin.Context, err error) {
	httputil.RespondWithError(c, MapError(err))
}

// BindError writes a 400 for a request body or query that failed binding.
func BindError(c *gin.Context, err error) {
	httputil.RespondWithError(c, errors.NewBadRequest(err.Error(), err))
}

// ParseID parses the named path parameter as a UUID, responding with a 400
// on failure. The boolean reports whether the handler should continue.
func ParseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.RespondWithError(c, errors.NewBadRequest("invalid "+param, err))
		return uuid.Nil, false
	}
	return id, true
}
