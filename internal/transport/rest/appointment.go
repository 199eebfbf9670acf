package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

// @Summary Book an appointment
// @Description Books an exact generated slot for a doctor. The interval must match a slot precisely and be free.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Appointment details"
// @Success 201 {object} domain.AppointmentResponse
// @Failure 400 {object} errorResponseBody "Validation error or slot not available"
// @Failure 404 {object} errorResponseBody "Doctor or patient not found"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, appointment)
}

// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param doctor_id query string false "Doctor ID"
// @Param patient_id query string false "Patient ID"
// @Param status query string false "scheduled, completed, cancelled or rescheduled"
// @Param start_date query string false "Earliest start, YYYY-MM-DD"
// @Param end_date query string false "Latest start (exclusive), YYYY-MM-DD"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} paginatedResponse
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	filter, err := parseAppointmentFilter(c)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list appointments", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	page := filter.Offset/filter.Limit + 1
	paginatedSuccessResponse(c, appointments, total, page, filter.Limit)
}

// @Summary Get an appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} domain.AppointmentResponse
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Update an appointment
// @Description Applies a partial update. Changing doctor or time bounds re-validates slot availability.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.UpdateAppointmentDTO true "Fields to update"
// @Success 200 {object} domain.AppointmentResponse
// @Failure 400 {object} errorResponseBody "Validation error or slot not available"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointment.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Cancel an appointment
// @Description Cancels the appointment and frees its slot. A reason is mandatory.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.CancelAppointmentDTO true "Cancellation reason"
// @Success 200 {object} domain.AppointmentResponse
// @Failure 400 {object} errorResponseBody "Missing reason"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.CancelAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "cancelled_reason is required")
		return
	}

	appointment, err := h.services.Appointment.Cancel(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Reschedule an appointment
// @Description Moves the appointment to a new slot. The record keeps its ID and remembers its original booking.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.RescheduleAppointmentDTO true "New slot"
// @Success 200 {object} domain.AppointmentResponse
// @Failure 400 {object} errorResponseBody "Validation error or slot not available"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/reschedule [post]
func (h *Handler) rescheduleAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.RescheduleAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointment.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

func parseAppointmentFilter(c *gin.Context) (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{}

	if v := c.Query("doctor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errInvalidFilter("doctor_id")
		}
		filter.DoctorID = &id
	}
	if v := c.Query("patient_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errInvalidFilter("patient_id")
		}
		filter.PatientID = &id
	}
	if v := c.Query("status"); v != "" {
		status := domain.AppointmentStatus(v)
		filter.Status = &status
	}
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, errInvalidFilter("start_date")
		}
		filter.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, errInvalidFilter("end_date")
		}
		filter.EndDate = &t
	}

	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	return filter, nil
}

type filterError string

func (e filterError) Error() string { return string(e) }

func errInvalidFilter(field string) error {
	return filterError("invalid " + field + " filter value")
}
