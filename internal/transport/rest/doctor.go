package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create a doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Doctor profile with weekly schedule"
// @Success 201 {object} domain.Doctor
// @Failure 400 {object} errorResponseBody "Validation error"
// @Router /doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var req domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	doctor, err := h.services.Doctor.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, doctor)
}

// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param search query string false "Name or specialization substring"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Doctor
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	doctors, err := h.services.Doctor.List(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctors)
}

// @Summary Get a doctor
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} domain.Doctor
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Update a doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param input body domain.UpdateDoctorDTO true "Fields to update"
// @Success 200 {object} domain.Doctor
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	doctor, err := h.services.Doctor.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Delete a doctor
// @Tags Doctors
// @Param id path string true "Doctor ID"
// @Success 204
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [delete]
func (h *Handler) deleteDoctor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Doctor.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Get available slots for a doctor
// @Description Returns the free bookable intervals for a doctor on a date, per the clinic booking policy.
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Param date query string true "Date in YYYY-MM-DD"
// @Success 200 {array} schedule.Slot
// @Failure 400 {object} errorResponseBody "Malformed date or settings not configured"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id}/available-slots [get]
func (h *Handler) getAvailableSlots(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		badRequestResponse(c, "date must be in YYYY-MM-DD format")
		return
	}

	slots, err := h.services.Doctor.GetAvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}
