package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

// @Summary Register a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param input body domain.CreatePatientDTO true "Patient details"
// @Success 201 {object} domain.Patient
// @Failure 400 {object} errorResponseBody "Validation error"
// @Router /patients [post]
func (h *Handler) createPatient(c *gin.Context) {
	var req domain.CreatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	patient, err := h.services.Patient.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, patient)
}

// @Summary List patients
// @Tags Patients
// @Produce json
// @Param search query string false "Name, email or phone substring"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Patient
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	patients, err := h.services.Patient.List(c.Request.Context(), domain.PatientFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patients)
}

// @Summary Get a patient
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} domain.Patient
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	patient, err := h.services.Patient.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Update a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param input body domain.UpdatePatientDTO true "Fields to update"
// @Success 200 {object} domain.Patient
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Router /patients/{id} [put]
func (h *Handler) updatePatient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	patient, err := h.services.Patient.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Delete a patient
// @Tags Patients
// @Param id path string true "Patient ID"
// @Success 204
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Router /patients/{id} [delete]
func (h *Handler) deletePatient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Patient.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
