package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

const maxAttachmentSize = 20 << 20 // 20 MB

// @Summary Create a treatment record
// @Tags Treatments
// @Accept json
// @Produce json
// @Param input body domain.CreateTreatmentDTO true "Clinical record of a visit"
// @Success 201 {object} domain.Treatment
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Doctor or patient not found"
// @Router /treatments [post]
func (h *Handler) createTreatment(c *gin.Context) {
	var req domain.CreateTreatmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	treatment, err := h.services.Treatment.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, treatment)
}

// @Summary Get a treatment record
// @Tags Treatments
// @Produce json
// @Param id path string true "Treatment ID"
// @Success 200 {object} domain.Treatment
// @Failure 404 {object} errorResponseBody "Treatment not found"
// @Router /treatments/{id} [get]
func (h *Handler) getTreatmentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	treatment, err := h.services.Treatment.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, treatment)
}

// @Summary Update a treatment record
// @Tags Treatments
// @Accept json
// @Produce json
// @Param id path string true "Treatment ID"
// @Param input body domain.UpdateTreatmentDTO true "Fields to update"
// @Success 200 {object} domain.Treatment
// @Failure 404 {object} errorResponseBody "Treatment not found"
// @Router /treatments/{id} [put]
func (h *Handler) updateTreatment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdateTreatmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	treatment, err := h.services.Treatment.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, treatment)
}

// @Summary Upload a treatment attachment
// @Description Uploads an X-ray, scan or document and links it to the treatment record.
// @Tags Treatments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Treatment ID"
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]string "Object key of the stored file"
// @Failure 400 {object} errorResponseBody "Missing or oversized file"
// @Failure 404 {object} errorResponseBody "Treatment not found"
// @Router /treatments/{id}/attachments [post]
func (h *Handler) uploadTreatmentAttachment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "file is required")
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		badRequestResponse(c, "file exceeds the 20 MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequestResponse(c, "failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read attachment body", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	objectKey, err := h.services.Treatment.UploadAttachment(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"object_key": objectKey})
}

// @Summary List a patient's treatments
// @Tags Treatments
// @Produce json
// @Param id path string true "Patient ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Treatment
// @Router /patients/{id}/treatments [get]
func (h *Handler) getPatientTreatments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	treatments, err := h.services.Treatment.ListByPatient(c.Request.Context(), id, limit, offset)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, treatments)
}

// @Summary Create a prescription
// @Tags Treatments
// @Accept json
// @Produce json
// @Param input body domain.CreatePrescriptionDTO true "Prescribed medications"
// @Success 201 {object} domain.Prescription
// @Failure 404 {object} errorResponseBody "Treatment not found"
// @Router /prescriptions [post]
func (h *Handler) createPrescription(c *gin.Context) {
	var req domain.CreatePrescriptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	prescription, err := h.services.Treatment.CreatePrescription(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, prescription)
}

// @Summary List prescriptions for a treatment
// @Tags Treatments
// @Produce json
// @Param id path string true "Treatment ID"
// @Success 200 {array} domain.Prescription
// @Router /treatments/{id}/prescriptions [get]
func (h *Handler) getTreatmentPrescriptions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	prescriptions, err := h.services.Treatment.ListPrescriptionsByTreatment(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, prescriptions)
}

// @Summary Create a treatment plan
// @Tags Treatments
// @Accept json
// @Produce json
// @Param input body domain.CreateTreatmentPlanDTO true "Planned procedures"
// @Success 201 {object} domain.TreatmentPlan
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Router /treatment-plans [post]
func (h *Handler) createTreatmentPlan(c *gin.Context) {
	var req domain.CreateTreatmentPlanDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	plan, err := h.services.Treatment.CreatePlan(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, plan)
}

// @Summary Update a treatment plan
// @Tags Treatments
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param input body domain.UpdateTreatmentPlanDTO true "Fields to update"
// @Success 200 {object} domain.TreatmentPlan
// @Failure 404 {object} errorResponseBody "Plan not found"
// @Router /treatment-plans/{id} [put]
func (h *Handler) updateTreatmentPlan(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdateTreatmentPlanDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	plan, err := h.services.Treatment.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, plan)
}

// @Summary List a patient's treatment plans
// @Tags Treatments
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {array} domain.TreatmentPlan
// @Router /patients/{id}/treatment-plans [get]
func (h *Handler) getPatientTreatmentPlans(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	plans, err := h.services.Treatment.ListPlansByPatient(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, plans)
}
