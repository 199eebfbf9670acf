package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

// @Summary Add a catalog item
// @Description Adds a reusable dental issue or treatment name to the clinic catalog.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param input body domain.CreateCatalogItemDTO true "Catalog item"
// @Success 201 {object} domain.DentalCatalogItem
// @Failure 400 {object} errorResponseBody "Validation error"
// @Router /catalog [post]
func (h *Handler) createCatalogItem(c *gin.Context) {
	var req domain.CreateCatalogItemDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	item, err := h.services.Catalog.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, item)
}

// @Summary List catalog items
// @Tags Catalog
// @Produce json
// @Param type query string false "issue or treatment"
// @Param is_common query bool false "Only frequently used items"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.DentalCatalogItem
// @Router /catalog [get]
func (h *Handler) getCatalogItems(c *gin.Context) {
	filter := domain.CatalogFilter{}

	if v := c.Query("type"); v != "" {
		itemType := domain.CatalogItemType(v)
		if itemType != domain.CatalogItemTypeIssue && itemType != domain.CatalogItemTypeTreatment {
			badRequestResponse(c, "type must be issue or treatment")
			return
		}
		filter.Type = &itemType
	}
	if v := c.Query("is_common"); v != "" {
		isCommon, err := strconv.ParseBool(v)
		if err != nil {
			badRequestResponse(c, "is_common must be true or false")
			return
		}
		filter.IsCommon = &isCommon
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.services.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, items)
}

// @Summary List common catalog items
// @Description Shortcut for the frequently used issues and treatments shown first in clinical forms.
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.DentalCatalogItem
// @Router /catalog/common [get]
func (h *Handler) getCommonCatalogItems(c *gin.Context) {
	isCommon := true
	items, err := h.services.Catalog.List(c.Request.Context(), domain.CatalogFilter{IsCommon: &isCommon})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, items)
}

// @Summary Get a catalog item
// @Tags Catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.DentalCatalogItem
// @Failure 404 {object} errorResponseBody "Item not found"
// @Router /catalog/{id} [get]
func (h *Handler) getCatalogItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.services.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, item)
}

// @Summary Update a catalog item
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param input body domain.UpdateCatalogItemDTO true "Fields to update"
// @Success 200 {object} domain.DentalCatalogItem
// @Failure 404 {object} errorResponseBody "Item not found"
// @Router /catalog/{id} [put]
func (h *Handler) updateCatalogItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdateCatalogItemDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	item, err := h.services.Catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, item)
}

// @Summary Delete a catalog item
// @Tags Catalog
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} errorResponseBody "Item not found"
// @Router /catalog/{id} [delete]
func (h *Handler) deleteCatalogItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Catalog.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
