package domain

import (
	"time"

	"github.com/google/uuid"
)

type CatalogItemType string

const (
	CatalogItemTypeIssue     CatalogItemType = "issue"
	CatalogItemTypeTreatment CatalogItemType = "treatment"
)

// DentalCatalogItem is a reusable dental issue or treatment name used to fill
// diagnosis and treatment forms.
type DentalCatalogItem struct {
	ID        uuid.UUID       `json:"id"`
	Type      CatalogItemType `json:"type"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	IsCommon  bool            `json:"is_common"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CreateCatalogItemDTO struct {
	Type     CatalogItemType `json:"type" binding:"required,oneof=issue treatment"`
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	IsCommon *bool           `json:"is_common,omitempty"`
}

type UpdateCatalogItemDTO struct {
	Type     *CatalogItemType `json:"type,omitempty" binding:"omitempty,oneof=issue treatment"`
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	IsCommon *bool            `json:"is_common,omitempty"`
}

type CatalogFilter struct {
	Type     *CatalogItemType `json:"type"`
	IsCommon *bool            `json:"is_common"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}
