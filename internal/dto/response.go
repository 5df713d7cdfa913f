package dto

import (
	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/models"
)

// PaginatedResponse is the envelope for paged search results.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
	HasMore    bool        `json:"has_more"`
	Seq        string      `json:"seq,omitempty"`
}

func NewPaginatedResponse[T any](p algorithms.Page[T], seq string) *PaginatedResponse {
	data := p.Items
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse{
		Data:       data,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		HasMore:    p.HasMore,
		Seq:        seq,
	}
}

type FacetResponse struct {
	Category  models.Category         `json:"category"`
	Dimension algorithms.Dimension    `json:"dimension"`
	Values    []algorithms.FacetCount `json:"values"`
	Seq       string                  `json:"seq,omitempty"`
}

type PlanCatalogResponse struct {
	Currency string              `json:"currency"`
	Plans    []models.PlanOption `json:"plans"`
}

// DataResponse wraps single-object payloads; Data may be null.
type DataResponse struct {
	Data interface{} `json:"data"`
}
