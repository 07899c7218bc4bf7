package dto

// NameRequest carries the single name field used by item and waiter writes.
type NameRequest struct {
	Name string `json:"name"`
}

// NamedResponse is one catalog entry.
type NamedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogPageResponse is one admin page of a catalog list.
type CatalogPageResponse struct {
	Entries    []NamedResponse `json:"entries"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Total      int             `json:"total"`
}
