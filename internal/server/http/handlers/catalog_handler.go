package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/server/http/dto"
	"github.com/butcherynv/posdesk/internal/usecase"
)

// CatalogHandler manages the meat item and waiter lists.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Items handles GET /api/items. Without a page parameter the full list is
// returned, which the order form uses for its meat type checkboxes.
func (h *CatalogHandler) Items(c *gin.Context) {
	if c.Query("page") == "" {
		items, err := h.facade.Items(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		response := make([]dto.NamedResponse, 0, len(items))
		for _, item := range items {
			response = append(response, dto.NamedResponse{ID: item.ID, Name: item.Name})
		}
		c.JSON(http.StatusOK, response)
		return
	}

	page, err := h.facade.ItemPage(c.Request.Context(), pageQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemPageResponse(page))
}

// CreateItem handles POST /api/items.
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	if err := h.facade.AddItem(c.Request.Context(), name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateItem handles PUT /api/items/:id.
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	if err := h.facade.RenameItem(c.Request.Context(), c.Param("id"), name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteItem handles DELETE /api/items/:id.
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.facade.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Waiters handles GET /api/waiters. Without a page parameter the full list
// is returned, which the order form uses for its waiter picker.
func (h *CatalogHandler) Waiters(c *gin.Context) {
	if c.Query("page") == "" {
		waiters, err := h.facade.Waiters(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		response := make([]dto.NamedResponse, 0, len(waiters))
		for _, w := range waiters {
			response = append(response, dto.NamedResponse{ID: w.ID, Name: w.Name})
		}
		c.JSON(http.StatusOK, response)
		return
	}

	page, err := h.facade.WaiterPage(c.Request.Context(), pageQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWaiterPageResponse(page))
}

// CreateWaiter handles POST /api/waiters.
func (h *CatalogHandler) CreateWaiter(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	if err := h.facade.AddWaiter(c.Request.Context(), name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateWaiter handles PUT /api/waiters/:id.
func (h *CatalogHandler) UpdateWaiter(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	if err := h.facade.RenameWaiter(c.Request.Context(), c.Param("id"), name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteWaiter handles DELETE /api/waiters/:id.
func (h *CatalogHandler) DeleteWaiter(c *gin.Context) {
	if err := h.facade.RemoveWaiter(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindName(c *gin.Context) (string, bool) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return "", false
	}
	return req.Name, true
}

func toItemPageResponse(page *usecase.CatalogPage[model.Item]) dto.CatalogPageResponse {
	entries := make([]dto.NamedResponse, 0, len(page.Entries))
	for _, e := range page.Entries {
		entries = append(entries, dto.NamedResponse{ID: e.ID, Name: e.Name})
	}
	return dto.CatalogPageResponse{Entries: entries, Page: page.Page, TotalPages: page.TotalPages, Total: page.Total}
}

func toWaiterPageResponse(page *usecase.CatalogPage[model.Waiter]) dto.CatalogPageResponse {
	entries := make([]dto.NamedResponse, 0, len(page.Entries))
	for _, e := range page.Entries {
		entries = append(entries, dto.NamedResponse{ID: e.ID, Name: e.Name})
	}
	return dto.CatalogPageResponse{Entries: entries, Page: page.Page, TotalPages: page.TotalPages, Total: page.Total}
}
