package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/server/http/dto"
	"github.com/butcherynv/posdesk/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Dashboard handles GET /api/dashboard.
func (h *OrderHandler) Dashboard(c *gin.Context) {
	view, err := h.facade.Dashboard(c.Request.Context(), time.Now(), pageQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Orders:         toOrderResponses(view.Orders),
		Page:           view.Page,
		TotalPages:     view.TotalPages,
		RecentCount:    view.RecentCount,
		TotalKilograms: view.TotalKilograms,
		KgByMeatType:   view.KgByMeatType,
		KgByChannel:    view.KgByChannel,
		ServerTime:     view.ServerTime,
	})
}

// History handles GET /api/history.
func (h *OrderHandler) History(c *gin.Context) {
	filter := usecase.FilterToday
	if c.Query("filter") == string(usecase.FilterPrevious) {
		filter = usecase.FilterPrevious
	}

	view, err := h.facade.History(c.Request.Context(), time.Now(), filter, pageQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Orders:        toOrderResponses(view.Orders),
		Filter:        string(view.Filter),
		Page:          view.Page,
		TotalPages:    view.TotalPages,
		TodayCount:    view.TodayCount,
		PreviousCount: view.PreviousCount,
	})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	h.submit(c, "")
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	h.submit(c, c.Param("id"))
}

func (h *OrderHandler) submit(c *gin.Context, editID string) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	form := usecase.NewOrderForm()
	form.MeatTypes = req.MeatTypes
	form.WeightText = req.Kilogram
	form.SalesType = model.SalesChannel(req.SalesType)
	form.CustomerName = req.CustomerName
	form.WaiterName = req.WaiterName
	if editID != "" {
		form.BeginEdit(editID)
	}

	if err := h.facade.SubmitOrder(c.Request.Context(), form); err != nil {
		writeError(c, err)
		return
	}

	if editID != "" {
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusCreated)
}

// Finish handles POST /api/orders/:id/finish.
func (h *OrderHandler) Finish(c *gin.Context) {
	order, err := h.facade.FinishOrder(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.RemoveOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Receipt handles GET /api/orders/:id/receipt. Plain-text rendering is
// selected with ?format=text.
func (h *OrderHandler) Receipt(c *gin.Context) {
	doc, err := h.facade.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, doc.Render())
		return
	}
	c.JSON(http.StatusOK, doc)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Weight:   item.Weight,
			Price:    item.Price,
		})
	}
	if len(items) == 0 {
		items = nil
	}

	return dto.OrderResponse{
		ID:           order.ID,
		MeatTypes:    order.MeatTypes,
		Kilogram:     order.Kilogram,
		SalesType:    string(order.SalesType),
		CustomerName: order.CustomerName,
		WaiterName:   order.WaiterName,
		Status:       string(order.Status),
		Items:        items,
		CreatedAt:    order.CreatedAt,
		FinishedAt:   order.FinishedAt,
		TimeConsumed: usecase.TimeConsumed(order.CreatedAt, order.FinishedAt),
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}
