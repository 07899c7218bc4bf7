package dto

import "time"

// OrderRequest describes the order form as submitted by the client. Weight
// arrives as entered text and is validated server side.
type OrderRequest struct {
	MeatTypes    []string `json:"meatTypes"`
	Kilogram     string   `json:"kilogram"`
	SalesType    string   `json:"salesType"`
	CustomerName string   `json:"customerName"`
	WaiterName   string   `json:"waiterName"`
}

// OrderItemResponse is one itemized entry of an order.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Price    string  `json:"price,omitempty"`
}

// OrderResponse is a single order in API responses.
type OrderResponse struct {
	ID           string              `json:"id"`
	MeatTypes    []string            `json:"meatTypes"`
	Kilogram     float64             `json:"kilogram"`
	SalesType    string              `json:"salesType"`
	CustomerName string              `json:"customerName,omitempty"`
	WaiterName   string              `json:"waiterName,omitempty"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	FinishedAt   *time.Time          `json:"finishedAt,omitempty"`
	TimeConsumed string              `json:"timeConsumed,omitempty"`
}

// DashboardResponse is the butcher dashboard payload.
type DashboardResponse struct {
	Orders         []OrderResponse    `json:"orders"`
	Page           int                `json:"page"`
	TotalPages     int                `json:"totalPages"`
	RecentCount    int                `json:"recentCount"`
	TotalKilograms float64            `json:"totalKilograms"`
	KgByMeatType   map[string]float64 `json:"kgByMeatType"`
	KgByChannel    map[string]float64 `json:"kgByChannel"`
	ServerTime     time.Time          `json:"serverTime"`
}

// HistoryResponse is the cook history payload.
type HistoryResponse struct {
	Orders        []OrderResponse `json:"orders"`
	Filter        string          `json:"filter"`
	Page          int             `json:"page"`
	TotalPages    int             `json:"totalPages"`
	TodayCount    int             `json:"todayCount"`
	PreviousCount int             `json:"previousCount"`
}

// ReportResponse is the admin sales report payload.
type ReportResponse struct {
	Orders         []OrderResponse    `json:"orders"`
	KgByMeatType   map[string]float64 `json:"kgByMeatType"`
	TotalKilograms float64            `json:"totalKilograms"`
	GeneratedAt    time.Time          `json:"generatedAt"`
}
