package backend

import (
	"encoding/json"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// meatList accepts either a JSON array of labels or a bare string. Older order
// records store meatType as a plain string; those decode as a one-element list.
type meatList []string

func (m *meatList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*m = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*m = nil
		return nil
	}
	*m = meatList{one}
	return nil
}

// wireNamed mirrors the upstream item and waiter records.
type wireNamed struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type wireOrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Price    string  `json:"price"`
}

// wireOrder mirrors the upstream order record. Kilogram defaults to zero when
// absent; timestamps are ISO-8601 strings.
type wireOrder struct {
	ID           string          `json:"_id"`
	MeatType     meatList        `json:"meatType"`
	SalesType    string          `json:"salesType"`
	CustomerName string          `json:"customerName"`
	WaiterName   string          `json:"waiterName"`
	Kilogram     float64         `json:"kilogram"`
	Status       string          `json:"status"`
	Items        []wireOrderItem `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	FinishedAt   *time.Time      `json:"finishedAt,omitempty"`
}

type wireOrderPayload struct {
	MeatType     []string `json:"meatType"`
	SalesType    string   `json:"salesType"`
	CustomerName string   `json:"customerName"`
	WaiterName   string   `json:"waiterName"`
	Kilogram     float64  `json:"kilogram"`
}

type finishPayload struct {
	Status     string `json:"status"`
	FinishedAt string `json:"finishedAt"`
}

type namePayload struct {
	Name string `json:"name"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type registerPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// orderToModel converts a wire order into the domain shape. Pending is
// assumed when the status field is absent.
func orderToModel(o wireOrder) model.Order {
	status := model.OrderStatus(o.Status)
	if status == "" {
		status = model.OrderStatusPending
	}
	var items []model.OrderItem
	if len(o.Items) > 0 {
		items = make([]model.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, model.OrderItem{
				Name:     it.Name,
				Quantity: it.Quantity,
				Weight:   it.Weight,
				Price:    it.Price,
			})
		}
	}
	return model.Order{
		ID:           o.ID,
		MeatTypes:    []string(o.MeatType),
		Kilogram:     o.Kilogram,
		SalesType:    model.NormalizeChannel(model.SalesChannel(o.SalesType)),
		CustomerName: o.CustomerName,
		WaiterName:   o.WaiterName,
		Status:       status,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		FinishedAt:   o.FinishedAt,
	}
}

func ordersToModel(orders []wireOrder) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToModel(o))
	}
	return out
}

func payloadToWire(p model.OrderPayload) wireOrderPayload {
	return wireOrderPayload{
		MeatType:     p.MeatTypes,
		SalesType:    string(p.SalesType),
		CustomerName: p.CustomerName,
		WaiterName:   p.WaiterName,
		Kilogram:     p.Kilogram,
	}
}
