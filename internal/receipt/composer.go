package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/usecase"
)

// Line is one row of the receipt table.
type Line struct {
	Index    int     `json:"index"`
	Label    string  `json:"label"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Price    string  `json:"price"`
}

// Document is a composed receipt ready for rendering or JSON delivery.
type Document struct {
	OrderID      string     `json:"orderId"`
	CustomerName string     `json:"customerName,omitempty"`
	WaiterName   string     `json:"waiterName,omitempty"`
	SalesType    string     `json:"salesType"`
	CreatedAt    time.Time  `json:"createdAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	Lines        []Line     `json:"lines"`
	TotalKg      float64    `json:"totalKg"`
}

// Compose builds a receipt from a finished order. Orders recorded before
// itemized entries existed carry no item rows; those get a single synthetic
// line built from the meat types and the recorded total weight.
func Compose(order model.Order) Document {
	doc := Document{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		WaiterName:   order.WaiterName,
		SalesType:    string(order.SalesType),
		CreatedAt:    order.CreatedAt,
		FinishedAt:   order.FinishedAt,
	}

	if len(order.Items) == 0 {
		doc.Lines = []Line{{
			Index:    1,
			Label:    strings.Join(order.MeatTypes, ", "),
			Quantity: 1,
			Weight:   usecase.Round2(order.Kilogram),
		}}
		doc.TotalKg = usecase.Round2(order.Kilogram)
		return doc
	}

	for i, item := range order.Items {
		doc.Lines = append(doc.Lines, Line{
			Index:    i + 1,
			Label:    item.Name,
			Quantity: item.Quantity,
			Weight:   usecase.Round2(item.Weight),
			Price:    item.Price,
		})
		doc.TotalKg += item.Weight
	}
	doc.TotalKg = usecase.Round2(doc.TotalKg)
	return doc
}

// Render formats the document as plain text suitable for a line printer.
func (d Document) Render() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "ORDER %s\n", d.OrderID)
	if d.CustomerName != "" {
		fmt.Fprintf(&buf, "Customer: %s\n", d.CustomerName)
	}
	if d.WaiterName != "" {
		fmt.Fprintf(&buf, "Waiter: %s\n", d.WaiterName)
	}
	fmt.Fprintf(&buf, "Channel: %s\n", d.SalesType)
	fmt.Fprintf(&buf, "Created: %s\n", d.CreatedAt.Format(time.RFC3339))
	if d.FinishedAt != nil {
		fmt.Fprintf(&buf, "Finished: %s\n", d.FinishedAt.Format(time.RFC3339))
	}
	buf.WriteByte('\n')

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tITEM\tQTY\tKG\tPRICE")
	for _, l := range d.Lines {
		price := l.Price
		if price == "" {
			price = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%s\n", l.Index, l.Label, l.Quantity, l.Weight, price)
	}
	fmt.Fprintf(w, "\tTOTAL\t\t%.2f\t\n", d.TotalKg)
	w.Flush()

	return buf.String()
}
