package usecase

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"
)

// RenderReport formats the admin report as a printable text table.
func RenderReport(view *ReportView) string {
	var buf strings.Builder
	buf.WriteString("SALES REPORT\n")
	fmt.Fprintf(&buf, "Generated: %s\n", view.GeneratedAt.Format(time.RFC3339))
	buf.WriteString("\n")

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tORDER\tMEAT\tKG\tCHANNEL\tSTATUS")
	for i, order := range view.Orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%s\n",
			i+1,
			order.ID,
			strings.Join(order.MeatTypes, ", "),
			order.Kilogram,
			order.SalesType,
			order.Status,
		)
	}
	w.Flush()

	buf.WriteString("\n")
	types := make([]string, 0, len(view.KgByMeatType))
	for name := range view.KgByMeatType {
		types = append(types, name)
	}
	sort.Strings(types)
	for _, name := range types {
		fmt.Fprintf(&buf, "%s: %.2f kg\n", name, view.KgByMeatType[name])
	}
	fmt.Fprintf(&buf, "TOTAL: %.2f kg\n", view.TotalKilograms)
	return buf.String()
}
