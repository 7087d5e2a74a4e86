package stock

import "strings"

// Aggregate sums quantities per trimmed product name, preserving the
// order each name was first seen. The result is independent of row
// order up to that ordering.
func Aggregate(rows []Row) ([]string, map[string]int) {
	totals := make(map[string]int, len(rows))
	var names []string
	for _, row := range rows {
		name := strings.TrimSpace(row.ProductName)
		if name == "" {
			continue
		}
		if _, ok := totals[name]; !ok {
			names = append(names, name)
		}
		totals[name] += row.StockQuantity
	}
	return names, totals
}
