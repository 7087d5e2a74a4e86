package cart

import (
	"sort"
	"time"
)

// Item is one cart line, keyed by the product's catalog slug.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity"`
}

// Cart is a session-scoped shopping cart. It is a staging area only;
// stock is not reconciled until the order is placed.
type Cart struct {
	Items     map[string]Item `json:"items"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func newCart() *Cart {
	return &Cart{Items: map[string]Item{}}
}

// TotalItems sums the quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// List returns the cart lines ordered by slug for stable output.
func (c *Cart) List() []Item {
	items := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
