package orders

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildWhatsAppLink assembles a wa.me deep link with a prefilled order
// summary for the checkout handoff. Returns "" when no business phone
// is configured.
func BuildWhatsAppLink(phone string, orderID uint, input PlaceInput, items []LineInput) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New Order #%d\n", orderID)
	fmt.Fprintf(&b, "Name: %s\n", input.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", input.CustomerPhone)
	fmt.Fprintf(&b, "Address: %s\n", input.CustomerAddress)
	b.WriteString("Items:\n")
	total := 0
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s) x %d\n", item.Name, item.Manufacturer, item.Quantity)
		total += item.Quantity
	}
	fmt.Fprintf(&b, "Total items: %d", total)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(b.String())
}
