package orders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhatsAppLink(t *testing.T) {
	input := PlaceInput{
		CustomerName:    "Asha Rao",
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 MG Road",
	}
	items := []LineInput{{Name: "Paracetamol 500mg", Manufacturer: "Aristo", Quantity: 3}}

	link := BuildWhatsAppLink("+91-98765-43210", 42, input, items)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
	assert.Contains(t, link, "New+Order+%2342")
	assert.Contains(t, link, "Total+items%3A+3")
}

func TestBuildWhatsAppLinkNoPhone(t *testing.T) {
	assert.Empty(t, BuildWhatsAppLink("", 1, PlaceInput{}, nil))
	assert.Empty(t, BuildWhatsAppLink("n/a", 1, PlaceInput{}, nil))
}
