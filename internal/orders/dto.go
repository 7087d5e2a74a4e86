package orders

// LineInput is one requested order line. ID carries the catalog slug
// the storefront knows the product by; resolution uses name and
// manufacturer, so a stale slug does not fail the line.
type LineInput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity"`
}

// PlaceInput is the validated order payload.
type PlaceInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerEmail   *string
	Items           []LineInput
}

// PlaceResult reports the outcome of a best-effort order placement.
// Lines that failed resolution or stock checks are reported in Errors;
// the rest were committed.
type PlaceResult struct {
	OrderID      uint     `json:"orderId"`
	Processed    int      `json:"processed"`
	TotalItems   int      `json:"totalItems"`
	Errors       []string `json:"errors,omitempty"`
	WhatsAppLink string   `json:"whatsappLink,omitempty"`
}
