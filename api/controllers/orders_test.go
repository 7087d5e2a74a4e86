package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordersvc "github.com/medihouse/medihouse-backend/internal/orders"
)

type stubOrderService struct {
	input  ordersvc.PlaceInput
	result *ordersvc.PlaceResult
	err    error
}

func (s *stubOrderService) Place(ctx context.Context, input ordersvc.PlaceInput) (*ordersvc.PlaceResult, error) {
	s.input = input
	return s.result, s.err
}

func TestPlaceOrderHappyPath(t *testing.T) {
	svc := &stubOrderService{result: &ordersvc.PlaceResult{OrderID: 12, Processed: 1, TotalItems: 4}}
	handler := PlaceOrder(svc, nil)

	body := `{
	  "customerName": "Asha Rao",
	  "customerPhone": "9876543210",
	  "customerAddress": "12 MG Road",
	  "items": [{"id": "aristo-paracetamol-500mg", "name": "Paracetamol 500mg", "manufacturer": "Aristo", "quantity": 4}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data ordersvc.PlaceResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.EqualValues(t, 12, envelope.Data.OrderID)
	assert.Equal(t, 4, envelope.Data.TotalItems)

	require.Len(t, svc.input.Items, 1)
	assert.Equal(t, "Paracetamol 500mg", svc.input.Items[0].Name)
}

func TestPlaceOrderTrimsCustomerFields(t *testing.T) {
	svc := &stubOrderService{result: &ordersvc.PlaceResult{OrderID: 1, Processed: 1, TotalItems: 1}}
	handler := PlaceOrder(svc, nil)

	body := `{
	  "customerName": "  Asha Rao  ",
	  "customerPhone": " 9876543210 ",
	  "customerAddress": "  12 MG Road\t",
	  "customerEmail": "asha@example.com",
	  "items": [{"name": "Paracetamol 500mg", "quantity": 1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Asha Rao", svc.input.CustomerName)
	assert.Equal(t, "9876543210", svc.input.CustomerPhone)
	assert.Equal(t, "12 MG Road", svc.input.CustomerAddress)
	require.NotNil(t, svc.input.CustomerEmail)
	assert.Equal(t, "asha@example.com", *svc.input.CustomerEmail)
}

func TestPlaceOrderRejectsMissingFields(t *testing.T) {
	svc := &stubOrderService{}
	handler := PlaceOrder(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrderRejectsZeroQuantity(t *testing.T) {
	svc := &stubOrderService{}
	handler := PlaceOrder(svc, nil)

	body := `{
	  "customerName": "A",
	  "customerPhone": "1",
	  "customerAddress": "x",
	  "items": [{"name": "P", "quantity": 0}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
