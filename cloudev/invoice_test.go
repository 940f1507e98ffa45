package cloudev

import (
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceService_Pay(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Post("/ev-central-system/v1/public/invoice/pay").
		MatchHeader("x-api-key", testAPIKey).
		MatchHeader("Content-Type", "application/json").
		BodyString(`{"session_id":"9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c","invoice_id":"INV-20251017-0001","paid_amount":12300,"tra_id":"TRX-987654321"}`).
		Reply(http.StatusOK).
		JSON(map[string]any{
			"success": true,
			"message": "ok",
			"data":    map[string]any{"id": "INV-20251017-0001"},
		})

	c := newTestClient(t)
	res := c.Invoice.Pay(InvoicePayParams{
		SessionID:  "9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c",
		InvoiceID:  "INV-20251017-0001",
		PaidAmount: 12300,
		TraID:      "TRX-987654321",
	})
	require.True(t, res.Success)
	assert.Equal(t, "INV-20251017-0001", res.Data.ID)
}

func TestInvoiceService_Pay_BusinessError(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Post("/ev-central-system/v1/public/invoice/pay").
		Reply(http.StatusOK).
		JSON(map[string]any{"success": false, "message": "invoice already paid"})

	c := newTestClient(t)
	res := c.Invoice.Pay(InvoicePayParams{SessionID: "s-1", InvoiceID: "i-1", PaidAmount: 100, TraID: "t-1"})
	assert.False(t, res.Success)
	assert.Equal(t, "invoice already paid", res.Message)
	assert.Empty(t, res.Data.ID)
}
