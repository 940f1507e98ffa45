package cloudev

import "net/http"

// InvoiceService settles session invoices.
type InvoiceService struct {
	client *Client
}

// InvoicePayParams reports an out-of-band payment: TraID is the payment
// provider's transaction reference.
type InvoicePayParams struct {
	SessionID  string  `json:"session_id"`
	InvoiceID  string  `json:"invoice_id"`
	PaidAmount float64 `json:"paid_amount"`
	TraID      string  `json:"tra_id"`
}

// Pay marks an invoice as paid. Not idempotent: paying twice is a
// business-level duplicate charge, which is why no retry happens below
// this call.
// POST /public/invoice/pay
func (s *InvoiceService) Pay(params InvoicePayParams) Result[PaymentReceipt] {
	return call[PaymentReceipt](s.client, "INVOICE PAY", http.MethodPost, "/public/invoice/pay", params)
}
