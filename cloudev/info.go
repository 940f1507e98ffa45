package cloudev

import "net/http"

// InfoService groups the discovery and pricing operations: park listings,
// connector lookup by QR value and session price quotes.
type InfoService struct {
	client *Client
}

// Parks returns the flat park listing, without stations or connectors.
// GET /public/parks
func (s *InfoService) Parks() Result[[]Park] {
	return callList[Park](s.client, "PARK LIST", http.MethodGet, "/public/parks", nil)
}

// ParkDetails returns every park with its stations and connectors
// embedded. The server keeps this and Parks as distinct paths with no
// documented semantic difference beyond the payload shape; both are
// exposed as-is.
// GET /public/park
func (s *InfoService) ParkDetails() Result[[]ParkDetail] {
	return callList[ParkDetail](s.client, "PARK INFO LIST", http.MethodGet, "/public/park", nil)
}

// Park returns a single park with its full station/connector tree.
// GET /public/park/{park_id}
func (s *InfoService) Park(parkID string) Result[ParkDetail] {
	return call[ParkDetail](s.client, "PARK INFO", http.MethodGet, "/public/park/"+parkID, nil)
}

type connectorLookupRequest struct {
	QRValue string `json:"qr_value"`
}

// ConnectorByQR resolves a scanned QR value to the connector and its
// owning station and park.
// POST /public/connector
func (s *InfoService) ConnectorByQR(qrValue string) Result[ConnectorLookup] {
	return call[ConnectorLookup](s.client, "CONNECTOR BY QR", http.MethodPost, "/public/connector",
		connectorLookupRequest{QRValue: qrValue})
}

// PriceParams asks for a quote by amount or by energy; the unused
// dimension is sent as zero. The kWh body key is mixed-case on the wire.
type PriceParams struct {
	Amount      float64 `json:"amount"`
	KWh         float64 `json:"kWh"`
	ConnectorID string  `json:"connector_id"`
}

// Price quotes the cost, energy and duration of a prospective session on
// a connector.
// POST /public/price
func (s *InfoService) Price(params PriceParams) Result[PriceQuote] {
	return call[PriceQuote](s.client, "PRICE", http.MethodPost, "/public/price", params)
}
