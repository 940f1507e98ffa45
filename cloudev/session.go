package cloudev

import "net/http"

// SessionStatus is the lifecycle state of a charging session. The server
// drives the progression; the client treats every value, known or not, as
// valid data. "failed" is reachable from any non-terminal state.
type SessionStatus string

const (
	SessionStatusCreated  SessionStatus = "created"
	SessionStatusRunning  SessionStatus = "running"
	SessionStatusStopping SessionStatus = "stopping"
	SessionStatusStopped  SessionStatus = "stopped"
	SessionStatusInvoiced SessionStatus = "invoiced"
	SessionStatusPaid     SessionStatus = "paid"
	SessionStatusFailed   SessionStatus = "failed"
	SessionStatusDone     SessionStatus = "done"
)

// SessionLocation pins a session to the connector it runs on.
type SessionLocation struct {
	ParkID      string `json:"park_id"`
	ParkName    string `json:"park_name"`
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	ConnectorID string `json:"connector_id"`
	ConnectorNo int    `json:"connector_no"`
}

// SessionInvoice is the invoice summary attached to a session once one
// exists.
type SessionInvoice struct {
	InvoiceID     string  `json:"invoice_id"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

// SessionTelemetry is the latest telemetry snapshot of a session. Every
// field is independently nullable: absence means not yet reported, not
// zero. SampleCount counts received samples by trigger type.
type SessionTelemetry struct {
	MeterStart  *float64       `json:"meter_start"`
	MeterLast   *float64       `json:"meter_last"`
	VoltageL1   *float64       `json:"voltage_l1"`
	VoltageL2   *float64       `json:"voltage_l2"`
	VoltageL3   *float64       `json:"voltage_l3"`
	CurrentL1   *float64       `json:"current_l1"`
	CurrentL2   *float64       `json:"current_l2"`
	CurrentL3   *float64       `json:"current_l3"`
	Power       *float64       `json:"power"`
	Current     *float64       `json:"current"`
	Voltage     *float64       `json:"voltage"`
	Frequency   *float64       `json:"frequency"`
	PowerFactor *float64       `json:"power_factor"`
	SoC         *float64       `json:"soc"`
	Temperature *float64       `json:"temperature"`
	SampleCount map[string]int `json:"sample_count"`
}

// Session is a charging session as observed at call time. The client
// holds no session state beyond the response of each call; callers keep
// the ID for later correlation.
type Session struct {
	ID           string           `json:"id"`
	IDTag        *string          `json:"id_tag"`
	TxnID        *int64           `json:"txn_id"`
	Location     SessionLocation  `json:"location"`
	Status       SessionStatus    `json:"status"`
	Invoice      *SessionInvoice  `json:"invoice"`
	StartedAt    *string          `json:"started_at"`
	StoppedAt    *string          `json:"stopped_at"`
	TotalKWh     *float64         `json:"total_kwh"`
	TotalMinutes *float64         `json:"total_minutes"`
	TotalAmount  *float64         `json:"total_amount"`
	Info         SessionTelemetry `json:"info"`
}

// SessionService groups the session lifecycle operations. Start and Stop
// are not idempotent at the API layer; the client performs no
// deduplication.
type SessionService struct {
	client *Client
}

// SessionStartParams starts a session on a connector. StopKW, when set,
// asks the server to stop after that much energy; IDTag attaches an RFID
// tag identity.
type SessionStartParams struct {
	ConnectorID string   `json:"connector_id"`
	StopKW      *float64 `json:"stop_kw,omitempty"`
	IDTag       *string  `json:"id_tag,omitempty"`
}

// Start creates a new charging session. Calling it twice creates two
// sessions.
// POST /public/session/start
func (s *SessionService) Start(params SessionStartParams) Result[Session] {
	return call[Session](s.client, "SESSION START", http.MethodPost, "/public/session/start", params)
}

// Info returns the session as the server sees it right now. Reads have no
// side effect.
// GET /public/session/info/{session_id}
func (s *SessionService) Info(sessionID string) Result[Session] {
	return call[Session](s.client, "SESSION INFO", http.MethodGet, "/public/session/info/"+sessionID, nil)
}

type sessionStopRequest struct {
	SessionID string `json:"session_id"`
}

// Stop requests the server to end a session. The transition is observable
// on a later Info call; this client does not track it.
// POST /public/session/stop
func (s *SessionService) Stop(sessionID string) Result[Session] {
	return call[Session](s.client, "SESSION STOP", http.MethodPost, "/public/session/stop",
		sessionStopRequest{SessionID: sessionID})
}
