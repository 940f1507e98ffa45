package cloudev

// Meta is an open metadata bag attached to stations and connectors. The
// server owns its contents; the client passes it through without
// interpretation.
type Meta map[string]any

// StationStatus is the connectivity status of a charge point. The server is
// the authority on the value set; unknown values decode and pass through
// unchanged.
type StationStatus string

const (
	StationStatusOffline   StationStatus = "Offline"
	StationStatusAvailable StationStatus = "Available"
)

// ConnectorStatus is the real-time availability/fault/charging state of a
// single connector, following the OCPP status vocabulary.
type ConnectorStatus string

const (
	ConnectorStatusAvailable     ConnectorStatus = "Available"
	ConnectorStatusPreparing     ConnectorStatus = "Preparing"
	ConnectorStatusCharging      ConnectorStatus = "Charging"
	ConnectorStatusSuspendedEV   ConnectorStatus = "SuspendedEV"
	ConnectorStatusSuspendedEVSE ConnectorStatus = "SuspendedEVSE"
	ConnectorStatusFinishing     ConnectorStatus = "Finishing"
	ConnectorStatusReserved      ConnectorStatus = "Reserved"
	ConnectorStatusUnavailable   ConnectorStatus = "Unavailable"
	ConnectorStatusFaulted       ConnectorStatus = "Faulted"
	ConnectorStatusOffline       ConnectorStatus = "Offline"
)

// ConnectorType is the physical plug standard of a connector.
type ConnectorType string

const (
	ConnectorTypeType1J1772        ConnectorType = "Type 1 J1772"
	ConnectorTypeType2Mennekes     ConnectorType = "Type 2 Mennekes"
	ConnectorTypeCHAdeMO           ConnectorType = "CHAdeMO"
	ConnectorTypeCCSComboType1     ConnectorType = "CCS Combo Type 1"
	ConnectorTypeCCSComboType2     ConnectorType = "CCS Combo Type 2"
	ConnectorTypeGBT               ConnectorType = "GB/T"
	ConnectorTypeTeslaSupercharger ConnectorType = "Tesla Supercharger"
)

// ConnectorFormat says whether the connector is a fixed cable or a socket.
type ConnectorFormat string

const (
	ConnectorFormatSocket ConnectorFormat = "Socket"
	ConnectorFormatCable  ConnectorFormat = "Cable"
)

// CurrentType is the type of current delivered by a connector.
type CurrentType string

const (
	CurrentTypeAC CurrentType = "AC"
	CurrentTypeDC CurrentType = "DC"
)

// Park is the root of a physical charging site: a location owned by a
// merchant that groups one or more stations.
type Park struct {
	ID                 string  `json:"id"`
	MerchantID         string  `json:"merchant_id"`
	Name               string  `json:"name"`
	LocationText       string  `json:"location_text"`
	Image              string  `json:"image"`
	ContactPhoneNumber string  `json:"contact_phonenumber"`
	GeoLat             float64 `json:"geo_lat"`
	GeoLng             float64 `json:"geo_lng"`
	Active             bool    `json:"active"`
}

// Station is a physical charge point inside a park. CpID is the identity
// used by the underlying charging protocol, distinct from the record ID.
type Station struct {
	ID                string        `json:"id"`
	CpID              string        `json:"cp_id"`
	ParkID            string        `json:"park_id"`
	MerchantID        string        `json:"merchant_id"`
	Name              string        `json:"name"`
	ChargePointVendor string        `json:"charge_point_vendor"`
	ChargePointModel  string        `json:"charge_point_model"`
	SerialNumber      string        `json:"serial_number"`
	FirmwareVersion   string        `json:"firmware_version"`
	OCPPProtocol      string        `json:"ocpp_protocol"`
	EndpointPath      string        `json:"endpoint_path"`
	LastHeartbeatAt   string        `json:"last_heartbeat_at"`
	Status            StationStatus `json:"status"`
	Meta              Meta          `json:"meta"`
}

// Connector is a single plug on a station. ConnectorID is the ordinal
// within its station, QRValue the scannable lookup key printed on the
// hardware.
type Connector struct {
	ID            string          `json:"id"`
	MerchantID    string          `json:"merchant_id"`
	ParkID        string          `json:"park_id"`
	StationID     string          `json:"station_id"`
	ConnectorID   int             `json:"connector_id"`
	ConnectorType ConnectorType   `json:"connector_type"`
	Format        ConnectorFormat `json:"format"`
	CurrentType   CurrentType     `json:"current_type"`
	PowerKW       float64         `json:"power_kw"`
	KWPrice       float64         `json:"kw_price"`
	Status        ConnectorStatus `json:"status"`
	LastStatusAt  string          `json:"last_status_at"`
	Meta          Meta            `json:"meta"`
	QRValue       string          `json:"qr_value"`
	Active        bool            `json:"active"`
}

// StationDetail is a station together with its connectors, in server order.
type StationDetail struct {
	Station
	Connectors []Connector `json:"connectors"`
}

// ParkDetail is the full site tree: a park with its stations and each
// station's connectors, exactly as aggregated by the server. Nesting order
// is preserved as received.
type ParkDetail struct {
	Park
	Stations []StationDetail `json:"stations"`
}

// ConnectorLookup is the result of resolving a QR value: the connector plus
// its owning station and park.
type ConnectorLookup struct {
	Park      Park      `json:"park"`
	Station   Station   `json:"station"`
	Connector Connector `json:"connector"`
}

// PriceQuote is the server's session cost estimate. Time is in minutes.
type PriceQuote struct {
	Amount float64 `json:"amount"`
	KWh    float64 `json:"kwh"`
	Time   float64 `json:"time"`
}

// PaymentReceipt acknowledges a settled invoice.
type PaymentReceipt struct {
	ID string `json:"id"`
}
