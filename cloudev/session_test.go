package cloudev

import (
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionInfoBody = `{
	"success": true,
	"message": "ok",
	"data": {
		"id": "9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c",
		"id_tag": "TAG-778",
		"txn_id": 40021,
		"location": {
			"park_id": "p-1",
			"park_name": "Central Plaza",
			"station_id": "st-01",
			"station_name": "Station A",
			"connector_id": "8daa0f30-97d4-4ac3-85e3-0a65915d3828",
			"connector_no": 1
		},
		"status": "running",
		"invoice": null,
		"started_at": "2025-10-17T09:40:00Z",
		"stopped_at": null,
		"total_kwh": 4.2,
		"total_minutes": null,
		"total_amount": null,
		"info": {
			"meter_start": 102400,
			"meter_last": 106600,
			"voltage_l1": 228.4,
			"voltage_l2": null,
			"voltage_l3": null,
			"current_l1": 31.5,
			"power": 7.2,
			"frequency": 49.98,
			"soc": 64,
			"sample_count": {"Sample.Periodic": 18, "Transaction.Begin": 1}
		}
	}
}`

func TestSessionService_Start(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Post("/ev-central-system/v1/public/session/start").
		MatchHeader("x-api-key", testAPIKey).
		BodyString(`{"connector_id":"8daa0f30-97d4-4ac3-85e3-0a65915d3828"}`).
		Reply(http.StatusOK).
		BodyString(`{"success":true,"message":"ok","data":{"id":"9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c","status":"created","location":{"connector_id":"8daa0f30-97d4-4ac3-85e3-0a65915d3828","connector_no":1}}}`)

	c := newTestClient(t)
	res := c.Session.Start(SessionStartParams{ConnectorID: "8daa0f30-97d4-4ac3-85e3-0a65915d3828"})
	require.True(t, res.Success)
	assert.Equal(t, "9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c", res.Data.ID)
	assert.Equal(t, SessionStatusCreated, res.Data.Status)
	assert.Nil(t, res.Data.StartedAt)
	assert.Nil(t, res.Data.TotalKWh)
}

func TestSessionService_Start_WithOptionalParams(t *testing.T) {
	defer gock.Off()
	stopKW := 30.0
	idTag := "TAG-778"
	gock.New(testHost).
		Post("/ev-central-system/v1/public/session/start").
		BodyString(`{"connector_id":"c-1","stop_kw":30,"id_tag":"TAG-778"}`).
		Reply(http.StatusOK).
		BodyString(`{"success":true,"message":"ok","data":{"id":"s-1","status":"created"}}`)

	c := newTestClient(t)
	res := c.Session.Start(SessionStartParams{ConnectorID: "c-1", StopKW: &stopKW, IDTag: &idTag})
	require.True(t, res.Success)
	assert.Equal(t, "s-1", res.Data.ID)
}

func TestSessionService_Info(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c").
		Reply(http.StatusOK).
		BodyString(sessionInfoBody)

	c := newTestClient(t)
	res := c.Session.Info("9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c")
	require.True(t, res.Success)

	session := res.Data
	assert.Equal(t, SessionStatusRunning, session.Status)
	assert.Equal(t, "p-1", session.Location.ParkID)
	assert.Equal(t, 1, session.Location.ConnectorNo)
	require.NotNil(t, session.TxnID)
	assert.Equal(t, int64(40021), *session.TxnID)
	assert.Nil(t, session.Invoice)
	assert.Nil(t, session.StoppedAt)

	// Absent telemetry stays nil, reported telemetry comes through.
	require.NotNil(t, session.Info.Power)
	assert.Equal(t, 7.2, *session.Info.Power)
	assert.Nil(t, session.Info.VoltageL2)
	assert.Nil(t, session.Info.Temperature)
	assert.Equal(t, 18, session.Info.SampleCount["Sample.Periodic"])
}

func TestSessionService_Info_IsIdempotent(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		Times(2).
		Reply(http.StatusOK).
		BodyString(`{"success":true,"message":"ok","data":{"id":"s-1","status":"running"}}`)

	c := newTestClient(t)
	first := c.Session.Info("s-1")
	second := c.Session.Info("s-1")
	require.True(t, first.Success)
	assert.Equal(t, first, second)
}

func TestSessionService_Info_UnknownStatusPassesThrough(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		Reply(http.StatusOK).
		BodyString(`{"success":true,"message":"ok","data":{"id":"s-1","status":"rebalancing"}}`)

	c := newTestClient(t)
	res := c.Session.Info("s-1")
	require.True(t, res.Success)
	assert.Equal(t, SessionStatus("rebalancing"), res.Data.Status)
}

func TestSessionService_Stop(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Post("/ev-central-system/v1/public/session/stop").
		BodyString(`{"session_id":"s-1"}`).
		Reply(http.StatusOK).
		BodyString(`{"success":true,"message":"ok","data":{"id":"s-1","status":"stopping"}}`)

	c := newTestClient(t)
	res := c.Session.Stop("s-1")
	require.True(t, res.Success)
	assert.Equal(t, SessionStatusStopping, res.Data.Status)
}

func TestSessionService_Stop_ServerFailure(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Post("/ev-central-system/v1/public/session/stop").
		Reply(http.StatusOK).
		BodyString(`{"success":false,"message":"session already stopped"}`)

	c := newTestClient(t)
	res := c.Session.Stop("s-1")
	assert.False(t, res.Success)
	assert.Equal(t, "session already stopped", res.Message)
	assert.Empty(t, res.Data.ID)
}
