package cloudev

import (
	"errors"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
)

func TestParseErr_IsTotal(t *testing.T) {
	assert.Equal(t, "unexpected error", parseErr(nil))
	assert.Equal(t, "unexpected error", parseErr(errors.New("connection refused")))
	assert.Equal(t, "unexpected error", parseErr(&APIError{StatusCode: 500}))
	assert.Equal(t, "insufficient balance", parseErr(&APIError{StatusCode: 402, Message: "insufficient balance"}))

	// Wrapped structured errors still surface their message.
	wrapped := errors.Join(errors.New("request failed"), &APIError{StatusCode: 409, Message: "connector busy"})
	assert.Equal(t, "connector busy", parseErr(wrapped))
}

func TestMessageOr(t *testing.T) {
	assert.Equal(t, "server says no", messageOr("server says no", "failed"))
	assert.Equal(t, "failed", messageOr("", "failed"))
}

func TestCall_NetworkFailure(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		ReplyError(errors.New("connection reset by peer"))

	c := newTestClient(t)
	res := c.Session.Info("s-1")
	assert.False(t, res.Success)
	assert.Equal(t, "unexpected error", res.Message)
}

func TestCall_StructuredTransportError(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Post("/ev-central-system/v1/public/session/start").
		Reply(http.StatusPaymentRequired).
		JSON(map[string]any{"message": "insufficient balance"})

	c := newTestClient(t)
	res := c.Session.Start(SessionStartParams{ConnectorID: "c-1"})
	assert.False(t, res.Success)
	assert.Equal(t, "insufficient balance", res.Message)
}

func TestCall_NonJSONErrorBody(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		Reply(http.StatusBadGateway).
		BodyString("<html>bad gateway</html>")

	c := newTestClient(t)
	res := c.Session.Info("s-1")
	assert.False(t, res.Success)
	assert.Equal(t, "unexpected error", res.Message)
}

func TestCall_MalformedSuccessBody(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		Reply(http.StatusOK).
		BodyString("{not json")

	c := newTestClient(t)
	res := c.Session.Info("s-1")
	assert.False(t, res.Success)
	assert.Equal(t, "unexpected error", res.Message)
}

func TestCall_EmbeddedFailureWithoutMessage(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		Reply(http.StatusOK).
		BodyString(`{"success":false}`)

	c := newTestClient(t)
	res := c.Session.Info("s-1")
	assert.False(t, res.Success)
	assert.Equal(t, "failed", res.Message)
}

func TestCall_WrongShapePayloadIsFailure(t *testing.T) {
	defer gock.Off()
	gock.New(testHost).
		Get("/ev-central-system/v1/public/session/info/s-1").
		Reply(http.StatusOK).
		BodyString(`{"success":true,"message":"ok","data":[1,2,3]}`)

	c := newTestClient(t)
	res := c.Session.Info("s-1")
	assert.False(t, res.Success)
	assert.Equal(t, "ok", res.Message)
	assert.Empty(t, res.Data.ID)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "park not found"}
	assert.Equal(t, "api error (status 404): park not found", err.Error())
}
