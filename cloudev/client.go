package cloudev

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// basePath is the versioned prefix of the public API.
	basePath = "/ev-central-system/v1"

	// requestTimeout bounds every call. There is no retry: on expiry the
	// call is reported once as a transport failure and the caller owns the
	// retry decision.
	requestTimeout = 20 * time.Second

	userAgent = "cloud-ev-go"
)

var log = logrus.StandardLogger()

// Client is the entry point to the cloud-ev public API. It binds the host,
// API key and merchant id once at construction and exposes the operations
// as three namespaces. All fields are read-only after New returns, so a
// single Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     *Config
	baseURL    string
	callLogger CallLogger

	Info    *InfoService
	Session *SessionService
	Invoice *InvoiceService
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithCallLogger injects a diagnostic sink for per-call records. It takes
// precedence over the config LOGGER flag.
func WithCallLogger(logger CallLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.callLogger = logger
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The API key transport
// is layered on top of the given client's transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func New(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("api key cannot be empty")
	}
	log.Debugf("cloudev New")
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		config:     config,
		baseURL:    strings.TrimRight(config.Host, "/") + basePath,
		callLogger: nopCallLogger{},
	}
	if config.Logger {
		c.callLogger = NewLogrusCallLogger(log)
	}
	for _, opt := range opts {
		opt(c)
	}
	inner := c.httpClient.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	c.httpClient.Transport = apiKeyRoundTripper{inner: inner, apiKey: config.APIKey}
	c.Info = &InfoService{client: c}
	c.Session = &SessionService{client: c}
	c.Invoice = &InvoiceService{client: c}
	return c, nil
}

// MerchantID returns the merchant id bound at construction. No current
// operation sends it (the server scopes requests by API key); it is kept
// for caller bookkeeping.
func (c *Client) MerchantID() string {
	return c.config.MerchantID
}

// dispatch builds, executes and decodes one API call. Non-2xx responses
// and transport failures come back as errors for parseErr to reduce;
// 2xx responses come back as the raw envelope.
func (c *Client) dispatch(name, method, path string, body any) (*apiEnvelope, error) {
	var reqBytes []byte
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBytes = b
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logCall(name, req, nil, reqBytes, nil, start)
		return nil, err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	c.logCall(name, req, res, reqBytes, resBytes, start)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(res.StatusCode, resBytes)
	}

	var env apiEnvelope
	if err := json.Unmarshal(resBytes, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// newAPIError extracts the structured message of a non-2xx body, if any.
func newAPIError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		apiErr.Message = errBody.Message
	}
	return apiErr
}

func (c *Client) logCall(name string, req *http.Request, res *http.Response, reqBody, resBody []byte, start time.Time) {
	record := CallRecord{
		Time:         start,
		Name:         name,
		Method:       req.Method,
		URL:          req.URL.String(),
		RequestBody:  reqBody,
		ResponseBody: resBody,
		Duration:     time.Since(start),
	}
	if res != nil {
		record.StatusCode = res.StatusCode
	}
	c.callLogger.LogCall(record)
}
