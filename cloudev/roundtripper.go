package cloudev

import "net/http"

// apiKeyRoundTripper stamps the API key and user agent on every outgoing
// request so no operation has to carry credentials itself.
type apiKeyRoundTripper struct {
	inner  http.RoundTripper
	apiKey string
}

func (t apiKeyRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	request.Header.Set("x-api-key", t.apiKey)
	request.Header.Set("User-Agent", userAgent)
	return t.inner.RoundTrip(request)
}

var _ http.RoundTripper = apiKeyRoundTripper{}
