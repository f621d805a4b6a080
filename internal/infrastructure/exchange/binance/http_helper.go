package binance

import (
	"context"
	"io"
	"net/http"
	"strings"

	"mbxcall/internal/domain/payload"
)

// newRequest builds the HTTP request for a signed payload.
// The form body carries the same ordered pairs (signature last) that the curl
// path appends to the URL.
func newRequest(ctx context.Context, req *payload.SignedRequest) (*http.Request, error) {
	var body io.Reader
	if b := req.Payload.Body(); b != "" {
		body = strings.NewReader(b)
	}

	var method string
	switch strings.ToUpper(req.Method) {
	case http.MethodGet:
		method = http.MethodGet
	case http.MethodPost:
		method = http.MethodPost
	default:
		method = strings.ToUpper(req.Method)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return httpReq, nil
}

// do is the shared helper for all REST calls.
func (c *RestClient) do(ctx context.Context, req *payload.SignedRequest) (int, []byte, error) {
	httpReq, err := newRequest(ctx, req)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, &TransportError{Method: httpReq.Method, URL: req.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Method: httpReq.Method, URL: req.URL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	return resp.StatusCode, body, nil
}
