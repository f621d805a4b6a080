package binance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"mbxcall/internal/application/port"
	"mbxcall/internal/domain/payload"
)

// RestClient 直接 HTTP 调用 (execute mode 1)
type RestClient struct {
	httpClient *http.Client
}

// NewRestClient 创建 REST 客户端；nil 时使用 http.DefaultClient
func NewRestClient(httpClient *http.Client) *RestClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RestClient{httpClient: httpClient}
}

func (c *RestClient) Name() string { return "restful" }

// Dispatch sends the request and decodes a JSON body when there is one.
func (c *RestClient) Dispatch(ctx context.Context, req *payload.SignedRequest) (*port.Result, error) {
	log.Info().
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("request")
	if !req.Payload.Empty() {
		log.Debug().
			Str("source", req.Payload.Source.String()).
			Str("payload", req.Payload.Query()).
			Msg("restful payload parameters")
	}

	status, body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &port.Result{StatusCode: status, Body: body}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		res.JSON = decoded
	}
	return res, nil
}
