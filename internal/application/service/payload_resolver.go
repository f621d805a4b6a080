package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mbxcall/internal/application/port"
	"mbxcall/internal/domain/payload"
)

// CallRequest 一次 API 调用的原始输入
type CallRequest struct {
	URL     string
	Method  string
	Params  *payload.Params // structured parameters, ignored when Message is set
	Message string          // raw k=v&k=v payload
	// TimestampDelta, when set, replaces any timestamp in the payload with
	// now + delta seconds.
	TimestampDelta *int
}

// PayloadResolver 选择签名来源、注入 timestamp、签名并生成最终请求
type PayloadResolver struct {
	signer    port.Signer
	keyHeader string
	now       func() time.Time
}

// NewPayloadResolver 创建解析器
func NewPayloadResolver(signer port.Signer, keyHeader string) *PayloadResolver {
	return &PayloadResolver{
		signer:    signer,
		keyHeader: keyHeader,
		now:       time.Now,
	}
}

// WithClock overrides the clock used for timestamps.
func (r *PayloadResolver) WithClock(now func() time.Time) *PayloadResolver {
	r.now = now
	return r
}

// Resolve 按以下顺序处理:
//  1. GET 且无 params、无 message: 公共接口，不签名、不带 key header
//  2. message 优先于 params 作为签名来源
//  3. 指定 TimestampDelta 时强制替换 timestamp，否则仅在缺失时注入
//  4. 签名追加为最后一个字段
func (r *PayloadResolver) Resolve(req CallRequest) (*payload.SignedRequest, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	out := &payload.SignedRequest{
		URL:    req.URL,
		Method: method,
		Header: http.Header{},
	}

	message := strings.TrimSpace(req.Message)
	if method == http.MethodGet && req.Params.Empty() && message == "" {
		log.Debug().Str("url", req.URL).Msg("public request, signing skipped")
		return out, nil
	}

	if key := r.signer.APIKey(); key != "" && r.keyHeader != "" {
		out.Header.Set(r.keyHeader, key)
	}

	var (
		src    payload.Source
		params *payload.Params
	)
	switch {
	case message != "":
		src = payload.SourceMessage
		params = payload.ParseQuery(message)
	case !req.Params.Empty():
		src = payload.SourceParams
		params = req.Params.Clone()
	default:
		return out, nil
	}

	edited := params.Delete(payload.SignatureKey)
	if r.applyTimestamp(src, params, req.TimestampDelta) {
		edited = true
	}

	canonical := params.Canonical()
	if canonical == "" {
		return out, nil
	}
	// an untouched message is signed exactly as given
	if src == payload.SourceMessage && !edited {
		canonical = strings.TrimPrefix(message, "?")
	}

	signature, err := r.signer.Sign(canonical)
	if err != nil {
		return nil, fmt.Errorf("sign %s payload: %w", src, err)
	}
	out.Payload = payload.NewRawSignedPayload(src, canonical, params, signature)

	log.Debug().
		Str("source", src.String()).
		Str("payload", canonical).
		Msg("payload signed")

	return out, nil
}

// applyTimestamp reports whether params were changed.
func (r *PayloadResolver) applyTimestamp(src payload.Source, params *payload.Params, delta *int) bool {
	if delta == nil {
		if params.Has(payload.TimestampKey) {
			return false
		}
		params.Set(payload.TimestampKey, payload.TimestampAt(r.now(), payload.DefaultTimestampDelta))
		return true
	}

	ts := payload.TimestampAt(r.now(), *delta)
	if src == payload.SourceMessage {
		// drop the old entry so the fresh timestamp is appended last
		params.Delete(payload.TimestampKey)
	}
	params.Set(payload.TimestampKey, ts)
	return true
}
