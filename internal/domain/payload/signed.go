package payload

import (
	"net/http"
	"strings"
)

// Source 签名数据来源
type Source int

const (
	SourceNone Source = iota
	SourceParams
	SourceMessage
)

func (s Source) String() string {
	switch s {
	case SourceParams:
		return "params"
	case SourceMessage:
		return "message"
	default:
		return "none"
	}
}

// SignedPayload is the resolved request payload.
// Canonical holds exactly the bytes that were signed; Query and Form are both
// derived from it, so every dispatch path carries the same signature.
type SignedPayload struct {
	Source    Source
	Canonical string
	Signature string

	form *Params
}

// NewSignedPayload 由已规范化的参数与签名组装最终 payload
func NewSignedPayload(src Source, params *Params, signature string) SignedPayload {
	return NewRawSignedPayload(src, params.Canonical(), params, signature)
}

// NewRawSignedPayload keeps canonical as the signed bytes, e.g. a message
// that needed no edits. params must hold the same pairs.
func NewRawSignedPayload(src Source, canonical string, params *Params, signature string) SignedPayload {
	form := params.Clone()
	sp := SignedPayload{
		Source:    src,
		Canonical: canonical,
		Signature: signature,
	}
	if signature != "" {
		form.Set(SignatureKey, signature)
	}
	sp.form = form
	return sp
}

// Empty reports whether there is nothing to send.
func (sp SignedPayload) Empty() bool {
	return sp.Canonical == ""
}

// Signed reports whether a signature was computed.
func (sp SignedPayload) Signed() bool {
	return sp.Signature != ""
}

// Query 返回带签名的 query string: <canonical>&signature=<sig>
func (sp SignedPayload) Query() string {
	if !sp.Signed() {
		return sp.Canonical
	}
	return sp.Canonical + "&" + SignatureKey + "=" + sp.Signature
}

// Body 返回 direct HTTP 的请求体。
// A message is already in wire form and is sent exactly as signed; params are
// form-encoded.
func (sp SignedPayload) Body() string {
	if sp.Source == SourceMessage {
		return sp.Query()
	}
	return sp.form.Encode()
}

// Form 返回带签名的有序键值对 (direct HTTP 使用)
func (sp SignedPayload) Form() *Params {
	return sp.form.Clone()
}

// SignedRequest 签名完成、待发送的请求
type SignedRequest struct {
	URL     string
	Method  string
	Header  http.Header
	Payload SignedPayload
}

// Target 返回附加 query string 后的完整 URL
func (r *SignedRequest) Target() string {
	q := r.Payload.Query()
	if q == "" {
		return r.URL
	}
	sep := "?"
	if strings.Contains(r.URL, "?") {
		sep = "&"
	}
	return r.URL + sep + q
}
