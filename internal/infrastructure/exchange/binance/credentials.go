package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// APIKeyHeader Binance API Key 请求头
const APIKeyHeader = "X-MBX-APIKEY"

// ===== Credentials 凭证 =====

// Credentials 包含 API 凭证和签名方法
type Credentials struct {
	apiKey    string
	apiSecret string
}

// NewCredentials 创建凭证对象
func NewCredentials(apiKey, apiSecret string) *Credentials {
	return &Credentials{
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// Sign 生成 HMAC-SHA256 签名 (小写 hex)
func (c *Credentials) Sign(data string) (string, error) {
	if c.apiSecret == "" {
		return "", ErrMissingSecret
	}
	if data == "" {
		return "", ErrEmptyPayload
	}
	return Sign(c.apiSecret, data), nil
}

// APIKey 返回 API Key
func (c *Credentials) APIKey() string {
	return c.apiKey
}

// HasSecret reports whether a secret is configured.
func (c *Credentials) HasSecret() bool {
	return c.apiSecret != ""
}

// Sign computes the lowercase hex HMAC-SHA256 of payload keyed by secret.
func Sign(secret, payload string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
