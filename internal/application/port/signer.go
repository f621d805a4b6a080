package port

// Signer 计算请求签名
type Signer interface {
	APIKey() string
	Sign(data string) (string, error)
}
