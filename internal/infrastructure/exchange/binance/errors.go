package binance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSecret 需要签名但未配置 api secret
var ErrMissingSecret = errors.New("api secret is required to sign the request")

// ErrEmptyPayload 空 payload 不可签名
var ErrEmptyPayload = errors.New("refusing to sign an empty payload")

// HTTPStatusError non-2xx 响应
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("binance api http %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// TransportError 网络层错误 (DNS / 连接拒绝 / 超时)
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProcessError 外部命令执行失败
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("command failed (exit %d): %v", e.ExitCode, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }
