package port

import (
	"context"

	"mbxcall/internal/domain/payload"
)

// Result 一次调用的原始响应
type Result struct {
	StatusCode int    // direct HTTP only
	Body       []byte // raw response body / captured command output
	JSON       any    // decoded body when it is valid JSON
	Command    string // command form: the command line that was run or previewed
	// Streamed is set when the output already went to the terminal.
	Streamed bool
}

// Dispatcher 发送已签名请求 (curl 命令 或 直接 HTTP)
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, req *payload.SignedRequest) (*Result, error)
}
