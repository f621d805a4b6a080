package svc

import "errors"

// ErrUnknownExecuteMode 错误：未知的执行模式
var ErrUnknownExecuteMode = errors.New("unknown execute mode")
