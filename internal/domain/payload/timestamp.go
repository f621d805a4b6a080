package payload

import (
	"strconv"
	"time"
)

const (
	// TimestampKey 时间戳字段名
	TimestampKey = "timestamp"
	// SignatureKey 签名字段名
	SignatureKey = "signature"

	// DefaultTimestampDelta 默认时间偏移（秒），补偿本地时钟落后于服务器
	DefaultTimestampDelta = 1
)

// NowPlus 返回当前时间 + delta 秒的 13 位毫秒时间戳字符串
func NowPlus(delta int) string {
	return TimestampAt(time.Now(), delta)
}

// TimestampAt is NowPlus against an explicit clock reading.
func TimestampAt(now time.Time, delta int) string {
	ts := now.Add(time.Duration(delta) * time.Second).UnixMilli()
	return strconv.FormatInt(ts, 10)
}
