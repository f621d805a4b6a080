package call

import (
	"bytes"
	"encoding/json"
	"strings"

	"mbxcall/internal/application/port"
)

// NullResult is printed when a call produced no usable response.
const NullResult = "null"

// Render 渲染响应内容: JSON 缩进输出，其它原样输出
func Render(res *port.Result) string {
	if res == nil {
		return NullResult
	}
	if res.JSON != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.JSON); err == nil {
			return strings.TrimRight(buf.String(), "\n")
		}
	}
	return strings.TrimRight(string(res.Body), "\n")
}
