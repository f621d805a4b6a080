package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNotObject 参数必须是 JSON 对象
var ErrNotObject = errors.New("parameters must be a JSON object")

// ParseParams decodes a JSON object into Params keeping the key order of the
// source text. A single-quoted dict literal such as
// {'symbol': 'BTCUSDT', 'quantity': 0.002} is accepted as well.
func ParseParams(raw string) (*Params, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewParams(), nil
	}
	p, err := decodeObject(raw)
	if err == nil {
		return p, nil
	}
	if strings.Contains(raw, "'") && !strings.Contains(raw, `"`) {
		if p, err2 := decodeObject(strings.ReplaceAll(raw, "'", `"`)); err2 == nil {
			return p, nil
		}
	}
	return nil, err
}

func decodeObject(raw string) (*Params, error) {
	data := []byte(raw)
	if err := json.Unmarshal(data, new(any)); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}
	if data[0] != '{' {
		return nil, ErrNotObject
	}

	om := orderedmap.New[string, json.RawMessage]()
	if err := om.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}

	p := NewParams()
	for kv := om.Oldest(); kv != nil; kv = kv.Next() {
		s, err := formatRaw(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("decode parameter %q: %w", kv.Key, err)
		}
		p.Set(kv.Key, s)
	}
	return p, nil
}

func formatRaw(val json.RawMessage) (string, error) {
	val = bytes.TrimSpace(val)
	if len(val) == 0 {
		return "", nil
	}
	switch val[0] {
	case '"':
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, val); err != nil {
			return "", err
		}
		return buf.String(), nil
	case 'n':
		return "", nil
	case 't', 'f':
		return string(val), nil
	default:
		return FormatValue(json.Number(val)), nil
	}
}

// FormatValue 将标量转换为签名使用的字符串
// Numbers never use exponent notation: 0.002 stays "0.002", 1e-7 becomes "0.0000001".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return x.String()
		}
		return d.String()
	case decimal.Decimal:
		return x.String()
	case float64:
		return decimal.NewFromFloat(x).String()
	case float32:
		return decimal.NewFromFloat32(x).String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
