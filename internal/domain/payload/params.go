package payload

import (
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair 单个 key=value 参数
type Pair struct {
	Key   string
	Value string
}

// Params 有序参数集合 (ParameterSet)
// 插入顺序决定签名字符串，覆盖已有 key 时保留原位置
type Params struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewParams 创建空参数集合
func NewParams() *Params {
	return &Params{m: orderedmap.New[string, string]()}
}

// ParamsFromPairs 按给定顺序构建参数集合，重复 key 以后者为准
func ParamsFromPairs(pairs ...Pair) *Params {
	p := NewParams()
	for _, kv := range pairs {
		p.Set(kv.Key, kv.Value)
	}
	return p
}

// Set 设置参数
func (p *Params) Set(key, value string) {
	if p.m == nil {
		p.m = orderedmap.New[string, string]()
	}
	p.m.Set(key, value)
}

// Get 读取参数
func (p *Params) Get(key string) (string, bool) {
	if p == nil || p.m == nil {
		return "", false
	}
	return p.m.Get(key)
}

func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete 删除参数，返回是否存在
func (p *Params) Delete(key string) bool {
	if p == nil || p.m == nil {
		return false
	}
	_, ok := p.m.Delete(key)
	return ok
}

func (p *Params) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Empty reports whether p is nil or has no pairs.
func (p *Params) Empty() bool {
	return p.Len() == 0
}

// Pairs 返回参数副本
func (p *Params) Pairs() []Pair {
	if p.Empty() {
		return nil
	}
	out := make([]Pair, 0, p.m.Len())
	for kv := p.m.Oldest(); kv != nil; kv = kv.Next() {
		out = append(out, Pair{Key: kv.Key, Value: kv.Value})
	}
	return out
}

// Clone 深拷贝。签名流程会注入 timestamp / signature，调用方的集合不能被修改
func (p *Params) Clone() *Params {
	return ParamsFromPairs(p.Pairs()...)
}

// Canonical 生成待签名字符串: k=v&k=v，按插入顺序，不做 URL 编码。
// Values containing '&' or '=' are joined raw for wire compatibility.
func (p *Params) Canonical() string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	for i, kv := range p.Pairs() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.Key)
		b.WriteByte('=')
		b.WriteString(kv.Value)
	}
	return b.String()
}

// Encode form-encodes the pairs in insertion order.
// url.Values.Encode sorts by key, which would reorder the signed fields.
func (p *Params) Encode() string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	for i, kv := range p.Pairs() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

func (p *Params) String() string {
	return p.Canonical()
}
