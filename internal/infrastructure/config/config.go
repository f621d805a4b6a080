package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"mbxcall/internal/domain/payload"
)

// DefaultTag 默认 profile
const DefaultTag = "default"

// Profile 配置文件中一个 tag 对应的调用参数
//
//	[buybtc]
//	url = "https://api.binance.com/api/v3/order"
//	method = "post"
//	api_key = "..."
//	api_secret = "..."
//	parameters = '{"symbol": "BTCUSDT", "side": "BUY", "type": "MARKET", "quantity": 0.002}'
//
// parameters may also be an inline table; its key order is kept.
type Profile struct {
	Tag        string
	URL        string
	Method     string
	APIKey     string
	APISecret  string
	Parameters *payload.Params
}

type section struct {
	URL       string `toml:"url"`
	Method    string `toml:"method"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
}

// Load 读取 path 中 tag 对应的 profile
func Load(path, tag string) (*Profile, error) {
	if strings.TrimSpace(tag) == "" {
		tag = DefaultTag
	}

	var file map[string]toml.Primitive
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	prim, ok := file[tag]
	if !ok {
		return nil, &SectionNotFoundError{Path: path, Tag: tag}
	}
	if !md.IsDefined(tag, "url") {
		return nil, &MissingKeyError{Tag: tag, Key: "url"}
	}

	var sec section
	if err := md.PrimitiveDecode(prim, &sec); err != nil {
		return nil, fmt.Errorf("decode section '%s': %w", tag, err)
	}

	params, err := decodeParameters(md, prim, tag)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Tag:        tag,
		URL:        strings.TrimSpace(sec.URL),
		Method:     strings.ToUpper(strings.TrimSpace(sec.Method)),
		APIKey:     strings.TrimSpace(sec.APIKey),
		APISecret:  strings.TrimSpace(sec.APISecret),
		Parameters: params,
	}

	log.Debug().
		Str("tag", p.Tag).
		Str("url", p.URL).
		Str("method", p.Method).
		Str("api_key", p.APIKey).
		Str("api_secret", mask(p.APISecret)).
		Str("parameters", p.Parameters.Canonical()).
		Msg("config profile loaded")

	return p, nil
}

func decodeParameters(md toml.MetaData, prim toml.Primitive, tag string) (*payload.Params, error) {
	if !md.IsDefined(tag, "parameters") {
		return nil, nil
	}

	var holder struct {
		Parameters any `toml:"parameters"`
	}
	if err := md.PrimitiveDecode(prim, &holder); err != nil {
		return nil, fmt.Errorf("section '%s': %w: %v", tag, ErrInvalidParameters, err)
	}

	switch v := holder.Parameters.(type) {
	case string:
		params, err := payload.ParseParams(v)
		if err != nil {
			return nil, fmt.Errorf("section '%s': %w: %v", tag, ErrInvalidParameters, err)
		}
		return params, nil
	case map[string]any:
		params := payload.NewParams()
		for _, k := range tableOrder(md, tag, v) {
			params.Set(k, payload.FormatValue(v[k]))
		}
		return params, nil
	default:
		return nil, fmt.Errorf("section '%s': %w: expected JSON string or table, got %T", tag, ErrInvalidParameters, v)
	}
}

// tableOrder returns the keys of the parameters table in file order.
func tableOrder(md toml.MetaData, tag string, table map[string]any) []string {
	order := make([]string, 0, len(table))
	seen := make(map[string]struct{}, len(table))
	for _, key := range md.Keys() {
		if len(key) != 3 || key[0] != tag || key[1] != "parameters" {
			continue
		}
		if _, ok := table[key[2]]; !ok {
			continue
		}
		if _, dup := seen[key[2]]; dup {
			continue
		}
		seen[key[2]] = struct{}{}
		order = append(order, key[2])
	}

	// keys the metadata did not report keep a stable order at the end
	var rest []string
	for k := range table {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}

// IsConfigError reports whether err comes from profile loading.
func IsConfigError(err error) bool {
	var notFound *SectionNotFoundError
	var missing *MissingKeyError
	return errors.As(err, &notFound) || errors.As(err, &missing) ||
		errors.Is(err, ErrInvalidParameters) || errors.Is(err, ErrMissingURL)
}
