package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"mbxcall/internal/domain/payload"
)

const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
)

// Settings 合并后的调用参数
type Settings struct {
	URL            string
	Method         string
	APIKey         string
	APISecret      string
	Params         *payload.Params
	Message        string
	TimestampDelta *int
}

// Settings converts a profile into mergeable settings.
func (p *Profile) Settings() Settings {
	if p == nil {
		return Settings{}
	}
	return Settings{
		URL:       p.URL,
		Method:    p.Method,
		APIKey:    p.APIKey,
		APISecret: p.APISecret,
		Params:    p.Parameters.Clone(),
	}
}

// Override 逐字段覆盖: o 中非空的字段优先 (命令行 > 配置文件)。
// A raw message in o disables structured params.
func (s Settings) Override(o Settings) Settings {
	out := s
	if v := strings.TrimSpace(o.URL); v != "" {
		out.URL = v
	}
	if v := strings.TrimSpace(o.Method); v != "" {
		out.Method = v
	}
	if o.APIKey != "" {
		out.APIKey = o.APIKey
	}
	if o.APISecret != "" {
		out.APISecret = o.APISecret
	}
	if !o.Params.Empty() {
		out.Params = o.Params.Clone()
	}
	if o.TimestampDelta != nil {
		d := *o.TimestampDelta
		out.TimestampDelta = &d
	}
	if v := strings.TrimSpace(o.Message); v != "" {
		out.Message = v
		out.Params = nil
	}
	out.Method = strings.ToUpper(out.Method)
	return out
}

// WithEnvCredentials fills key/secret that neither the flags nor the profile set.
func (s Settings) WithEnvCredentials() Settings {
	if s.APIKey == "" {
		s.APIKey = os.Getenv(EnvAPIKey)
	}
	if s.APISecret == "" {
		s.APISecret = os.Getenv(EnvAPISecret)
	}
	return s
}

// Validate 校验必填字段
func (s Settings) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return ErrMissingURL
	}
	return nil
}

// LoadEnvFile loads a .env file into the process environment.
// A missing file is not an error; existing variables are not overwritten.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	log.Debug().Str("env_file", path).Msg("env file loaded")
	return nil
}
