package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"mbxcall/internal/domain/payload"
	"mbxcall/internal/infrastructure/config"
	"mbxcall/internal/infrastructure/exchange/binance"
)

const usageText = `mbxcall [options]

Signed endpoints need url, method, key, secret and a payload, either on the
command line or from a config profile (-f file, -t tag). Command-line values
override the profile field by field; --msg replaces structured parameters.

   mbxcall -f apikey.toml                                   (curl command mode)
   mbxcall -f apikey.toml -t test
   mbxcall -u https://api.binance.com/api/v3/order -m post -k <key> -s <secret> \
       -p '{"symbol": "BTCUSDT", "side": "BUY", "type": "MARKET", "quantity": 0.002}'
   mbxcall -f apikey.toml -t buybtc -u https://api.binance.com/api/v3/order
   mbxcall -f apikey.toml -t buybtc -msg "symbol=BNBUSDT&side=SELL&type=MARKET&quantity=1" -tsd 2
   mbxcall -f apikey.toml -t test -e 1                      (restful mode)
   mbxcall -f apikey.toml -t test -e 2 -tsd 10              (print the curl command only)
   mbxcall -m get -u "https://api.binance.com/api/v3/exchangeInfo?symbol=BNBUSDT"`

var appFlags = []cli.Flag{
	&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "API endpoint URL, e.g. https://fapi.binance.com/fapi/v1/order"},
	&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Usage: "HTTP method, GET|POST|DELETE ..."},
	&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "API key"},
	&cli.StringFlag{Name: "secret", Aliases: []string{"s"}, Usage: "API secret"},
	&cli.StringFlag{Name: "params", Aliases: []string{"p"}, Usage: "payload parameters as a JSON object"},
	&cli.StringFlag{Name: "message", Aliases: []string{"msg"}, Usage: "payload as a query string, replaces --params"},
	&cli.IntFlag{Name: "timestampdiff", Aliases: []string{"tsd"}, Usage: "seconds added to now for the payload timestamp, replaces any existing timestamp"},
	&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "config file (TOML profiles)"},
	&cli.StringFlag{Name: "tag", Aliases: []string{"t"}, Value: config.DefaultTag, Usage: "profile tag in the config file"},
	&cli.IntFlag{Name: "execute", Aliases: []string{"e"}, Value: 0, Usage: "0: curl call, 1: restful call, 2: print curl command, 3: curl with output to terminal"},
	&cli.StringFlag{Name: "curl", Value: binance.DefaultTool, Usage: "external HTTP tool used by the curl modes"},
	&cli.DurationFlag{Name: "timeout", Usage: "restful call timeout, 0 means none"},
	&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file with " + config.EnvAPIKey + " / " + config.EnvAPISecret},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
}

// flagSettings 读取命令行中显式给出的调用参数
func flagSettings(c *cli.Context) (config.Settings, error) {
	s := config.Settings{
		URL:       c.String("url"),
		Method:    c.String("method"),
		APIKey:    c.String("key"),
		APISecret: c.String("secret"),
		Message:   c.String("message"),
	}
	if raw := c.String("params"); raw != "" {
		params, err := payload.ParseParams(raw)
		if err != nil {
			return s, fmt.Errorf("--params: %w: %v", config.ErrInvalidParameters, err)
		}
		s.Params = params
	}
	if c.IsSet("timestampdiff") {
		d := c.Int("timestampdiff")
		s.TimestampDelta = &d
	}
	return s, nil
}
