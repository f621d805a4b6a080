package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbxcall/internal/infrastructure/config"
	"mbxcall/internal/infrastructure/exchange/binance"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apikey.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvAPISecret, "")
	base := []string{"mbxcall", "--env-file", filepath.Join(t.TempDir(), "none.env")}
	return newApp().Run(append(base, args...))
}

func TestRunMissingTagFails(t *testing.T) {
	path := writeProfile(t, `
[default]
url = "https://api.binance.com/api/v3/account"
`)
	err := runApp(t, "-f", path, "-t", "buybtc")

	var notFound *config.SectionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.True(t, config.IsConfigError(err))
}

func TestRunMissingSecretFails(t *testing.T) {
	path := writeProfile(t, `
[buybtc]
url = "https://api.binance.com/api/v3/order"
method = "post"
api_key = "file-key"
parameters = '{"symbol": "BTCUSDT", "side": "BUY"}'
`)
	err := runApp(t, "-f", path, "-t", "buybtc", "-e", "2")
	assert.ErrorIs(t, err, binance.ErrMissingSecret)
}

func TestRunDispatchFailureExitsCleanly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1022,"msg":"Signature for this request is not valid."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	path := writeProfile(t, `
[buybtc]
url = "`+srv.URL+`"
method = "post"
api_key = "file-key"
api_secret = "file-secret"
parameters = '{"symbol": "BTCUSDT", "side": "BUY"}'
`)
	assert.NoError(t, runApp(t, "-f", path, "-t", "buybtc", "-e", "1"))
}

func TestRunTransportFailureExitsCleanly(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.NoError(t, runApp(t, "-u", url, "-m", "post", "-k", "k", "-s", "s", "-msg", "a=1", "-e", "1"))
}
