package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbxcall/internal/domain/payload"
)

func TestOverrideFlagWinsFieldByField(t *testing.T) {
	p, err := Load(writeConfig(t), "buybtc")
	require.NoError(t, err)

	merged := p.Settings().Override(Settings{URL: "https://testnet.binance.vision/api/v3/order", APISecret: "flag-secret"})

	assert.Equal(t, "https://testnet.binance.vision/api/v3/order", merged.URL)
	assert.Equal(t, "POST", merged.Method)
	assert.Equal(t, "file-key", merged.APIKey)
	assert.Equal(t, "flag-secret", merged.APISecret)
	assert.Equal(t, "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.002", merged.Params.Canonical())
}

func TestOverrideParamsReplaceProfileParams(t *testing.T) {
	p, err := Load(writeConfig(t), "buybtc")
	require.NoError(t, err)

	flagParams := payload.ParamsFromPairs(payload.Pair{Key: "symbol", Value: "ETHUSDT"})
	merged := p.Settings().Override(Settings{Params: flagParams, Method: "delete"})
	assert.Equal(t, "symbol=ETHUSDT", merged.Params.Canonical())
	assert.Equal(t, "DELETE", merged.Method)
}

func TestOverrideMessageDisablesParams(t *testing.T) {
	p, err := Load(writeConfig(t), "buybtc")
	require.NoError(t, err)

	delta := 2
	merged := p.Settings().Override(Settings{Message: "symbol=BNBUSDT&side=SELL", TimestampDelta: &delta})
	assert.Nil(t, merged.Params)
	assert.Equal(t, "symbol=BNBUSDT&side=SELL", merged.Message)
	require.NotNil(t, merged.TimestampDelta)
	assert.Equal(t, 2, *merged.TimestampDelta)
}

func TestEnvCredentialsAreLastResort(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvAPISecret, "env-secret")

	s := Settings{APIKey: "flag-key"}.WithEnvCredentials()
	assert.Equal(t, "flag-key", s.APIKey)
	assert.Equal(t, "env-secret", s.APISecret)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BINANCE_API_KEY=dotenv-key\n"), 0o600))
	t.Setenv(EnvAPIKey, "")
	require.NoError(t, os.Unsetenv(EnvAPIKey))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "dotenv-key", os.Getenv(EnvAPIKey))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Settings{}.Validate(), ErrMissingURL)
	assert.NoError(t, Settings{URL: "https://api.binance.com"}.Validate())
}
