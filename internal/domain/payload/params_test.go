package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderParams() *Params {
	return ParamsFromPairs(
		Pair{"symbol", "BTCUSDT"},
		Pair{"side", "BUY"},
		Pair{"type", "MARKET"},
		Pair{"quantity", "0.002"},
		Pair{"timestamp", "1729852860000"},
	)
}

func TestParamsCanonicalKeepsInsertionOrder(t *testing.T) {
	p := orderParams()
	assert.Equal(t, "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.002&timestamp=1729852860000", p.Canonical())
}

func TestParamsCanonicalDeterministic(t *testing.T) {
	p := orderParams()
	assert.Equal(t, p.Canonical(), p.Canonical())
	assert.Equal(t, p.Canonical(), p.Clone().Canonical())
}

func TestParamsCanonicalEmpty(t *testing.T) {
	var nilParams *Params
	assert.Equal(t, "", nilParams.Canonical())
	assert.Equal(t, "", NewParams().Canonical())
	assert.True(t, nilParams.Empty())
}

func TestParamsSetOverwriteKeepsPosition(t *testing.T) {
	p := orderParams()
	p.Set("side", "SELL")
	p.Set("recvWindow", "5000")

	assert.Equal(t, 6, p.Len())
	assert.Equal(t, "symbol=BTCUSDT&side=SELL&type=MARKET&quantity=0.002&timestamp=1729852860000&recvWindow=5000", p.Canonical())
}

func TestParamsDeleteReindexes(t *testing.T) {
	p := orderParams()
	require.True(t, p.Delete("side"))
	require.False(t, p.Delete("side"))

	p.Set("type", "LIMIT")
	v, ok := p.Get("type")
	require.True(t, ok)
	assert.Equal(t, "LIMIT", v)
	assert.Equal(t, "symbol=BTCUSDT&type=LIMIT&quantity=0.002&timestamp=1729852860000", p.Canonical())
}

func TestParamsCanonicalDoesNotEscape(t *testing.T) {
	p := ParamsFromPairs(Pair{"note", "a b&c=d"})
	assert.Equal(t, "note=a b&c=d", p.Canonical())
	assert.Equal(t, "note=a+b%26c%3Dd", p.Encode())
}

func TestParamsEncodeKeepsOrder(t *testing.T) {
	p := ParamsFromPairs(Pair{"z", "1"}, Pair{"a", "2"})
	assert.Equal(t, "z=1&a=2", p.Encode())
}

func TestParamsCloneIsIndependent(t *testing.T) {
	p := orderParams()
	c := p.Clone()
	c.Set("signature", "abc")
	c.Set("symbol", "ETHUSDT")

	assert.False(t, p.Has("signature"))
	v, _ := p.Get("symbol")
	assert.Equal(t, "BTCUSDT", v)
}

func TestParamsZeroValueUsable(t *testing.T) {
	var p Params
	p.Set("a", "1")
	assert.Equal(t, "a=1", p.Canonical())
}
