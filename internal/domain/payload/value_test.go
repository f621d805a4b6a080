package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamsKeepsSourceOrder(t *testing.T) {
	p, err := ParseParams(`{"symbol": "BTCUSDT", "positionSide": "BOTH", "side": "BUY", "type": "MARKET", "quantity": 0.002}`)
	require.NoError(t, err)
	assert.Equal(t, "symbol=BTCUSDT&positionSide=BOTH&side=BUY&type=MARKET&quantity=0.002", p.Canonical())
}

func TestParseParamsSingleQuotedDict(t *testing.T) {
	p, err := ParseParams(`{'symbol': 'BTCUSDT', 'side': 'BUY', 'quantity': 0.002}`)
	require.NoError(t, err)
	assert.Equal(t, "symbol=BTCUSDT&side=BUY&quantity=0.002", p.Canonical())
}

func TestParseParamsValueKinds(t *testing.T) {
	p, err := ParseParams(`{"a": 1729852860000, "b": 1e-7, "c": true, "d": null, "e": [1, 2], "f": {"x": "y"}, "g": 1.50}`)
	require.NoError(t, err)
	assert.Equal(t, `a=1729852860000&b=0.0000001&c=true&d=&e=[1,2]&f={"x":"y"}&g=1.5`, p.Canonical())
}

func TestParseParamsEmpty(t *testing.T) {
	p, err := ParseParams("  ")
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestParseParamsRejectsNonObject(t *testing.T) {
	_, err := ParseParams(`["symbol"]`)
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = ParseParams(`{"symbol": "BTCUSDT"`)
	assert.Error(t, err)

	_, err = ParseParams(`{"a": 1} {"b": 2}`)
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"BTCUSDT", "BTCUSDT"},
		{json.Number("0.002"), "0.002"},
		{0.002, "0.002"},
		{int64(60000), "60000"},
		{5000, "5000"},
		{false, "false"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatValue(c.in), "%v", c.in)
	}
}

func TestParseParamsDuplicateKeyKeepsFirstPosition(t *testing.T) {
	p, err := ParseParams(`{"symbol": "BTCUSDT", "side": "BUY", "symbol": "ETHUSDT"}`)
	require.NoError(t, err)
	assert.Equal(t, "symbol=ETHUSDT&side=BUY", p.Canonical())
}
